package coreaudio

import (
	"testing"

	"github.com/shaban/coreaudio/hal"
	"github.com/shaban/coreaudio/internal/testutil"
)

func TestDeviceIdentity(t *testing.T) {
	m := testutil.NewSystem()
	d := newTestDevice(t, m)

	uid, err := d.UID()
	if err != nil {
		t.Fatalf("UID: %v", err)
	}
	if uid != "test-device" {
		t.Errorf("UID = %q", uid)
	}

	alive, err := d.IsAlive()
	if err != nil {
		t.Fatalf("IsAlive: %v", err)
	}
	if !alive {
		t.Error("IsAlive = false")
	}
}

func TestChannelCount(t *testing.T) {
	m := testutil.NewSystem()
	id := hal.ObjectID(70)
	testutil.AddDevice(m, id, testutil.DeviceConfig{
		UID: "mic", Name: "Mic", InputChannels: 1, Alive: true,
	})
	d := newDevice(m, id)

	in, err := d.ChannelCount(hal.ScopeInput)
	if err != nil {
		t.Fatalf("input count: %v", err)
	}
	if in != 1 {
		t.Errorf("input channels = %d, want 1", in)
	}
	out, err := d.ChannelCount(hal.ScopeOutput)
	if err != nil {
		t.Fatalf("output count: %v", err)
	}
	if out != 0 {
		t.Errorf("output channels = %d, want 0", out)
	}

	if !d.CanInput() || d.CanOutput() {
		t.Errorf("capability = (%v, %v), want (true, false)", d.CanInput(), d.CanOutput())
	}
}

// A device that publishes no stream configuration at all counts as zero
// channels rather than an error.
func TestChannelCountWithoutConfiguration(t *testing.T) {
	m := testutil.NewSystem()
	id := hal.ObjectID(71)
	m.SetClass(id, hal.ClassDevice, hal.ClassObject)
	d := newDevice(m, id)

	n, err := d.ChannelCount(hal.ScopeInput)
	if err != nil {
		t.Fatalf("ChannelCount: %v", err)
	}
	if n != 0 {
		t.Errorf("channels = %d, want 0", n)
	}
}

func TestSampleRate(t *testing.T) {
	m := testutil.NewSystem()
	d := newTestDevice(t, m)

	rate, err := d.NominalSampleRate()
	if err != nil {
		t.Fatalf("NominalSampleRate: %v", err)
	}
	if rate != 48000 {
		t.Errorf("rate = %v", rate)
	}

	if err := d.SetNominalSampleRate(44100); err != nil {
		t.Fatalf("SetNominalSampleRate: %v", err)
	}
	rate, _ = d.NominalSampleRate()
	if rate != 44100 {
		t.Errorf("rate after set = %v", rate)
	}

	ranges, err := d.AvailableNominalSampleRates()
	if err != nil {
		t.Fatalf("AvailableNominalSampleRates: %v", err)
	}
	if len(ranges) != 2 || ranges[0].Minimum != 44100 || ranges[1].Minimum != 48000 {
		t.Errorf("ranges = %v", ranges)
	}
}

func TestMuteAndVolume(t *testing.T) {
	m := testutil.NewSystem()
	d := newTestDevice(t, m)

	muteAddr := hal.AddrIn(hal.SelectorMute, hal.ScopeOutput, hal.ElementMain)
	m.Set(d.ID(), muteAddr, uint32(0))
	volAddr := hal.AddrIn(hal.SelectorVolumeScalar, hal.ScopeOutput, hal.ElementMain)
	m.Set(d.ID(), volAddr, float32(0.75))

	muted, err := d.Mute(hal.ScopeOutput, hal.ElementMain)
	if err != nil {
		t.Fatalf("Mute: %v", err)
	}
	if muted {
		t.Error("initially muted")
	}
	if err := d.SetMute(hal.ScopeOutput, hal.ElementMain, true); err != nil {
		t.Fatalf("SetMute: %v", err)
	}
	if muted, _ = d.Mute(hal.ScopeOutput, hal.ElementMain); !muted {
		t.Error("mute did not stick")
	}

	vol, err := d.VolumeScalar(hal.ScopeOutput, hal.ElementMain)
	if err != nil {
		t.Fatalf("VolumeScalar: %v", err)
	}
	if vol != 0.75 {
		t.Errorf("volume = %v", vol)
	}
	if err := d.SetVolumeScalar(hal.ScopeOutput, hal.ElementMain, 0.5); err != nil {
		t.Fatalf("SetVolumeScalar: %v", err)
	}
	if vol, _ = d.VolumeScalar(hal.ScopeOutput, hal.ElementMain); vol != 0.5 {
		t.Errorf("volume after set = %v", vol)
	}
}

func TestHogMode(t *testing.T) {
	m := testutil.NewSystem()
	d := newTestDevice(t, m)
	m.Set(d.ID(), hal.Addr(hal.SelectorHogMode), int32(-1))

	pid, err := d.HogModePID()
	if err != nil {
		t.Fatalf("HogModePID: %v", err)
	}
	if pid != -1 {
		t.Errorf("initial hog pid = %d, want -1", pid)
	}

	got, err := d.TakeHogMode(1234)
	if err != nil {
		t.Fatalf("TakeHogMode: %v", err)
	}
	if got != 1234 {
		t.Errorf("hog pid after take = %d", got)
	}

	if err := d.ReleaseHogMode(); err != nil {
		t.Fatalf("ReleaseHogMode: %v", err)
	}
	if pid, _ = d.HogModePID(); pid != -1 {
		t.Errorf("hog pid after release = %d", pid)
	}
}

func TestStreams(t *testing.T) {
	m := testutil.NewSystem()
	d := newTestDevice(t, m)
	testutil.AddStream(m, d.ID(), 80, hal.ScopeOutput, 1)
	testutil.AddStream(m, d.ID(), 81, hal.ScopeOutput, 3)

	streams, err := d.Streams(hal.ScopeOutput)
	if err != nil {
		t.Fatalf("Streams: %v", err)
	}
	if len(streams) != 2 {
		t.Fatalf("got %d streams, want 2", len(streams))
	}
	ch, err := streams[1].StartingChannel()
	if err != nil {
		t.Fatalf("StartingChannel: %v", err)
	}
	if ch != 3 {
		t.Errorf("starting channel = %d, want 3", ch)
	}
	isInput, err := streams[0].IsInput()
	if err != nil {
		t.Fatalf("IsInput: %v", err)
	}
	if isInput {
		t.Error("output stream reports input direction")
	}
}

func TestControls(t *testing.T) {
	m := testutil.NewSystem()
	d := newTestDevice(t, m)
	testutil.AddControl(m, d.ID(), 90, hal.ClassMuteControl, hal.ClassBooleanControl, hal.ScopeOutput)
	testutil.AddControl(m, d.ID(), 91, hal.ClassVolumeControl, hal.ClassLevelControl, hal.ScopeOutput)

	controls, err := d.Controls()
	if err != nil {
		t.Fatalf("Controls: %v", err)
	}
	if len(controls) != 2 {
		t.Fatalf("got %d controls, want 2", len(controls))
	}
	mute, ok := controls[0].(*MuteControl)
	if !ok {
		t.Fatalf("controls[0] is %T, want *MuteControl", controls[0])
	}
	scope, err := mute.Scope()
	if err != nil {
		t.Fatalf("Scope: %v", err)
	}
	if scope != hal.ScopeOutput {
		t.Errorf("control scope = %v", scope)
	}
	if _, ok := controls[1].(*VolumeControl); !ok {
		t.Errorf("controls[1] is %T, want *VolumeControl", controls[1])
	}
}

func TestStreamFormats(t *testing.T) {
	m := testutil.NewSystem()
	streamID := hal.ObjectID(85)
	m.SetClass(streamID, hal.ClassStream, hal.ClassObject)
	s := newStream(m, streamID)

	format := hal.StreamDescription{
		SampleRate:       48000,
		FormatID:         hal.FormatLinearPCM,
		ChannelsPerFrame: 2,
		BitsPerChannel:   32,
	}
	m.Set(streamID, hal.Addr(hal.SelectorStreamVirtualFormat), format)

	got, err := s.VirtualFormat()
	if err != nil {
		t.Fatalf("VirtualFormat: %v", err)
	}
	if got != format {
		t.Errorf("format = %+v", got)
	}

	format.SampleRate = 96000
	if err := s.SetVirtualFormat(format); err != nil {
		t.Fatalf("SetVirtualFormat: %v", err)
	}
	if got, _ = s.VirtualFormat(); got.SampleRate != 96000 {
		t.Errorf("rate after set = %v", got.SampleRate)
	}
}
