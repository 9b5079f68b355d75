package coreaudio

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/shaban/coreaudio/hal"
	"github.com/shaban/coreaudio/internal/testutil"
)

func TestSystemSingleton(t *testing.T) {
	m := testutil.NewSystem()
	if SystemOn(m) != SystemOn(m) {
		t.Error("SystemOn returned distinct instances for the same backend")
	}

	other := testutil.NewSystem()
	if SystemOn(m) == SystemOn(other) {
		t.Error("distinct backends share a system object")
	}
}

func TestSystemSingletonConcurrent(t *testing.T) {
	m := testutil.NewSystem()

	const goroutines = 32
	results := make([]*SystemObject, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func() {
			defer wg.Done()
			results[i] = SystemOn(m)
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent SystemOn calls produced distinct instances")
		}
	}
}

func TestSystemDevices(t *testing.T) {
	m := testutil.NewSystem()
	testutil.AddDevice(m, 10, testutil.DeviceConfig{
		UID: "speakers", Name: "Speakers", OutputChannels: 2, Alive: true,
	})
	testutil.AddDevice(m, 11, testutil.DeviceConfig{
		UID: "mic", Name: "Mic", InputChannels: 1, Alive: true,
	})

	devices, err := SystemOn(m).Devices()
	if err != nil {
		t.Fatalf("Devices: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("got %d devices, want 2", len(devices))
	}
	if devices[0].ID() != 10 || devices[1].ID() != 11 {
		t.Errorf("device ids = %d, %d", devices[0].ID(), devices[1].ID())
	}
}

func TestDefaultDevices(t *testing.T) {
	m := testutil.NewSystem()
	testutil.AddDevice(m, 10, testutil.DeviceConfig{
		UID: "speakers", Name: "Speakers", OutputChannels: 2, Alive: true,
	})
	testutil.AddDevice(m, 11, testutil.DeviceConfig{
		UID: "mic", Name: "Mic", InputChannels: 1, Alive: true,
	})
	testutil.SetDefaults(m, 11, 10)

	sys := SystemOn(m)
	in, err := sys.DefaultInputDevice()
	if err != nil {
		t.Fatalf("DefaultInputDevice: %v", err)
	}
	if in.ID() != 11 {
		t.Errorf("default input = %d, want 11", in.ID())
	}

	out, err := sys.DefaultOutputDevice()
	if err != nil {
		t.Fatalf("DefaultOutputDevice: %v", err)
	}
	if out.ID() != 10 {
		t.Errorf("default output = %d, want 10", out.ID())
	}

	// Swapping the default sticks.
	if err := sys.SetDefaultOutputDevice(out); err != nil {
		t.Fatalf("SetDefaultOutputDevice: %v", err)
	}
}

func TestDeviceForUID(t *testing.T) {
	m := testutil.NewSystem()
	testutil.AddDevice(m, 10, testutil.DeviceConfig{
		UID: "speakers", Name: "Speakers", OutputChannels: 2, Alive: true,
	})

	sys := SystemOn(m)
	d, err := sys.DeviceForUID("speakers")
	if err != nil {
		t.Fatalf("DeviceForUID: %v", err)
	}
	if d == nil || d.ID() != 10 {
		t.Fatalf("resolved %v", d)
	}

	// An unknown UID is an absence, not an error.
	d, err = sys.DeviceForUID("headphones")
	if err != nil {
		t.Fatalf("DeviceForUID(unknown): %v", err)
	}
	if d != nil {
		t.Errorf("unknown UID resolved to %d", d.ID())
	}
}

// UID translation answers with the zero handle even before any device has
// been registered, for every translator kind.
func TestUIDTranslationOnEmptySystem(t *testing.T) {
	sys := SystemOn(testutil.NewSystem())

	d, err := sys.DeviceForUID("nothing")
	if err != nil {
		t.Fatalf("DeviceForUID: %v", err)
	}
	if d != nil {
		t.Errorf("device UID resolved to %d", d.ID())
	}

	x, err := sys.BoxForUID("nothing")
	if err != nil {
		t.Fatalf("BoxForUID: %v", err)
	}
	if x != nil {
		t.Errorf("box UID resolved to %d", x.ID())
	}

	c, err := sys.ClockDeviceForUID("nothing")
	if err != nil {
		t.Fatalf("ClockDeviceForUID: %v", err)
	}
	if c != nil {
		t.Errorf("clock UID resolved to %d", c.ID())
	}
}

func TestSystemToggles(t *testing.T) {
	m := testutil.NewSystem()
	m.Set(hal.SystemObjectID, hal.Addr(hal.SelectorHogModeIsAllowed), uint32(1))
	sys := SystemOn(m)

	allowed, err := sys.HogModeIsAllowed()
	if err != nil {
		t.Fatalf("HogModeIsAllowed: %v", err)
	}
	if !allowed {
		t.Error("hog mode not allowed")
	}
	if err := sys.SetHogModeIsAllowed(false); err != nil {
		t.Fatalf("SetHogModeIsAllowed: %v", err)
	}
	if allowed, _ = sys.HogModeIsAllowed(); allowed {
		t.Error("toggle did not stick")
	}

	// A toggle the backend does not publish reports unsupported.
	if _, err := sys.MixStereoToMono(); !hal.IsUnsupported(err) {
		t.Errorf("MixStereoToMono on absent property: %v", err)
	}
}

func TestCreateAggregateDevice(t *testing.T) {
	m := testutil.NewSystem()
	testutil.AddDevice(m, 10, testutil.DeviceConfig{
		UID: "speakers", Name: "Speakers", OutputChannels: 2, Alive: true,
	})
	testutil.AddDevice(m, 11, testutil.DeviceConfig{
		UID: "mic", Name: "Mic", InputChannels: 1, Alive: true,
	})
	sys := SystemOn(m)

	agg, err := sys.CreateAggregateDevice(AggregateDescription{
		Name:          "Combined",
		SubDeviceUIDs: []string{"mic", "speakers"},
	})
	if err != nil {
		t.Fatalf("CreateAggregateDevice: %v", err)
	}

	var desc AggregateDescription
	if err := json.Unmarshal(m.AggregateDescription(agg.ID()), &desc); err != nil {
		t.Fatalf("decode recorded description: %v", err)
	}
	if desc.Name != "Combined" {
		t.Errorf("name = %q", desc.Name)
	}
	if len(desc.SubDeviceUIDs) != 2 || desc.SubDeviceUIDs[0] != "mic" {
		t.Errorf("subdevices = %v", desc.SubDeviceUIDs)
	}
	// A UID is generated when the caller supplies none.
	if desc.UID == "" {
		t.Error("aggregate description has no UID")
	}

	// The new handle wraps as an aggregate through the factory too.
	obj, err := Make(m, agg.ID())
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	if _, ok := obj.(*AggregateDevice); !ok {
		t.Errorf("factory wrapped aggregate as %T", obj)
	}

	if err := sys.DestroyAggregateDevice(agg); err != nil {
		t.Fatalf("DestroyAggregateDevice: %v", err)
	}
}

func TestCreateAggregateValidation(t *testing.T) {
	m := testutil.NewSystem()
	sys := SystemOn(m)

	if _, err := sys.CreateAggregateDevice(AggregateDescription{
		SubDeviceUIDs: []string{"a"},
	}); err == nil {
		t.Error("nameless aggregate accepted")
	}
	if _, err := sys.CreateAggregateDevice(AggregateDescription{
		Name: "Empty",
	}); err == nil {
		t.Error("memberless aggregate accepted")
	}
}
