// Package testutil builds mock property trees for tests. The builders
// populate a hal.Mock with the same property shapes a live HAL publishes,
// so wrapper and enumeration code can be exercised without hardware.
package testutil

import (
	"os"
	"testing"

	"github.com/shaban/coreaudio/hal"
)

// SkipUnlessEnv skips the test unless the given env var equals the wanted value.
func SkipUnlessEnv(t *testing.T, key, want string) {
	t.Helper()
	if os.Getenv(key) != want {
		t.Skipf("skipped: set %s=%s to run", key, want)
	}
}

// IsCI reports whether running under common CI environments.
func IsCI() bool {
	return os.Getenv("CI") == "true" || os.Getenv("GITHUB_ACTIONS") == "true"
}

// DeviceConfig describes one fake device for AddDevice.
type DeviceConfig struct {
	UID            string
	Name           string
	Transport      hal.TransportType
	InputChannels  uint32
	OutputChannels uint32
	SampleRate     float64
	SampleRates    []float64 // collapsed ranges; defaults to {44100, 48000}
	Alive          bool
	Hidden         bool
}

// NewSystem returns a Mock holding a system object with an empty device
// list. The UID translators answer unknown UIDs with the zero handle, the
// way the live HAL does.
func NewSystem() *hal.Mock {
	m := hal.NewMock()
	m.SetClass(hal.SystemObjectID, hal.ClassSystemObject, hal.ClassObject)
	m.Set(hal.SystemObjectID, hal.Addr(hal.SelectorDevices), []uint32{})
	for _, sel := range []hal.Selector{
		hal.SelectorTranslateUIDToDevice,
		hal.SelectorTranslateUIDToBox,
		hal.SelectorTranslateUIDToClockDevice,
	} {
		m.Set(hal.SystemObjectID, hal.Addr(sel), uint32(hal.UnknownObjectID))
	}
	return m
}

// AddDevice registers a device object and appends it to the system's
// device list.
func AddDevice(m *hal.Mock, id hal.ObjectID, cfg DeviceConfig) {
	m.SetClass(id, hal.ClassDevice, hal.ClassObject)
	m.SetString(id, hal.Addr(hal.SelectorDeviceUID), cfg.UID)
	m.SetString(id, hal.Addr(hal.SelectorName), cfg.Name)
	m.Set(id, hal.Addr(hal.SelectorTransportType), uint32(cfg.Transport))
	m.Set(id, hal.Addr(hal.SelectorDeviceIsAlive), boolWord(cfg.Alive))
	m.Set(id, hal.Addr(hal.SelectorIsHidden), boolWord(cfg.Hidden))

	rate := cfg.SampleRate
	if rate == 0 {
		rate = 48000
	}
	m.Set(id, hal.Addr(hal.SelectorNominalSampleRate), rate)

	rates := cfg.SampleRates
	if rates == nil {
		rates = []float64{44100, 48000}
	}
	ranges := make([]hal.ValueRange, len(rates))
	for i, r := range rates {
		ranges[i] = hal.ValueRange{Minimum: r, Maximum: r}
	}
	m.Set(id, hal.Addr(hal.SelectorAvailableNominalSampleRates), ranges)

	SetStreamConfig(m, id, hal.ScopeInput, cfg.InputChannels)
	SetStreamConfig(m, id, hal.ScopeOutput, cfg.OutputChannels)

	// Keep the system's device list and UID translation in sync.
	appendDevice(m, id)
	m.SetQualified(hal.SystemObjectID, hal.Addr(hal.SelectorTranslateUIDToDevice),
		[]byte(cfg.UID), uint32(id))
}

// SetStreamConfig publishes a one-buffer stream configuration for a
// scope. Zero channels publishes an empty list, matching a device with no
// streams on that side.
func SetStreamConfig(m *hal.Mock, id hal.ObjectID, scope hal.Scope, channels uint32) {
	var bl hal.BufferList
	if channels > 0 {
		bl.Buffers = []hal.Buffer{{NumberChannels: channels}}
	}
	data, _ := bl.MarshalBinary()
	m.SetBytes(id, hal.AddrIn(hal.SelectorStreamConfiguration, scope, hal.ElementMain), data)
}

// SetDefaults points the system's default input and output at the given
// devices. Pass hal.UnknownObjectID to leave one unset.
func SetDefaults(m *hal.Mock, input, output hal.ObjectID) {
	if input != hal.UnknownObjectID {
		m.Set(hal.SystemObjectID, hal.Addr(hal.SelectorDefaultInputDevice), uint32(input))
	}
	if output != hal.UnknownObjectID {
		m.Set(hal.SystemObjectID, hal.Addr(hal.SelectorDefaultOutputDevice), uint32(output))
		m.Set(hal.SystemObjectID, hal.Addr(hal.SelectorDefaultSystemOutputDevice), uint32(output))
	}
}

// AddStream registers a stream object and appends it to the device's
// stream list for the scope.
func AddStream(m *hal.Mock, device, stream hal.ObjectID, scope hal.Scope, startingChannel uint32) {
	m.SetClass(stream, hal.ClassStream, hal.ClassObject)
	m.Set(stream, hal.Addr(hal.SelectorOwner), uint32(device))
	m.Set(stream, hal.Addr(hal.SelectorStreamDirection), boolWord(scope == hal.ScopeInput))
	m.Set(stream, hal.Addr(hal.SelectorStreamIsActive), boolWord(true))
	m.Set(stream, hal.Addr(hal.SelectorStreamStartingChannel), startingChannel)

	addr := hal.AddrIn(hal.SelectorStreams, scope, hal.ElementMain)
	ids := readIDList(m, device, addr)
	m.Set(device, addr, append(ids, uint32(stream)))
}

// AddControl registers a control object of the given class and appends it
// to the device's control list.
func AddControl(m *hal.Mock, device, control hal.ObjectID, class, base hal.ClassID, scope hal.Scope) {
	m.SetClass(control, class, base)
	m.Set(control, hal.Addr(hal.SelectorOwner), uint32(device))
	m.Set(control, hal.Addr(hal.SelectorControlScope), uint32(scope))
	m.Set(control, hal.Addr(hal.SelectorControlElement), uint32(hal.ElementMain))

	addr := hal.Addr(hal.SelectorControlList)
	ids := readIDList(m, device, addr)
	m.Set(device, addr, append(ids, uint32(control)))
}

func appendDevice(m *hal.Mock, id hal.ObjectID) {
	addr := hal.Addr(hal.SelectorDevices)
	ids := readIDList(m, hal.SystemObjectID, addr)
	m.Set(hal.SystemObjectID, addr, append(ids, uint32(id)))
}

func readIDList(m *hal.Mock, obj hal.ObjectID, addr hal.PropertyAddress) []uint32 {
	existing, err := hal.ReadObjectIDs(m, obj, addr, nil)
	if err != nil {
		return nil
	}
	ids := make([]uint32, len(existing))
	for i, e := range existing {
		ids[i] = uint32(e)
	}
	return ids
}

func boolWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
