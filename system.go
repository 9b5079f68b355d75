package coreaudio

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/shaban/coreaudio/hal"
)

// SystemObject wraps the one distinguished system object of the HAL. It
// carries the hardware-wide toggles, the device lists and the UID
// translations.
type SystemObject struct {
	Object
}

var (
	systemMu  sync.Mutex
	systemFor = map[hal.Backend]*SystemObject{}
)

// System returns the process-wide singleton bound to the default backend.
func System() *SystemObject {
	return SystemOn(hal.Default())
}

// SystemOn returns the singleton system wrapper for a backend. Repeated
// calls with the same backend return the same instance; concurrent first
// access creates exactly one.
func SystemOn(b hal.Backend) *SystemObject {
	systemMu.Lock()
	defer systemMu.Unlock()
	if s, ok := systemFor[b]; ok {
		return s
	}
	s := &SystemObject{Object: newObject(b, hal.SystemObjectID)}
	systemFor[b] = s
	return s
}

// Devices lists every audio device the HAL currently publishes.
func (s *SystemObject) Devices() ([]*Device, error) {
	ids, err := hal.ReadObjectIDs(s.backend, s.id, hal.Addr(hal.SelectorDevices), nil)
	if err != nil {
		return nil, err
	}
	devices := make([]*Device, len(ids))
	for i, id := range ids {
		devices[i] = newDevice(s.backend, id)
	}
	return devices, nil
}

func (s *SystemObject) deviceFromScalar(sel hal.Selector) (*Device, error) {
	v, err := hal.ReadScalar[uint32](s.backend, s.id, hal.Addr(sel), nil)
	if err != nil {
		return nil, err
	}
	if hal.ObjectID(v) == hal.UnknownObjectID {
		return nil, nil
	}
	return newDevice(s.backend, hal.ObjectID(v)), nil
}

// DefaultInputDevice returns the current default input device, or nil when
// none exists.
func (s *SystemObject) DefaultInputDevice() (*Device, error) {
	return s.deviceFromScalar(hal.SelectorDefaultInputDevice)
}

// DefaultOutputDevice returns the current default output device.
func (s *SystemObject) DefaultOutputDevice() (*Device, error) {
	return s.deviceFromScalar(hal.SelectorDefaultOutputDevice)
}

// DefaultSystemOutputDevice returns the device that carries alerts and
// other system sounds.
func (s *SystemObject) DefaultSystemOutputDevice() (*Device, error) {
	return s.deviceFromScalar(hal.SelectorDefaultSystemOutputDevice)
}

// SetDefaultInputDevice changes the default input device.
func (s *SystemObject) SetDefaultInputDevice(d *Device) error {
	return hal.WriteScalar(s.backend, s.id, hal.Addr(hal.SelectorDefaultInputDevice), nil, uint32(d.ID()))
}

// SetDefaultOutputDevice changes the default output device.
func (s *SystemObject) SetDefaultOutputDevice(d *Device) error {
	return hal.WriteScalar(s.backend, s.id, hal.Addr(hal.SelectorDefaultOutputDevice), nil, uint32(d.ID()))
}

// SetDefaultSystemOutputDevice changes where system sounds play.
func (s *SystemObject) SetDefaultSystemOutputDevice(d *Device) error {
	return hal.WriteScalar(s.backend, s.id, hal.Addr(hal.SelectorDefaultSystemOutputDevice), nil, uint32(d.ID()))
}

// DeviceForUID resolves a device UID. A nil device with nil error means
// the UID named nothing.
func (s *SystemObject) DeviceForUID(uid string) (*Device, error) {
	id, err := hal.TranslateUID(s.backend, s.id, hal.SelectorTranslateUIDToDevice, uid)
	if err != nil {
		return nil, err
	}
	if id == hal.UnknownObjectID {
		return nil, nil
	}
	return newDevice(s.backend, id), nil
}

// BoxForUID resolves a box UID.
func (s *SystemObject) BoxForUID(uid string) (*Box, error) {
	id, err := hal.TranslateUID(s.backend, s.id, hal.SelectorTranslateUIDToBox, uid)
	if err != nil {
		return nil, err
	}
	if id == hal.UnknownObjectID {
		return nil, nil
	}
	return newBox(s.backend, id), nil
}

// ClockDeviceForUID resolves a clock device UID.
func (s *SystemObject) ClockDeviceForUID(uid string) (*ClockDevice, error) {
	id, err := hal.TranslateUID(s.backend, s.id, hal.SelectorTranslateUIDToClockDevice, uid)
	if err != nil {
		return nil, err
	}
	if id == hal.UnknownObjectID {
		return nil, nil
	}
	return newClockDevice(s.backend, id), nil
}

// Boxes lists every box the HAL publishes.
func (s *SystemObject) Boxes() ([]*Box, error) {
	ids, err := hal.ReadObjectIDs(s.backend, s.id, hal.Addr(hal.SelectorBoxList), nil)
	if err != nil {
		return nil, err
	}
	boxes := make([]*Box, len(ids))
	for i, id := range ids {
		boxes[i] = newBox(s.backend, id)
	}
	return boxes, nil
}

// PlugIns lists every installed HAL plug-in.
func (s *SystemObject) PlugIns() ([]*PlugIn, error) {
	ids, err := hal.ReadObjectIDs(s.backend, s.id, hal.Addr(hal.SelectorPlugInList), nil)
	if err != nil {
		return nil, err
	}
	plugins := make([]*PlugIn, len(ids))
	for i, id := range ids {
		plugins[i] = newPlugIn(s.backend, id)
	}
	return plugins, nil
}

// ClockDevices lists every clock device the HAL publishes.
func (s *SystemObject) ClockDevices() ([]*ClockDevice, error) {
	ids, err := hal.ReadObjectIDs(s.backend, s.id, hal.Addr(hal.SelectorClockDeviceList), nil)
	if err != nil {
		return nil, err
	}
	clocks := make([]*ClockDevice, len(ids))
	for i, id := range ids {
		clocks[i] = newClockDevice(s.backend, id)
	}
	return clocks, nil
}

// TransportManagers lists every installed transport manager.
func (s *SystemObject) TransportManagers() ([]*TransportManager, error) {
	ids, err := hal.ReadObjectIDs(s.backend, s.id, hal.Addr(hal.SelectorTransportManagerList), nil)
	if err != nil {
		return nil, err
	}
	managers := make([]*TransportManager, len(ids))
	for i, id := range ids {
		managers[i] = newTransportManager(s.backend, id)
	}
	return managers, nil
}

// MixStereoToMono reports whether the HAL folds stereo output to mono.
func (s *SystemObject) MixStereoToMono() (bool, error) {
	return hal.ReadBool(s.backend, s.id, hal.Addr(hal.SelectorMixStereoToMono))
}

// SetMixStereoToMono switches stereo-to-mono folding.
func (s *SystemObject) SetMixStereoToMono(on bool) error {
	return hal.WriteBool(s.backend, s.id, hal.Addr(hal.SelectorMixStereoToMono), on)
}

// ProcessIsMain reports whether this process is the HAL's main process.
func (s *SystemObject) ProcessIsMain() (bool, error) {
	return hal.ReadBool(s.backend, s.id, hal.Addr(hal.SelectorProcessIsMain))
}

// IsInitingOrExiting reports whether the HAL is starting up or tearing
// down.
func (s *SystemObject) IsInitingOrExiting() (bool, error) {
	return hal.ReadBool(s.backend, s.id, hal.Addr(hal.SelectorIsInitingOrExiting))
}

// ProcessIsAudible reports whether this process may currently make sound.
func (s *SystemObject) ProcessIsAudible() (bool, error) {
	return hal.ReadBool(s.backend, s.id, hal.Addr(hal.SelectorProcessIsAudible))
}

// SetProcessIsAudible mutes or unmutes this process.
func (s *SystemObject) SetProcessIsAudible(on bool) error {
	return hal.WriteBool(s.backend, s.id, hal.Addr(hal.SelectorProcessIsAudible), on)
}

// SleepingIsAllowed reports whether the HAL lets the machine sleep while
// IO runs.
func (s *SystemObject) SleepingIsAllowed() (bool, error) {
	return hal.ReadBool(s.backend, s.id, hal.Addr(hal.SelectorSleepingIsAllowed))
}

// SetSleepingIsAllowed switches the sleep policy.
func (s *SystemObject) SetSleepingIsAllowed(on bool) error {
	return hal.WriteBool(s.backend, s.id, hal.Addr(hal.SelectorSleepingIsAllowed), on)
}

// UnloadingIsAllowed reports whether the HAL may unload after idling.
func (s *SystemObject) UnloadingIsAllowed() (bool, error) {
	return hal.ReadBool(s.backend, s.id, hal.Addr(hal.SelectorUnloadingIsAllowed))
}

// SetUnloadingIsAllowed switches the unload policy.
func (s *SystemObject) SetUnloadingIsAllowed(on bool) error {
	return hal.WriteBool(s.backend, s.id, hal.Addr(hal.SelectorUnloadingIsAllowed), on)
}

// HogModeIsAllowed reports whether processes may take devices exclusively.
func (s *SystemObject) HogModeIsAllowed() (bool, error) {
	return hal.ReadBool(s.backend, s.id, hal.Addr(hal.SelectorHogModeIsAllowed))
}

// SetHogModeIsAllowed switches the hog-mode policy.
func (s *SystemObject) SetHogModeIsAllowed(on bool) error {
	return hal.WriteBool(s.backend, s.id, hal.Addr(hal.SelectorHogModeIsAllowed), on)
}

// UserSessionIsActiveOrHeadless reports whether the current user session
// owns the console or runs headless.
func (s *SystemObject) UserSessionIsActiveOrHeadless() (bool, error) {
	return hal.ReadBool(s.backend, s.id, hal.Addr(hal.SelectorUserSessionIsActiveOrHeadless))
}

// PowerHint returns the HAL's power/performance trade-off setting; 0 means
// none, 1 favors power saving.
func (s *SystemObject) PowerHint() (uint32, error) {
	return hal.ReadScalar[uint32](s.backend, s.id, hal.Addr(hal.SelectorPowerHint), nil)
}

// SetPowerHint changes the power/performance trade-off.
func (s *SystemObject) SetPowerHint(hint uint32) error {
	return hal.WriteScalar(s.backend, s.id, hal.Addr(hal.SelectorPowerHint), nil, hint)
}

// AggregateDescription is the composition a new aggregate device is built
// from. SubDeviceUIDs orders the members; the first one drives the clock
// unless MainSubDeviceUID says otherwise.
type AggregateDescription struct {
	Name             string   `json:"name"`
	UID              string   `json:"uid,omitempty"`
	SubDeviceUIDs    []string `json:"subdevices"`
	MainSubDeviceUID string   `json:"master,omitempty"`
	Private          bool     `json:"private,omitempty"`
	Stacked          bool     `json:"stacked,omitempty"`
}

// CreateAggregateDevice asks the HAL to build an aggregate device. When
// the description carries no UID one is generated, since the HAL requires
// a unique persistent identifier per aggregate. The backend must support
// aggregate creation.
func (s *SystemObject) CreateAggregateDevice(desc AggregateDescription) (*AggregateDevice, error) {
	creator, ok := s.backend.(hal.AggregateCreator)
	if !ok {
		return nil, fmt.Errorf("coreaudio: backend cannot create aggregate devices")
	}
	if desc.Name == "" {
		return nil, fmt.Errorf("coreaudio: aggregate device needs a name")
	}
	if len(desc.SubDeviceUIDs) == 0 {
		return nil, fmt.Errorf("coreaudio: aggregate device needs at least one sub-device")
	}
	if desc.UID == "" {
		desc.UID = uuid.NewString()
	}
	payload, err := json.Marshal(desc)
	if err != nil {
		return nil, fmt.Errorf("coreaudio: encode aggregate description: %w", err)
	}
	id, err := creator.CreateAggregate(payload)
	if err != nil {
		return nil, err
	}
	return newAggregateDevice(s.backend, id), nil
}

// DestroyAggregateDevice tears down an aggregate created by this process.
func (s *SystemObject) DestroyAggregateDevice(a *AggregateDevice) error {
	creator, ok := s.backend.(hal.AggregateCreator)
	if !ok {
		return fmt.Errorf("coreaudio: backend cannot destroy aggregate devices")
	}
	if err := a.Close(); err != nil {
		return err
	}
	return creator.DestroyAggregate(a.ID())
}
