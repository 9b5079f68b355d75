package coreaudio

import (
	"github.com/shaban/coreaudio/hal"
)

// Device wraps a HAL audio device. The scope-qualified accessors take the
// scope explicitly because most device properties exist separately per
// input and output section.
type Device struct {
	Object
}

func newDevice(b hal.Backend, id hal.ObjectID) *Device {
	return &Device{Object: newObject(b, id)}
}

// UID returns the persistent device UID string.
func (d *Device) UID() (string, error) {
	return d.backend.ReadString(d.id, hal.Addr(hal.SelectorDeviceUID), nil)
}

// ModelUID returns the model UID shared by devices of the same model.
func (d *Device) ModelUID() (string, error) {
	return d.backend.ReadString(d.id, hal.Addr(hal.SelectorModelUID), nil)
}

// TransportType reports how the device is attached.
func (d *Device) TransportType() (hal.TransportType, error) {
	v, err := hal.ReadScalar[uint32](d.backend, d.id, hal.Addr(hal.SelectorTransportType), nil)
	return hal.TransportType(v), err
}

// RelatedDevices lists devices sharing hardware with this one.
func (d *Device) RelatedDevices() ([]hal.ObjectID, error) {
	return hal.ReadObjectIDs(d.backend, d.id, hal.Addr(hal.SelectorRelatedDevices), nil)
}

// ClockDomain reports the device's clock domain; devices in the same
// nonzero domain share a clock.
func (d *Device) ClockDomain() (uint32, error) {
	return hal.ReadScalar[uint32](d.backend, d.id, hal.Addr(hal.SelectorClockDomain), nil)
}

// IsAlive reports whether the device is still present.
func (d *Device) IsAlive() (bool, error) {
	return hal.ReadBool(d.backend, d.id, hal.Addr(hal.SelectorDeviceIsAlive))
}

// IsRunning reports whether the device is running IO in this process.
func (d *Device) IsRunning() (bool, error) {
	return hal.ReadBool(d.backend, d.id, hal.Addr(hal.SelectorDeviceIsRunning))
}

// IsRunningSomewhere reports whether any process is running IO on the
// device.
func (d *Device) IsRunningSomewhere() (bool, error) {
	return hal.ReadBool(d.backend, d.id, hal.Addr(hal.SelectorDeviceIsRunningSomewhere))
}

// IsHidden reports whether the device is hidden from users.
func (d *Device) IsHidden() (bool, error) {
	return hal.ReadBool(d.backend, d.id, hal.Addr(hal.SelectorIsHidden))
}

// CanBeDefault reports whether the device may become the default device
// for the given scope.
func (d *Device) CanBeDefault(scope hal.Scope) (bool, error) {
	return hal.ReadBool(d.backend, d.id, hal.AddrIn(hal.SelectorDeviceCanBeDefault, scope, hal.ElementMain))
}

// CanBeSystemDefault reports whether the device may carry system sounds.
func (d *Device) CanBeSystemDefault(scope hal.Scope) (bool, error) {
	return hal.ReadBool(d.backend, d.id, hal.AddrIn(hal.SelectorDeviceCanBeSystemDefault, scope, hal.ElementMain))
}

// Latency reports the device's presentation latency, in frames, for the
// given scope.
func (d *Device) Latency(scope hal.Scope) (uint32, error) {
	return hal.ReadScalar[uint32](d.backend, d.id, hal.AddrIn(hal.SelectorLatency, scope, hal.ElementMain), nil)
}

// SafetyOffset reports how many frames ahead/behind the head this process
// must stay for the given scope.
func (d *Device) SafetyOffset(scope hal.Scope) (uint32, error) {
	return hal.ReadScalar[uint32](d.backend, d.id, hal.AddrIn(hal.SelectorSafetyOffset, scope, hal.ElementMain), nil)
}

// Streams lists the device's stream handles for the given scope.
func (d *Device) Streams(scope hal.Scope) ([]*Stream, error) {
	ids, err := hal.ReadObjectIDs(d.backend, d.id, hal.AddrIn(hal.SelectorStreams, scope, hal.ElementMain), nil)
	if err != nil {
		return nil, err
	}
	streams := make([]*Stream, len(ids))
	for i, id := range ids {
		streams[i] = newStream(d.backend, id)
	}
	return streams, nil
}

// Controls lists the device's control handles, already dispatched to their
// concrete wrapper types.
func (d *Device) Controls() ([]AudioObject, error) {
	ids, err := hal.ReadObjectIDs(d.backend, d.id, hal.Addr(hal.SelectorControlList), nil)
	if err != nil {
		return nil, err
	}
	controls := make([]AudioObject, 0, len(ids))
	for _, id := range ids {
		c, err := Make(d.backend, id)
		if err != nil {
			return nil, err
		}
		controls = append(controls, c)
	}
	return controls, nil
}

// NominalSampleRate returns the device's nominal sample rate in Hz.
func (d *Device) NominalSampleRate() (float64, error) {
	return hal.ReadScalar[float64](d.backend, d.id, hal.Addr(hal.SelectorNominalSampleRate), nil)
}

// SetNominalSampleRate changes the nominal sample rate. The rate must fall
// inside one of the ranges reported by AvailableNominalSampleRates.
func (d *Device) SetNominalSampleRate(hz float64) error {
	return hal.WriteScalar(d.backend, d.id, hal.Addr(hal.SelectorNominalSampleRate), nil, hz)
}

// AvailableNominalSampleRates lists the supported sample-rate ranges. A
// discrete rate appears as a range with equal bounds.
func (d *Device) AvailableNominalSampleRates() ([]hal.ValueRange, error) {
	return hal.ReadSlice[hal.ValueRange](d.backend, d.id, hal.Addr(hal.SelectorAvailableNominalSampleRates), nil)
}

// ActualSampleRate returns the measured sample rate while IO is running.
func (d *Device) ActualSampleRate() (float64, error) {
	return hal.ReadScalar[float64](d.backend, d.id, hal.Addr(hal.SelectorActualSampleRate), nil)
}

// ClockDeviceID returns the handle of the clock device feeding this
// device, if any.
func (d *Device) ClockDeviceID() (hal.ObjectID, error) {
	v, err := hal.ReadScalar[uint32](d.backend, d.id, hal.Addr(hal.SelectorClockDevice), nil)
	return hal.ObjectID(v), err
}

// BufferFrameSize returns the IO buffer size in frames.
func (d *Device) BufferFrameSize() (uint32, error) {
	return hal.ReadScalar[uint32](d.backend, d.id, hal.Addr(hal.SelectorBufferFrameSize), nil)
}

// SetBufferFrameSize changes the IO buffer size in frames.
func (d *Device) SetBufferFrameSize(frames uint32) error {
	return hal.WriteScalar(d.backend, d.id, hal.Addr(hal.SelectorBufferFrameSize), nil, frames)
}

// BufferFrameSizeRange reports the allowed IO buffer sizes.
func (d *Device) BufferFrameSizeRange() (hal.ValueRange, error) {
	return hal.ReadScalar[hal.ValueRange](d.backend, d.id, hal.Addr(hal.SelectorBufferFrameSizeRange), nil)
}

// HogModePID returns the pid owning the device exclusively, or -1 when the
// device is free.
func (d *Device) HogModePID() (int32, error) {
	return hal.ReadScalar[int32](d.backend, d.id, hal.Addr(hal.SelectorHogMode), nil)
}

// TakeHogMode requests exclusive access; the HAL writes back the winning
// pid, so a read follows the write.
func (d *Device) TakeHogMode(pid int32) (int32, error) {
	if err := hal.WriteScalar(d.backend, d.id, hal.Addr(hal.SelectorHogMode), nil, pid); err != nil {
		return -1, err
	}
	return d.HogModePID()
}

// ReleaseHogMode gives up exclusive access.
func (d *Device) ReleaseHogMode() error {
	return hal.WriteScalar(d.backend, d.id, hal.Addr(hal.SelectorHogMode), nil, int32(-1))
}

// StreamConfiguration reports the buffer list describing the device's
// channel layout across its streams in the given scope.
func (d *Device) StreamConfiguration(scope hal.Scope) (hal.BufferList, error) {
	return hal.ReadBufferList(d.backend, d.id, hal.AddrIn(hal.SelectorStreamConfiguration, scope, hal.ElementMain))
}

// ChannelCount sums the channels across the device's streams in the given
// scope.
func (d *Device) ChannelCount(scope hal.Scope) (int, error) {
	config, err := d.StreamConfiguration(scope)
	if err != nil {
		if hal.IsUnsupported(err) {
			return 0, nil
		}
		return 0, err
	}
	return config.TotalChannels(), nil
}

// PreferredChannelsForStereo reports which two channels carry stereo
// content for the given scope.
func (d *Device) PreferredChannelsForStereo(scope hal.Scope) ([2]uint32, error) {
	return hal.ReadScalar[[2]uint32](d.backend, d.id, hal.AddrIn(hal.SelectorPreferredChannelsForStereo, scope, hal.ElementMain), nil)
}

// PreferredChannelLayout reports the device's preferred channel layout for
// the given scope.
func (d *Device) PreferredChannelLayout(scope hal.Scope) (hal.ChannelLayout, error) {
	return hal.ReadChannelLayout(d.backend, d.id, hal.AddrIn(hal.SelectorPreferredChannelLayout, scope, hal.ElementMain))
}

// JackIsConnected reports whether something is plugged into the jack of
// the given element.
func (d *Device) JackIsConnected(scope hal.Scope, element hal.Element) (bool, error) {
	return hal.ReadBool(d.backend, d.id, hal.AddrIn(hal.SelectorJackIsConnected, scope, element))
}

// VolumeScalar returns the 0..1 volume of an element.
func (d *Device) VolumeScalar(scope hal.Scope, element hal.Element) (float32, error) {
	return hal.ReadScalar[float32](d.backend, d.id, hal.AddrIn(hal.SelectorVolumeScalar, scope, element), nil)
}

// SetVolumeScalar sets the 0..1 volume of an element.
func (d *Device) SetVolumeScalar(scope hal.Scope, element hal.Element, v float32) error {
	return hal.WriteScalar(d.backend, d.id, hal.AddrIn(hal.SelectorVolumeScalar, scope, element), nil, v)
}

// VolumeDecibels returns the dB volume of an element.
func (d *Device) VolumeDecibels(scope hal.Scope, element hal.Element) (float32, error) {
	return hal.ReadScalar[float32](d.backend, d.id, hal.AddrIn(hal.SelectorVolumeDecibels, scope, element), nil)
}

// Mute reports whether an element is muted.
func (d *Device) Mute(scope hal.Scope, element hal.Element) (bool, error) {
	return hal.ReadBool(d.backend, d.id, hal.AddrIn(hal.SelectorMute, scope, element))
}

// SetMute mutes or unmutes an element.
func (d *Device) SetMute(scope hal.Scope, element hal.Element, muted bool) error {
	return hal.WriteBool(d.backend, d.id, hal.AddrIn(hal.SelectorMute, scope, element), muted)
}

// PlayThru reports whether input monitoring is on for an element.
func (d *Device) PlayThru(element hal.Element) (bool, error) {
	return hal.ReadBool(d.backend, d.id, hal.AddrIn(hal.SelectorPlayThru, hal.ScopePlayThrough, element))
}

// SetPlayThru switches input monitoring for an element.
func (d *Device) SetPlayThru(element hal.Element, on bool) error {
	return hal.WriteBool(d.backend, d.id, hal.AddrIn(hal.SelectorPlayThru, hal.ScopePlayThrough, element), on)
}

// DataSource returns the active data source IDs for the given scope (for
// example internal speakers vs. headphones).
func (d *Device) DataSource(scope hal.Scope) ([]uint32, error) {
	return hal.ReadSlice[uint32](d.backend, d.id, hal.AddrIn(hal.SelectorDataSource, scope, hal.ElementMain), nil)
}

// SetDataSource selects data sources for the given scope.
func (d *Device) SetDataSource(scope hal.Scope, ids []uint32) error {
	return hal.WriteSlice(d.backend, d.id, hal.AddrIn(hal.SelectorDataSource, scope, hal.ElementMain), nil, ids)
}

// DataSources lists the selectable data source IDs for the given scope.
func (d *Device) DataSources(scope hal.Scope) ([]uint32, error) {
	return hal.ReadSlice[uint32](d.backend, d.id, hal.AddrIn(hal.SelectorDataSources, scope, hal.ElementMain), nil)
}

// ClockSource returns the active clock source IDs.
func (d *Device) ClockSource() ([]uint32, error) {
	return hal.ReadSlice[uint32](d.backend, d.id, hal.Addr(hal.SelectorClockSource), nil)
}

// ClockSources lists the selectable clock source IDs.
func (d *Device) ClockSources() ([]uint32, error) {
	return hal.ReadSlice[uint32](d.backend, d.id, hal.Addr(hal.SelectorClockSources), nil)
}

// CanInput reports whether the device has input channels.
func (d *Device) CanInput() bool {
	n, err := d.ChannelCount(hal.ScopeInput)
	return err == nil && n > 0
}

// CanOutput reports whether the device has output channels.
func (d *Device) CanOutput() bool {
	n, err := d.ChannelCount(hal.ScopeOutput)
	return err == nil && n > 0
}
