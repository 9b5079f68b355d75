package coreaudio

import "github.com/shaban/coreaudio/hal"

// ClockDevice wraps a HAL clock device: an external clock source devices
// can slave to.
type ClockDevice struct {
	Object
}

func newClockDevice(b hal.Backend, id hal.ObjectID) *ClockDevice {
	return &ClockDevice{Object: newObject(b, id)}
}

// UID returns the persistent clock device UID string.
func (c *ClockDevice) UID() (string, error) {
	return c.backend.ReadString(c.id, hal.Addr(hal.SelectorClockDeviceUID), nil)
}

// TransportType reports how the clock device is attached.
func (c *ClockDevice) TransportType() (hal.TransportType, error) {
	v, err := hal.ReadScalar[uint32](c.backend, c.id, hal.Addr(hal.SelectorTransportType), nil)
	return hal.TransportType(v), err
}

// ClockDomain reports the clock domain the device drives.
func (c *ClockDevice) ClockDomain() (uint32, error) {
	return hal.ReadScalar[uint32](c.backend, c.id, hal.Addr(hal.SelectorClockDomain), nil)
}

// IsAlive reports whether the clock device is still present.
func (c *ClockDevice) IsAlive() (bool, error) {
	return hal.ReadBool(c.backend, c.id, hal.Addr(hal.SelectorDeviceIsAlive))
}

// IsRunning reports whether the clock is ticking.
func (c *ClockDevice) IsRunning() (bool, error) {
	return hal.ReadBool(c.backend, c.id, hal.Addr(hal.SelectorDeviceIsRunning))
}

// Latency reports the clock device's latency, in frames.
func (c *ClockDevice) Latency() (uint32, error) {
	return hal.ReadScalar[uint32](c.backend, c.id, hal.Addr(hal.SelectorLatency), nil)
}

// NominalSampleRate returns the clock's nominal sample rate in Hz.
func (c *ClockDevice) NominalSampleRate() (float64, error) {
	return hal.ReadScalar[float64](c.backend, c.id, hal.Addr(hal.SelectorNominalSampleRate), nil)
}

// AvailableNominalSampleRates lists the supported sample-rate ranges.
func (c *ClockDevice) AvailableNominalSampleRates() ([]hal.ValueRange, error) {
	return hal.ReadSlice[hal.ValueRange](c.backend, c.id, hal.Addr(hal.SelectorAvailableNominalSampleRates), nil)
}
