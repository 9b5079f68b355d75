package coreaudio

import "github.com/shaban/coreaudio/hal"

// Box wraps a HAL box: a physical or virtual container of devices that can
// exist without its devices being usable until acquired.
type Box struct {
	Object
}

func newBox(b hal.Backend, id hal.ObjectID) *Box {
	return &Box{Object: newObject(b, id)}
}

// UID returns the persistent box UID string.
func (x *Box) UID() (string, error) {
	return x.backend.ReadString(x.id, hal.Addr(hal.SelectorBoxUID), nil)
}

// TransportType reports how the box is attached.
func (x *Box) TransportType() (hal.TransportType, error) {
	v, err := hal.ReadScalar[uint32](x.backend, x.id, hal.Addr(hal.SelectorTransportType), nil)
	return hal.TransportType(v), err
}

// HasAudio reports whether the box provides audio devices.
func (x *Box) HasAudio() (bool, error) {
	return hal.ReadBool(x.backend, x.id, hal.Addr(hal.SelectorBoxHasAudio))
}

// HasVideo reports whether the box provides video.
func (x *Box) HasVideo() (bool, error) {
	return hal.ReadBool(x.backend, x.id, hal.Addr(hal.SelectorBoxHasVideo))
}

// HasMIDI reports whether the box provides MIDI endpoints.
func (x *Box) HasMIDI() (bool, error) {
	return hal.ReadBool(x.backend, x.id, hal.Addr(hal.SelectorBoxHasMIDI))
}

// IsProtected reports whether acquiring the box needs user interaction.
func (x *Box) IsProtected() (bool, error) {
	return hal.ReadBool(x.backend, x.id, hal.Addr(hal.SelectorBoxIsProtected))
}

// Acquired reports whether this machine holds the box.
func (x *Box) Acquired() (bool, error) {
	return hal.ReadBool(x.backend, x.id, hal.Addr(hal.SelectorBoxAcquired))
}

// SetAcquired takes or releases the box.
func (x *Box) SetAcquired(held bool) error {
	return hal.WriteBool(x.backend, x.id, hal.Addr(hal.SelectorBoxAcquired), held)
}

// Devices lists the audio devices the box currently provides.
func (x *Box) Devices() ([]*Device, error) {
	ids, err := hal.ReadObjectIDs(x.backend, x.id, hal.Addr(hal.SelectorBoxDeviceList), nil)
	if err != nil {
		return nil, err
	}
	devices := make([]*Device, len(ids))
	for i, id := range ids {
		devices[i] = newDevice(x.backend, id)
	}
	return devices, nil
}

// ClockDevices lists the clock devices the box currently provides.
func (x *Box) ClockDevices() ([]*ClockDevice, error) {
	ids, err := hal.ReadObjectIDs(x.backend, x.id, hal.Addr(hal.SelectorBoxClockDeviceList), nil)
	if err != nil {
		return nil, err
	}
	clocks := make([]*ClockDevice, len(ids))
	for i, id := range ids {
		clocks[i] = newClockDevice(x.backend, id)
	}
	return clocks, nil
}
