package coreaudio

import "github.com/shaban/coreaudio/hal"

// PlugIn wraps a HAL plug-in: a driver bundle providing devices.
type PlugIn struct {
	Object
}

func newPlugIn(b hal.Backend, id hal.ObjectID) *PlugIn {
	return &PlugIn{Object: newObject(b, id)}
}

// BundleID returns the plug-in's bundle identifier.
func (p *PlugIn) BundleID() (string, error) {
	return p.backend.ReadString(p.id, hal.Addr(hal.SelectorBundleID), nil)
}

// Devices lists the devices the plug-in provides.
func (p *PlugIn) Devices() ([]*Device, error) {
	ids, err := hal.ReadObjectIDs(p.backend, p.id, hal.Addr(hal.SelectorDeviceList), nil)
	if err != nil {
		return nil, err
	}
	devices := make([]*Device, len(ids))
	for i, id := range ids {
		devices[i] = newDevice(p.backend, id)
	}
	return devices, nil
}

// DeviceForUID resolves a device UID to a device provided by this plug-in.
func (p *PlugIn) DeviceForUID(uid string) (*Device, error) {
	id, err := hal.TranslateUID(p.backend, p.id, hal.SelectorTranslateUIDToDevice, uid)
	if err != nil {
		return nil, err
	}
	if id == hal.UnknownObjectID {
		return nil, nil
	}
	return newDevice(p.backend, id), nil
}

// Boxes lists the boxes the plug-in provides.
func (p *PlugIn) Boxes() ([]*Box, error) {
	ids, err := hal.ReadObjectIDs(p.backend, p.id, hal.Addr(hal.SelectorBoxList), nil)
	if err != nil {
		return nil, err
	}
	boxes := make([]*Box, len(ids))
	for i, id := range ids {
		boxes[i] = newBox(p.backend, id)
	}
	return boxes, nil
}

// TransportManager wraps a HAL transport manager, the plug-in kind that
// maintains endpoint devices for a transport (AirPlay, continuity, ...).
// Its base class in the HAL taxonomy is the plug-in.
type TransportManager struct {
	PlugIn
}

func newTransportManager(b hal.Backend, id hal.ObjectID) *TransportManager {
	return &TransportManager{PlugIn: PlugIn{Object: newObject(b, id)}}
}

// TransportType reports which transport the manager serves.
func (t *TransportManager) TransportType() (hal.TransportType, error) {
	v, err := hal.ReadScalar[uint32](t.backend, t.id, hal.Addr(hal.SelectorTransportType), nil)
	return hal.TransportType(v), err
}

// EndPointDevices lists the manager's endpoint devices.
func (t *TransportManager) EndPointDevices() ([]*EndPointDevice, error) {
	ids, err := hal.ReadObjectIDs(t.backend, t.id, hal.Addr(hal.SelectorEndPointList), nil)
	if err != nil {
		return nil, err
	}
	eps := make([]*EndPointDevice, len(ids))
	for i, id := range ids {
		eps[i] = newEndPointDevice(t.backend, id)
	}
	return eps, nil
}

// EndPointForUID resolves an endpoint UID to one of the manager's endpoint
// devices.
func (t *TransportManager) EndPointForUID(uid string) (*EndPointDevice, error) {
	id, err := hal.TranslateUID(t.backend, t.id, hal.SelectorTranslateUIDToEndPoint, uid)
	if err != nil {
		return nil, err
	}
	if id == hal.UnknownObjectID {
		return nil, nil
	}
	return newEndPointDevice(t.backend, id), nil
}
