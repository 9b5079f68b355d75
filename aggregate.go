package coreaudio

import "github.com/shaban/coreaudio/hal"

// AggregateDevice wraps a composite device stitched together from
// sub-devices.
type AggregateDevice struct {
	Device
}

func newAggregateDevice(b hal.Backend, id hal.ObjectID) *AggregateDevice {
	return &AggregateDevice{Device: Device{Object: newObject(b, id)}}
}

// FullSubDeviceList returns the UIDs of every sub-device in the composition,
// active or not.
func (a *AggregateDevice) FullSubDeviceList() ([]string, error) {
	return a.readUIDList(hal.Addr(hal.SelectorAggregateFullSubDeviceList))
}

// ActiveSubDevices lists the sub-devices currently participating in IO.
func (a *AggregateDevice) ActiveSubDevices() ([]*SubDevice, error) {
	ids, err := hal.ReadObjectIDs(a.backend, a.id, hal.Addr(hal.SelectorAggregateActiveSubDeviceList), nil)
	if err != nil {
		return nil, err
	}
	subs := make([]*SubDevice, len(ids))
	for i, id := range ids {
		subs[i] = newSubDevice(a.backend, id)
	}
	return subs, nil
}

// MainSubDevice returns the UID of the sub-device driving the aggregate's
// clock.
func (a *AggregateDevice) MainSubDevice() (string, error) {
	return a.backend.ReadString(a.id, hal.Addr(hal.SelectorAggregateMainSubDevice), nil)
}

// SetMainSubDevice changes which sub-device drives the clock.
func (a *AggregateDevice) SetMainSubDevice(uid string) error {
	return a.backend.WriteString(a.id, hal.Addr(hal.SelectorAggregateMainSubDevice), nil, uid)
}

// Composition returns the full composition description, JSON-encoded the
// way it crossed the boundary at creation.
func (a *AggregateDevice) Composition() ([]byte, error) {
	size, err := a.backend.Size(a.id, hal.Addr(hal.SelectorAggregateComposition), nil)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	n, err := a.backend.Read(a.id, hal.Addr(hal.SelectorAggregateComposition), nil, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// The UID-list properties deliver newline-joined UTF-8 through the string
// path; an empty value means an empty list.
func (a *AggregateDevice) readUIDList(addr hal.PropertyAddress) ([]string, error) {
	s, err := a.backend.ReadString(a.id, addr, nil)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	return splitLines(s), nil
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

// SubDevice wraps one member of an aggregate device.
type SubDevice struct {
	Device
}

func newSubDevice(b hal.Backend, id hal.ObjectID) *SubDevice {
	return &SubDevice{Device: Device{Object: newObject(b, id)}}
}

// ExtraLatency reports the additional latency, in frames, the aggregate
// budgets for this sub-device in the given scope.
func (s *SubDevice) ExtraLatency(scope hal.Scope) (float64, error) {
	return hal.ReadScalar[float64](s.backend, s.id, hal.AddrIn(hal.SelectorSubDeviceExtraLatency, scope, hal.ElementMain), nil)
}

// DriftCompensation reports whether the aggregate resamples this
// sub-device to the main clock.
func (s *SubDevice) DriftCompensation() (bool, error) {
	return hal.ReadBool(s.backend, s.id, hal.Addr(hal.SelectorSubDeviceDriftCompensation))
}

// SetDriftCompensation switches drift compensation.
func (s *SubDevice) SetDriftCompensation(on bool) error {
	return hal.WriteBool(s.backend, s.id, hal.Addr(hal.SelectorSubDeviceDriftCompensation), on)
}

// DriftCompensationQuality reports the resampler quality setting.
func (s *SubDevice) DriftCompensationQuality() (uint32, error) {
	return hal.ReadScalar[uint32](s.backend, s.id, hal.Addr(hal.SelectorSubDeviceDriftQuality), nil)
}

// EndPointDevice wraps a transport manager's endpoint device.
type EndPointDevice struct {
	Device
}

func newEndPointDevice(b hal.Backend, id hal.ObjectID) *EndPointDevice {
	return &EndPointDevice{Device: Device{Object: newObject(b, id)}}
}

// Composition returns the endpoint composition description.
func (e *EndPointDevice) Composition() ([]byte, error) {
	size, err := e.backend.Size(e.id, hal.Addr(hal.SelectorAggregateComposition), nil)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	n, err := e.backend.Read(e.id, hal.Addr(hal.SelectorAggregateComposition), nil, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// EndPoints lists the endpoint handles backing the device.
func (e *EndPointDevice) EndPoints() ([]hal.ObjectID, error) {
	return hal.ReadObjectIDs(e.backend, e.id, hal.Addr(hal.SelectorEndPointList), nil)
}

// IsPrivate reports whether the endpoint device is visible only to the
// process that created it.
func (e *EndPointDevice) IsPrivate() (bool, error) {
	return hal.ReadBool(e.backend, e.id, hal.Addr(hal.SelectorEndPointDeviceIsPrivate))
}
