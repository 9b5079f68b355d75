package coreaudio

import "github.com/shaban/coreaudio/hal"

// Stream wraps one unidirectional stream of a device.
type Stream struct {
	Object
}

func newStream(b hal.Backend, id hal.ObjectID) *Stream {
	return &Stream{Object: newObject(b, id)}
}

// IsActive reports whether the stream participates in IO.
func (s *Stream) IsActive() (bool, error) {
	return hal.ReadBool(s.backend, s.id, hal.Addr(hal.SelectorStreamIsActive))
}

// IsInput reports the stream direction; the HAL encodes input as 1.
func (s *Stream) IsInput() (bool, error) {
	v, err := hal.ReadScalar[uint32](s.backend, s.id, hal.Addr(hal.SelectorStreamDirection), nil)
	return v == 1, err
}

// TerminalType reports what the stream connects to (line, speaker,
// microphone, ...), as the HAL's raw terminal tag.
func (s *Stream) TerminalType() (uint32, error) {
	return hal.ReadScalar[uint32](s.backend, s.id, hal.Addr(hal.SelectorStreamTerminalType), nil)
}

// StartingChannel reports the first device channel this stream carries.
func (s *Stream) StartingChannel() (uint32, error) {
	return hal.ReadScalar[uint32](s.backend, s.id, hal.Addr(hal.SelectorStreamStartingChannel), nil)
}

// Latency reports the stream's additional latency, in frames.
func (s *Stream) Latency() (uint32, error) {
	return hal.ReadScalar[uint32](s.backend, s.id, hal.Addr(hal.SelectorLatency), nil)
}

// VirtualFormat returns the format seen by clients.
func (s *Stream) VirtualFormat() (hal.StreamDescription, error) {
	return hal.ReadScalar[hal.StreamDescription](s.backend, s.id, hal.Addr(hal.SelectorStreamVirtualFormat), nil)
}

// SetVirtualFormat changes the format seen by clients.
func (s *Stream) SetVirtualFormat(f hal.StreamDescription) error {
	return hal.WriteScalar(s.backend, s.id, hal.Addr(hal.SelectorStreamVirtualFormat), nil, f)
}

// PhysicalFormat returns the format the hardware runs in.
func (s *Stream) PhysicalFormat() (hal.StreamDescription, error) {
	return hal.ReadScalar[hal.StreamDescription](s.backend, s.id, hal.Addr(hal.SelectorStreamPhysicalFormat), nil)
}

// SetPhysicalFormat changes the hardware format.
func (s *Stream) SetPhysicalFormat(f hal.StreamDescription) error {
	return hal.WriteScalar(s.backend, s.id, hal.Addr(hal.SelectorStreamPhysicalFormat), nil, f)
}

// RangedStreamDescription is one entry of the available-format lists: a
// format whose sample-rate field may span a range.
type RangedStreamDescription struct {
	Format          hal.StreamDescription
	SampleRateRange hal.ValueRange
}

// AvailableVirtualFormats lists the client-visible formats the stream
// supports.
func (s *Stream) AvailableVirtualFormats() ([]RangedStreamDescription, error) {
	return hal.ReadSlice[RangedStreamDescription](s.backend, s.id, hal.Addr(hal.SelectorStreamAvailableVirtualFormats), nil)
}

// AvailablePhysicalFormats lists the hardware formats the stream supports.
func (s *Stream) AvailablePhysicalFormats() ([]RangedStreamDescription, error) {
	return hal.ReadSlice[RangedStreamDescription](s.backend, s.id, hal.Addr(hal.SelectorStreamAvailablePhysicalFormats), nil)
}
