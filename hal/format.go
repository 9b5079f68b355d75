package hal

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Wire structures of the property protocol. The fixed-size ones round-trip
// through ReadScalar/WriteScalar; the two count-prefixed ones carry their
// own codecs because their length is data-dependent and the C layouts pad.

// ValueRange is a closed min/max interval, used for sample-rate and buffer
// size ranges.
type ValueRange struct {
	Minimum float64
	Maximum float64
}

// Contains reports whether v falls inside the range.
func (r ValueRange) Contains(v float64) bool {
	return v >= r.Minimum && v <= r.Maximum
}

// StreamDescription describes one stream format, byte for byte the HAL's
// AudioStreamBasicDescription.
type StreamDescription struct {
	SampleRate       float64
	FormatID         uint32
	FormatFlags      uint32
	BytesPerPacket   uint32
	FramesPerPacket  uint32
	BytesPerFrame    uint32
	ChannelsPerFrame uint32
	BitsPerChannel   uint32
	Reserved         uint32
}

// FormatLinearPCM is the one format ID this layer ever interprets.
const FormatLinearPCM uint32 = 0x6c70636d // 'lpcm'

// ChannelDescription locates one channel inside a layout.
type ChannelDescription struct {
	Label       uint32
	Flags       uint32
	Coordinates [3]float32
}

// ChannelLayout is the variable-length channel layout structure: a tag, a
// bitmap, and a count-prefixed run of channel descriptions.
type ChannelLayout struct {
	Tag          uint32
	Bitmap       uint32
	Descriptions []ChannelDescription
}

const (
	channelLayoutHeaderSize = 12
	channelDescriptionSize  = 20
)

// MarshalBinary encodes the layout in the HAL's packed wire form.
func (l ChannelLayout) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.NativeEndian, l.Tag)
	binary.Write(&buf, binary.NativeEndian, l.Bitmap)
	binary.Write(&buf, binary.NativeEndian, uint32(len(l.Descriptions)))
	for _, d := range l.Descriptions {
		if err := binary.Write(&buf, binary.NativeEndian, d); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes the packed wire form, validating the declared
// description count against the available bytes.
func (l *ChannelLayout) UnmarshalBinary(data []byte) error {
	if len(data) < channelLayoutHeaderSize {
		return fmt.Errorf("hal: channel layout truncated: %d bytes", len(data))
	}
	r := bytes.NewReader(data)
	var count uint32
	binary.Read(r, binary.NativeEndian, &l.Tag)
	binary.Read(r, binary.NativeEndian, &l.Bitmap)
	binary.Read(r, binary.NativeEndian, &count)
	if need := int(count) * channelDescriptionSize; r.Len() < need {
		return fmt.Errorf("hal: channel layout declares %d descriptions, %d bytes remain", count, r.Len())
	}
	l.Descriptions = make([]ChannelDescription, count)
	for i := range l.Descriptions {
		if err := binary.Read(r, binary.NativeEndian, &l.Descriptions[i]); err != nil {
			return err
		}
	}
	return nil
}

// Buffer is one entry of a BufferList. Only the channel count and byte size
// are meaningful on this side of the boundary; the data pointer of the C
// struct never crosses it.
type Buffer struct {
	NumberChannels uint32
	DataByteSize   uint32
}

// BufferList mirrors the HAL's count-prefixed AudioBufferList. Devices
// publish it as their stream configuration: one entry per stream, channel
// counts per entry.
type BufferList struct {
	Buffers []Buffer
}

// TotalChannels sums the channel counts of all buffers.
func (bl BufferList) TotalChannels() int {
	n := 0
	for _, b := range bl.Buffers {
		n += int(b.NumberChannels)
	}
	return n
}

// The 64-bit C layout: u32 count, 4 bytes padding, then 16 bytes per buffer
// (u32 channels, u32 size, 8-byte pointer).
const (
	bufferListHeaderSize = 8
	bufferEntrySize      = 16
)

// MarshalBinary encodes the list in the 64-bit C layout with zeroed data
// pointers.
func (bl BufferList) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.NativeEndian, uint32(len(bl.Buffers)))
	binary.Write(&buf, binary.NativeEndian, uint32(0)) // alignment padding
	for _, b := range bl.Buffers {
		binary.Write(&buf, binary.NativeEndian, b.NumberChannels)
		binary.Write(&buf, binary.NativeEndian, b.DataByteSize)
		binary.Write(&buf, binary.NativeEndian, uint64(0)) // mData
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes the 64-bit C layout.
func (bl *BufferList) UnmarshalBinary(data []byte) error {
	if len(data) < bufferListHeaderSize {
		return fmt.Errorf("hal: buffer list truncated: %d bytes", len(data))
	}
	r := bytes.NewReader(data)
	var count, pad uint32
	binary.Read(r, binary.NativeEndian, &count)
	binary.Read(r, binary.NativeEndian, &pad)
	if need := int(count) * bufferEntrySize; r.Len() < need {
		return fmt.Errorf("hal: buffer list declares %d buffers, %d bytes remain", count, r.Len())
	}
	bl.Buffers = make([]Buffer, count)
	for i := range bl.Buffers {
		var ptr uint64
		binary.Read(r, binary.NativeEndian, &bl.Buffers[i].NumberChannels)
		binary.Read(r, binary.NativeEndian, &bl.Buffers[i].DataByteSize)
		binary.Read(r, binary.NativeEndian, &ptr)
	}
	return nil
}

// ReadChannelLayout reads a variable-length channel layout property with
// the two-phase size-then-read protocol.
func ReadChannelLayout(b Backend, obj ObjectID, addr PropertyAddress) (ChannelLayout, error) {
	var layout ChannelLayout
	size, err := b.Size(obj, addr, nil)
	if err != nil {
		return layout, err
	}
	buf := make([]byte, size)
	n, err := b.Read(obj, addr, nil, buf)
	if err != nil {
		return layout, err
	}
	err = layout.UnmarshalBinary(buf[:n])
	return layout, err
}

// ReadBufferList reads a stream-configuration property with the two-phase
// size-then-read protocol.
func ReadBufferList(b Backend, obj ObjectID, addr PropertyAddress) (BufferList, error) {
	var bl BufferList
	size, err := b.Size(obj, addr, nil)
	if err != nil {
		return bl, err
	}
	buf := make([]byte, size)
	n, err := b.Read(obj, addr, nil, buf)
	if err != nil {
		return bl, err
	}
	err = bl.UnmarshalBinary(buf[:n])
	return bl, err
}
