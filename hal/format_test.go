package hal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueRangeContains(t *testing.T) {
	r := ValueRange{Minimum: 8000, Maximum: 96000}
	require.True(t, r.Contains(8000))
	require.True(t, r.Contains(96000))
	require.True(t, r.Contains(44100))
	require.False(t, r.Contains(7999.9))
	require.False(t, r.Contains(176400))

	collapsed := ValueRange{Minimum: 48000, Maximum: 48000}
	require.True(t, collapsed.Contains(48000))
	require.False(t, collapsed.Contains(44100))
}

func TestChannelLayoutCodec(t *testing.T) {
	want := ChannelLayout{
		Tag:    0x00650002, // UseChannelDescriptions equivalent tag
		Bitmap: 0,
		Descriptions: []ChannelDescription{
			{Label: 1, Coordinates: [3]float32{-1, 0, 0}},
			{Label: 2, Coordinates: [3]float32{1, 0, 0}},
		},
	}

	data, err := want.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, channelLayoutHeaderSize+2*channelDescriptionSize)

	var got ChannelLayout
	require.NoError(t, got.UnmarshalBinary(data))
	require.Equal(t, want, got)
}

func TestChannelLayoutTruncated(t *testing.T) {
	var l ChannelLayout
	require.Error(t, l.UnmarshalBinary([]byte{1, 2, 3}))

	// Header declaring more descriptions than the payload carries.
	full, err := ChannelLayout{
		Descriptions: []ChannelDescription{{Label: 1}, {Label: 2}},
	}.MarshalBinary()
	require.NoError(t, err)
	require.Error(t, l.UnmarshalBinary(full[:len(full)-1]))
}

func TestBufferListCodec(t *testing.T) {
	want := BufferList{Buffers: []Buffer{
		{NumberChannels: 2, DataByteSize: 512},
		{NumberChannels: 6, DataByteSize: 1536},
	}}

	data, err := want.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, bufferListHeaderSize+2*bufferEntrySize)

	var got BufferList
	require.NoError(t, got.UnmarshalBinary(data))
	require.Equal(t, want, got)
	require.Equal(t, 8, got.TotalChannels())
}

func TestBufferListEmpty(t *testing.T) {
	data, err := BufferList{}.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, bufferListHeaderSize)

	var got BufferList
	require.NoError(t, got.UnmarshalBinary(data))
	require.Equal(t, 0, got.TotalChannels())
}

func TestReadBufferList(t *testing.T) {
	m := NewMock()
	obj := ObjectID(20)
	addr := AddrIn(SelectorStreamConfiguration, ScopeOutput, ElementMain)

	data, err := BufferList{Buffers: []Buffer{{NumberChannels: 2}}}.MarshalBinary()
	require.NoError(t, err)
	m.SetBytes(obj, addr, data)

	bl, err := ReadBufferList(m, obj, addr)
	require.NoError(t, err)
	require.Equal(t, 2, bl.TotalChannels())
}

func TestReadChannelLayout(t *testing.T) {
	m := NewMock()
	obj := ObjectID(20)
	addr := AddrIn(SelectorPreferredChannelLayout, ScopeOutput, ElementMain)

	want := ChannelLayout{Tag: 1, Descriptions: []ChannelDescription{{Label: 3}}}
	data, err := want.MarshalBinary()
	require.NoError(t, err)
	m.SetBytes(obj, addr, data)

	got, err := ReadChannelLayout(m, obj, addr)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
