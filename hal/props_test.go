package hal

import (
	"testing"
)

func TestScalarRoundTrip(t *testing.T) {
	m := NewMock()
	obj := ObjectID(42)
	addr := Addr(SelectorNominalSampleRate)

	if err := WriteScalar(m, obj, addr, nil, 48000.0); err == nil {
		t.Fatal("write to a property the object does not have succeeded")
	}

	m.Set(obj, addr, 44100.0)
	got, err := ReadScalar[float64](m, obj, addr, nil)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != 44100.0 {
		t.Errorf("read %v, want 44100", got)
	}

	if err := WriteScalar(m, obj, addr, nil, 96000.0); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, _ = ReadScalar[float64](m, obj, addr, nil)
	if got != 96000.0 {
		t.Errorf("read back %v after write, want 96000", got)
	}
}

func TestScalarStruct(t *testing.T) {
	m := NewMock()
	obj := ObjectID(7)
	addr := Addr(SelectorStreamVirtualFormat)

	want := StreamDescription{
		SampleRate:       48000,
		FormatID:         FormatLinearPCM,
		BytesPerPacket:   8,
		FramesPerPacket:  1,
		BytesPerFrame:    8,
		ChannelsPerFrame: 2,
		BitsPerChannel:   32,
	}
	m.Set(obj, addr, want)

	got, err := ReadScalar[StreamDescription](m, obj, addr, nil)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != want {
		t.Errorf("read %+v, want %+v", got, want)
	}
}

// The size the backend reports must be honored exactly; a short read is an
// error, not a truncation.
func TestScalarSizeMismatch(t *testing.T) {
	m := NewMock()
	obj := ObjectID(7)
	addr := Addr(SelectorNominalSampleRate)
	m.Set(obj, addr, uint32(48000)) // 4 bytes where float64 expects 8

	if _, err := ReadScalar[float64](m, obj, addr, nil); err == nil {
		t.Fatal("reading 4 stored bytes as float64 succeeded")
	}
}

func TestSliceRoundTrip(t *testing.T) {
	m := NewMock()
	obj := ObjectID(9)
	addr := Addr(SelectorAvailableNominalSampleRates)

	want := []ValueRange{
		{Minimum: 44100, Maximum: 44100},
		{Minimum: 8000, Maximum: 96000},
	}
	m.Set(obj, addr, want)

	got, err := ReadSlice[ValueRange](m, obj, addr, nil)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("read %v, want %v", got, want)
	}
}

func TestReadSliceEmpty(t *testing.T) {
	m := NewMock()
	obj := ObjectID(9)
	addr := Addr(SelectorDevices)
	m.Set(obj, addr, []uint32{})

	got, err := ReadSlice[uint32](m, obj, addr, nil)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("read %v, want empty", got)
	}
}

func TestBoolConvention(t *testing.T) {
	m := NewMock()
	obj := ObjectID(5)
	addr := Addr(SelectorDeviceIsAlive)

	// Any nonzero word is true.
	m.Set(obj, addr, uint32(2))
	got, err := ReadBool(m, obj, addr)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !got {
		t.Error("nonzero word read as false")
	}

	if err := WriteBool(m, obj, addr, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, _ = ReadBool(m, obj, addr); got {
		t.Error("false did not stick")
	}
}

func TestReadObjectIDs(t *testing.T) {
	m := NewMock()
	m.Set(SystemObjectID, Addr(SelectorDevices), []uint32{10, 11, 12})

	ids, err := ReadObjectIDs(m, SystemObjectID, Addr(SelectorDevices), nil)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(ids) != 3 || ids[0] != 10 || ids[2] != 12 {
		t.Errorf("ids = %v", ids)
	}
}

func TestTranslateUID(t *testing.T) {
	m := NewMock()
	addr := Addr(SelectorTranslateUIDToDevice)
	m.SetQualified(SystemObjectID, addr, []byte("BuiltInSpeakers"), uint32(30))
	m.Set(SystemObjectID, addr, uint32(UnknownObjectID))

	id, err := TranslateUID(m, SystemObjectID, SelectorTranslateUIDToDevice, "BuiltInSpeakers")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if id != 30 {
		t.Errorf("translated to %d, want 30", id)
	}

	// An unknown UID resolves to the zero handle, not an error.
	id, err = TranslateUID(m, SystemObjectID, SelectorTranslateUIDToDevice, "NoSuchDevice")
	if err != nil {
		t.Fatalf("translate unknown: %v", err)
	}
	if id != UnknownObjectID {
		t.Errorf("unknown UID translated to %d", id)
	}
}
