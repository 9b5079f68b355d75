package hal

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Generic accessors layered on the primitive I/O. All multi-byte values use
// the machine's native byte order, matching what the HAL writes into
// property storage.

// ReadScalar reads a fixed-size value (arithmetic scalar or fixed-layout
// struct) from a property.
func ReadScalar[T any](b Backend, obj ObjectID, addr PropertyAddress, qualifier []byte) (T, error) {
	var v T
	size := binary.Size(v)
	if size < 0 {
		return v, fmt.Errorf("hal: %T is not fixed-size", v)
	}
	buf := make([]byte, size)
	n, err := b.Read(obj, addr, qualifier, buf)
	if err != nil {
		return v, err
	}
	if n != size {
		return v, newError("read", obj, addr, StatusBadPropertySize)
	}
	if err := binary.Read(bytes.NewReader(buf), binary.NativeEndian, &v); err != nil {
		return v, fmt.Errorf("hal: decode %s: %w", addr, err)
	}
	return v, nil
}

// WriteScalar writes a fixed-size value to a property.
func WriteScalar[T any](b Backend, obj ObjectID, addr PropertyAddress, qualifier []byte, v T) error {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.NativeEndian, v); err != nil {
		return fmt.Errorf("hal: encode %s: %w", addr, err)
	}
	return b.Write(obj, addr, qualifier, buf.Bytes())
}

// ReadSlice reads a variable-length array property using the two-phase
// size-then-read protocol. The element count is whatever the reported size
// divides into.
func ReadSlice[T any](b Backend, obj ObjectID, addr PropertyAddress, qualifier []byte) ([]T, error) {
	var elem T
	elemSize := binary.Size(elem)
	if elemSize <= 0 {
		return nil, fmt.Errorf("hal: %T is not fixed-size", elem)
	}
	total, err := b.Size(obj, addr, qualifier)
	if err != nil {
		return nil, err
	}
	count := total / elemSize
	if count == 0 {
		return nil, nil
	}
	buf := make([]byte, count*elemSize)
	n, err := b.Read(obj, addr, qualifier, buf)
	if err != nil {
		return nil, err
	}
	out := make([]T, n/elemSize)
	if err := binary.Read(bytes.NewReader(buf[:len(out)*elemSize]), binary.NativeEndian, &out); err != nil {
		return nil, fmt.Errorf("hal: decode %s: %w", addr, err)
	}
	return out, nil
}

// WriteSlice writes a variable-length array property.
func WriteSlice[T any](b Backend, obj ObjectID, addr PropertyAddress, qualifier []byte, vs []T) error {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.NativeEndian, vs); err != nil {
		return fmt.Errorf("hal: encode %s: %w", addr, err)
	}
	return b.Write(obj, addr, qualifier, buf.Bytes())
}

// ReadBool reads the HAL's uint32 boolean convention.
func ReadBool(b Backend, obj ObjectID, addr PropertyAddress) (bool, error) {
	v, err := ReadScalar[uint32](b, obj, addr, nil)
	return v != 0, err
}

// WriteBool writes the HAL's uint32 boolean convention.
func WriteBool(b Backend, obj ObjectID, addr PropertyAddress, v bool) error {
	var raw uint32
	if v {
		raw = 1
	}
	return WriteScalar(b, obj, addr, nil, raw)
}

// ReadObjectIDs reads a property whose value is an array of object handles.
func ReadObjectIDs(b Backend, obj ObjectID, addr PropertyAddress, qualifier []byte) ([]ObjectID, error) {
	raw, err := ReadSlice[uint32](b, obj, addr, qualifier)
	if err != nil {
		return nil, err
	}
	ids := make([]ObjectID, len(raw))
	for i, v := range raw {
		ids[i] = ObjectID(v)
	}
	return ids, nil
}

// TranslateUID resolves a HAL UID string to an object handle through one of
// the translation selectors. The UID travels in the qualifier; a zero
// result means the UID named nothing.
func TranslateUID(b Backend, obj ObjectID, sel Selector, uid string) (ObjectID, error) {
	v, err := ReadScalar[uint32](b, obj, Addr(sel), []byte(uid))
	if err != nil {
		return UnknownObjectID, err
	}
	return ObjectID(v), nil
}
