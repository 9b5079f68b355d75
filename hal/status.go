package hal

import (
	"errors"
	"fmt"
)

// Status is the raw OS status code of a failed HAL call. The error taxonomy
// of the HAL is flat: the status code is the only discriminator.
type Status int32

const (
	StatusOK Status = 0

	StatusNotRunning           Status = 0x73746f70 // 'stop'
	StatusUnspecified          Status = 0x77686174 // 'what'
	StatusUnknownProperty      Status = 0x77686f3f // 'who?'
	StatusBadPropertySize      Status = 0x2173697a // '!siz'
	StatusIllegalOperation     Status = 0x6e6f7065 // 'nope'
	StatusBadObject            Status = 0x216f626a // '!obj'
	StatusBadDevice            Status = 0x21646576 // '!dev'
	StatusBadStream            Status = 0x21737472 // '!str'
	StatusUnsupportedOperation Status = 0x756e6f70 // 'unop'
	StatusNotReady             Status = 0x6e726479 // 'nrdy'
	StatusPermissions          Status = 0x21686f67 // '!hog'
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotRunning:
		return "hardware not running"
	case StatusUnspecified:
		return "unspecified error"
	case StatusUnknownProperty:
		return "unknown property"
	case StatusBadPropertySize:
		return "bad property size"
	case StatusIllegalOperation:
		return "illegal operation"
	case StatusBadObject:
		return "bad object"
	case StatusBadDevice:
		return "bad device"
	case StatusBadStream:
		return "bad stream"
	case StatusUnsupportedOperation:
		return "unsupported operation"
	case StatusNotReady:
		return "not ready"
	case StatusPermissions:
		return "permissions"
	}
	return fourCCString(uint32(s))
}

// Error carries a failed HAL call back to the caller: which operation, on
// which object and address, and the OS status code.
type Error struct {
	Op      string
	Object  ObjectID
	Address PropertyAddress
	Status  Status
}

func (e *Error) Error() string {
	return fmt.Sprintf("hal: %s %s on object %d: %s", e.Op, e.Address, e.Object, e.Status)
}

func newError(op string, obj ObjectID, addr PropertyAddress, status Status) error {
	return &Error{Op: op, Object: obj, Address: addr, Status: status}
}

// IsUnsupported reports whether err means the object does not publish the
// addressed property.
func IsUnsupported(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == StatusUnknownProperty
}

// IsNotSettable reports whether err means the property exists but refuses
// writes.
func IsNotSettable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Status == StatusUnsupportedOperation || e.Status == StatusIllegalOperation
}
