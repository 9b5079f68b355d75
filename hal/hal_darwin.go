//go:build darwin && cgo

package hal

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework CoreAudio -framework CoreFoundation -framework Foundation
#include <stdlib.h>
#include "native/shim.m"
*/
import "C"
import "unsafe"

// nativeBackend talks to the live CoreAudio HAL.
type nativeBackend struct{}

// NewNativeBackend returns the CoreAudio-backed implementation.
func NewNativeBackend() Backend {
	return nativeBackend{}
}

func newPlatformBackend() Backend { return nativeBackend{} }

func qualifierPtr(q []byte) (unsafe.Pointer, C.uint32_t) {
	if len(q) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(&q[0]), C.uint32_t(len(q))
}

func (nativeBackend) Size(obj ObjectID, addr PropertyAddress, qualifier []byte) (int, error) {
	qp, qn := qualifierPtr(qualifier)
	var size C.uint32_t
	status := C.halSize(C.uint32_t(obj),
		C.uint32_t(addr.Selector), C.uint32_t(addr.Scope), C.uint32_t(addr.Element),
		qp, qn, &size)
	if status != 0 {
		return 0, newError("size", obj, addr, Status(status))
	}
	return int(size), nil
}

func (nativeBackend) Read(obj ObjectID, addr PropertyAddress, qualifier []byte, dst []byte) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	qp, qn := qualifierPtr(qualifier)
	var size C.uint32_t
	status := C.halRead(C.uint32_t(obj),
		C.uint32_t(addr.Selector), C.uint32_t(addr.Scope), C.uint32_t(addr.Element),
		qp, qn, unsafe.Pointer(&dst[0]), C.uint32_t(len(dst)), &size)
	if status != 0 {
		return 0, newError("read", obj, addr, Status(status))
	}
	return int(size), nil
}

func (nativeBackend) Write(obj ObjectID, addr PropertyAddress, qualifier []byte, data []byte) error {
	qp, qn := qualifierPtr(qualifier)
	var dp unsafe.Pointer
	if len(data) > 0 {
		dp = unsafe.Pointer(&data[0])
	}
	status := C.halWrite(C.uint32_t(obj),
		C.uint32_t(addr.Selector), C.uint32_t(addr.Scope), C.uint32_t(addr.Element),
		qp, qn, dp, C.uint32_t(len(data)))
	if status != 0 {
		return newError("write", obj, addr, Status(status))
	}
	return nil
}

func (nativeBackend) HasProperty(obj ObjectID, addr PropertyAddress) bool {
	return C.halHasProperty(C.uint32_t(obj),
		C.uint32_t(addr.Selector), C.uint32_t(addr.Scope), C.uint32_t(addr.Element)) != 0
}

func (nativeBackend) IsSettable(obj ObjectID, addr PropertyAddress) (bool, error) {
	var settable C.int
	status := C.halIsSettable(C.uint32_t(obj),
		C.uint32_t(addr.Selector), C.uint32_t(addr.Scope), C.uint32_t(addr.Element),
		&settable)
	if status != 0 {
		return false, newError("settable", obj, addr, Status(status))
	}
	return settable != 0, nil
}

func (nativeBackend) ReadString(obj ObjectID, addr PropertyAddress, qualifier []byte) (string, error) {
	qp, qn := qualifierPtr(qualifier)
	var out *C.char
	status := C.halReadString(C.uint32_t(obj),
		C.uint32_t(addr.Selector), C.uint32_t(addr.Scope), C.uint32_t(addr.Element),
		qp, qn, &out)
	if status != 0 {
		return "", newError("read", obj, addr, Status(status))
	}
	defer C.free(unsafe.Pointer(out))
	return C.GoString(out), nil
}

func (nativeBackend) WriteString(obj ObjectID, addr PropertyAddress, qualifier []byte, value string) error {
	cs := C.CString(value)
	defer C.free(unsafe.Pointer(cs))
	qp, qn := qualifierPtr(qualifier)
	status := C.halWriteString(C.uint32_t(obj),
		C.uint32_t(addr.Selector), C.uint32_t(addr.Scope), C.uint32_t(addr.Element),
		qp, qn, cs)
	if status != 0 {
		return newError("write", obj, addr, Status(status))
	}
	return nil
}

func (nativeBackend) AddListener(obj ObjectID, addr PropertyAddress, fn ListenerFunc) error {
	return nativeListeners.add(obj, addr, fn)
}

func (nativeBackend) RemoveListener(obj ObjectID, addr PropertyAddress) error {
	return nativeListeners.remove(obj, addr)
}

// CreateAggregate implements AggregateCreator against the live HAL. The
// description travels as JSON and is rebuilt into the composition
// dictionary on the C side.
func (nativeBackend) CreateAggregate(description []byte) (ObjectID, error) {
	cs := C.CString(string(description))
	defer C.free(unsafe.Pointer(cs))
	var id C.uint32_t
	status := C.halCreateAggregate(cs, &id)
	if status != 0 {
		return UnknownObjectID, newError("createAggregate", UnknownObjectID, PropertyAddress{}, Status(status))
	}
	return ObjectID(id), nil
}

// DestroyAggregate implements AggregateCreator.
func (nativeBackend) DestroyAggregate(obj ObjectID) error {
	status := C.halDestroyAggregate(C.uint32_t(obj))
	if status != 0 {
		return newError("destroyAggregate", obj, PropertyAddress{}, Status(status))
	}
	return nil
}

func registerNativeListener(obj ObjectID, addr PropertyAddress, cookie uintptr) error {
	status := C.halAddListener(C.uint32_t(obj),
		C.uint32_t(addr.Selector), C.uint32_t(addr.Scope), C.uint32_t(addr.Element),
		C.uintptr_t(cookie))
	if status != 0 {
		return newError("addListener", obj, addr, Status(status))
	}
	return nil
}

func unregisterNativeListener(obj ObjectID, addr PropertyAddress, cookie uintptr) error {
	status := C.halRemoveListener(C.uint32_t(obj),
		C.uint32_t(addr.Selector), C.uint32_t(addr.Scope), C.uint32_t(addr.Element),
		C.uintptr_t(cookie))
	if status != 0 {
		return newError("removeListener", obj, addr, Status(status))
	}
	return nil
}

var (
	_ Backend          = nativeBackend{}
	_ AggregateCreator = nativeBackend{}
)
