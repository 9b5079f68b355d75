package coreaudio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/shaban/coreaudio/hal"
)

// AudioObject is implemented by every wrapper type in the hierarchy.
type AudioObject interface {
	// ID returns the opaque HAL handle the wrapper is bound to.
	ID() hal.ObjectID
	// Close removes every listener the wrapper registered. The underlying
	// OS object is unaffected; its lifetime belongs to the HAL.
	Close() error
}

// Object is the root of the wrapper hierarchy. It owns nothing but the
// object handle and its listener registrations; several wrappers may
// legally reference the same handle.
type Object struct {
	backend hal.Backend
	id      hal.ObjectID

	mu      sync.Mutex
	watches map[hal.PropertyAddress]hal.ListenerFunc
}

func newObject(b hal.Backend, id hal.ObjectID) Object {
	return Object{backend: b, id: id}
}

// ID implements AudioObject.
func (o *Object) ID() hal.ObjectID { return o.id }

// Backend returns the backend the wrapper issues its calls against.
func (o *Object) Backend() hal.Backend { return o.backend }

// ClassID reports the OS class tag of the object.
func (o *Object) ClassID() (hal.ClassID, error) {
	v, err := hal.ReadScalar[uint32](o.backend, o.id, hal.Addr(hal.SelectorClass), nil)
	return hal.ClassID(v), err
}

// BaseClassID reports the OS base class tag of the object.
func (o *Object) BaseClassID() (hal.ClassID, error) {
	v, err := hal.ReadScalar[uint32](o.backend, o.id, hal.Addr(hal.SelectorBaseClass), nil)
	return hal.ClassID(v), err
}

// OwnerID reports the handle of the object that owns this one.
func (o *Object) OwnerID() (hal.ObjectID, error) {
	v, err := hal.ReadScalar[uint32](o.backend, o.id, hal.Addr(hal.SelectorOwner), nil)
	return hal.ObjectID(v), err
}

// Name returns the object's human-readable name.
func (o *Object) Name() (string, error) {
	return o.backend.ReadString(o.id, hal.Addr(hal.SelectorName), nil)
}

// ModelName returns the object's model name.
func (o *Object) ModelName() (string, error) {
	return o.backend.ReadString(o.id, hal.Addr(hal.SelectorModelName), nil)
}

// Manufacturer returns the object's manufacturer name.
func (o *Object) Manufacturer() (string, error) {
	return o.backend.ReadString(o.id, hal.Addr(hal.SelectorManufacturer), nil)
}

// SerialNumber returns the object's serial number string.
func (o *Object) SerialNumber() (string, error) {
	return o.backend.ReadString(o.id, hal.Addr(hal.SelectorSerialNumber), nil)
}

// FirmwareVersion returns the object's firmware version string.
func (o *Object) FirmwareVersion() (string, error) {
	return o.backend.ReadString(o.id, hal.Addr(hal.SelectorFirmwareVersion), nil)
}

// ElementName returns the name of one element within a scope.
func (o *Object) ElementName(scope hal.Scope, element hal.Element) (string, error) {
	return o.backend.ReadString(o.id, hal.AddrIn(hal.SelectorElementName, scope, element), nil)
}

// OwnedObjects lists the handles owned by this object, optionally filtered
// to the given classes (the filter travels as the qualifier).
func (o *Object) OwnedObjects(classes ...hal.ClassID) ([]hal.ObjectID, error) {
	var qualifier []byte
	if len(classes) > 0 {
		qualifier = make([]byte, 4*len(classes))
		for i, c := range classes {
			binary.NativeEndian.PutUint32(qualifier[i*4:], uint32(c))
		}
	}
	return hal.ReadObjectIDs(o.backend, o.id, hal.Addr(hal.SelectorOwnedObjects), qualifier)
}

// HasProperty reports whether the object publishes the addressed property.
func (o *Object) HasProperty(addr hal.PropertyAddress) bool {
	return o.backend.HasProperty(o.id, addr)
}

// IsPropertySettable reports whether the addressed property accepts writes.
func (o *Object) IsPropertySettable(addr hal.PropertyAddress) (bool, error) {
	return o.backend.IsSettable(o.id, addr)
}

// Identify toggles the object's identify indicator (devices with an LED
// blink it).
func (o *Object) Identify(on bool) error {
	return hal.WriteBool(o.backend, o.id, hal.Addr(hal.SelectorIdentify), on)
}

// Watch registers fn for change notifications on the addressed property.
// At most one callback exists per (wrapper, address): watching an address
// again replaces the previous callback, and a nil fn removes it. Callbacks
// arrive on a background goroutine chosen by the OS, unordered and
// possibly concurrent across distinct properties.
func (o *Object) Watch(addr hal.PropertyAddress, fn hal.ListenerFunc) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if fn == nil {
		if _, ok := o.watches[addr]; !ok {
			return nil
		}
		delete(o.watches, addr)
		return o.backend.RemoveListener(o.id, addr)
	}
	if o.watches == nil {
		o.watches = make(map[hal.PropertyAddress]hal.ListenerFunc)
	}
	_, replacing := o.watches[addr]
	o.watches[addr] = fn
	if replacing {
		// The trampoline below reads the current callback on every
		// delivery, so swapping the map entry is the whole replacement.
		return nil
	}
	err := o.backend.AddListener(o.id, addr, func(a hal.PropertyAddress) {
		o.mu.Lock()
		cb := o.watches[addr]
		o.mu.Unlock()
		if cb != nil {
			cb(a)
		}
	})
	if err != nil {
		delete(o.watches, addr)
		return err
	}
	return nil
}

// Unwatch removes the callback for addr, if any.
func (o *Object) Unwatch(addr hal.PropertyAddress) error {
	return o.Watch(addr, nil)
}

// Close implements AudioObject.
func (o *Object) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	var errs []error
	for addr := range o.watches {
		if err := o.backend.RemoveListener(o.id, addr); err != nil {
			errs = append(errs, err)
		}
	}
	o.watches = nil
	return errors.Join(errs...)
}

func (o *Object) String() string {
	return fmt.Sprintf("AudioObject(%d)", o.id)
}
