package hal

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestMissingPropertyIsUnsupported(t *testing.T) {
	m := NewMock()
	obj := ObjectID(3)
	addr := Addr(SelectorDeviceUID)

	_, err := m.ReadString(obj, addr, nil)
	if err == nil {
		t.Fatal("reading a missing property succeeded")
	}
	if !IsUnsupported(err) {
		t.Errorf("missing property error not classified as unsupported: %v", err)
	}

	var halErr *Error
	if !errors.As(err, &halErr) {
		t.Fatalf("error is not *Error: %v", err)
	}
	if halErr.Status != StatusUnknownProperty {
		t.Errorf("status = %v, want StatusUnknownProperty", halErr.Status)
	}
	if halErr.Object != obj {
		t.Errorf("error object = %d, want %d", halErr.Object, obj)
	}
}

func TestReadOnlyProperty(t *testing.T) {
	m := NewMock()
	obj := ObjectID(3)
	addr := Addr(SelectorDeviceUID)
	m.SetString(obj, addr, "uid-1")
	m.SetReadOnly(obj, addr)

	settable, err := m.IsSettable(obj, addr)
	if err != nil {
		t.Fatalf("IsSettable: %v", err)
	}
	if settable {
		t.Error("read-only property reports settable")
	}

	err = m.WriteString(obj, addr, nil, "uid-2")
	if !IsNotSettable(err) {
		t.Errorf("write to read-only property: %v, want not-settable", err)
	}

	// The stored value is untouched.
	if s, _ := m.ReadString(obj, addr, nil); s != "uid-1" {
		t.Errorf("value after rejected write = %q", s)
	}
}

// Writes carry the qualifier the same way reads do: a qualified write
// lands on the qualified entry, not the unqualified fallback.
func TestQualifiedWrite(t *testing.T) {
	m := NewMock()
	obj := ObjectID(3)
	addr := Addr(SelectorSelectorControlItemName)
	qualifier := []byte{1, 0, 0, 0}

	m.SetQualified(obj, addr, qualifier, uint32(0))
	m.SetString(obj, addr, "fallback")

	if err := m.WriteString(obj, addr, qualifier, "Internal Mic"); err != nil {
		t.Fatalf("qualified write: %v", err)
	}

	got, err := m.ReadString(obj, addr, qualifier)
	if err != nil {
		t.Fatalf("qualified read: %v", err)
	}
	if got != "Internal Mic" {
		t.Errorf("qualified value = %q", got)
	}
	if got, _ := m.ReadString(obj, addr, nil); got != "fallback" {
		t.Errorf("unqualified value = %q, want untouched fallback", got)
	}
}

func TestFailWith(t *testing.T) {
	m := NewMock()
	obj := ObjectID(3)
	addr := Addr(SelectorNominalSampleRate)
	m.Set(obj, addr, 48000.0)

	m.FailWith(obj, addr, StatusNotReady)
	if _, err := ReadScalar[float64](m, obj, addr, nil); err == nil {
		t.Fatal("read under injected failure succeeded")
	}

	m.FailWith(obj, addr, StatusOK)
	if _, err := ReadScalar[float64](m, obj, addr, nil); err != nil {
		t.Fatalf("read after clearing failure: %v", err)
	}
}

func TestListenerReplaces(t *testing.T) {
	m := NewMock()
	obj := ObjectID(3)
	addr := Addr(SelectorDeviceIsAlive)

	var first, second atomic.Int32
	if err := m.AddListener(obj, addr, func(PropertyAddress) { first.Add(1) }); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := m.AddListener(obj, addr, func(PropertyAddress) { second.Add(1) }); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if n := m.ListenerCount(); n != 1 {
		t.Fatalf("listener count after re-register = %d, want 1", n)
	}

	m.Notify(obj, addr)
	m.Sync()
	if first.Load() != 0 {
		t.Error("replaced listener still fired")
	}
	if second.Load() != 1 {
		t.Errorf("current listener fired %d times, want 1", second.Load())
	}
}

func TestRemovedListenerNeverFires(t *testing.T) {
	m := NewMock()
	obj := ObjectID(3)
	addr := Addr(SelectorDeviceIsAlive)

	var fired atomic.Int32
	if err := m.AddListener(obj, addr, func(PropertyAddress) { fired.Add(1) }); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := m.RemoveListener(obj, addr); err != nil {
		t.Fatalf("remove: %v", err)
	}

	m.Notify(obj, addr)
	m.Sync()
	if fired.Load() != 0 {
		t.Errorf("removed listener fired %d times", fired.Load())
	}
	if n := m.ListenerCount(); n != 0 {
		t.Errorf("listener count = %d, want 0", n)
	}
}

func TestListenerPerAddress(t *testing.T) {
	m := NewMock()
	obj := ObjectID(3)
	alive := Addr(SelectorDeviceIsAlive)
	rate := Addr(SelectorNominalSampleRate)

	var aliveFired, rateFired atomic.Int32
	m.AddListener(obj, alive, func(PropertyAddress) { aliveFired.Add(1) })
	m.AddListener(obj, rate, func(PropertyAddress) { rateFired.Add(1) })

	m.Notify(obj, rate)
	m.Sync()
	if aliveFired.Load() != 0 || rateFired.Load() != 1 {
		t.Errorf("fired = (%d, %d), want (0, 1)", aliveFired.Load(), rateFired.Load())
	}
}

func TestMockAggregates(t *testing.T) {
	m := NewMock()
	desc := []byte(`{"name":"combined"}`)

	id, err := m.CreateAggregate(desc)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == UnknownObjectID {
		t.Fatal("aggregate got the zero handle")
	}
	if got := string(m.AggregateDescription(id)); got != string(desc) {
		t.Errorf("recorded description = %q", got)
	}

	// The new object reports the aggregate class.
	class, err := ReadScalar[uint32](m, id, Addr(SelectorClass), nil)
	if err != nil {
		t.Fatalf("class: %v", err)
	}
	if ClassID(class) != ClassAggregateDevice {
		t.Errorf("class = %v, want aggregate", ClassID(class))
	}

	if err := m.DestroyAggregate(id); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if err := m.DestroyAggregate(id); err == nil {
		t.Error("double destroy succeeded")
	}
}
