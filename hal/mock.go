package hal

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"
)

// Mock is an in-memory Backend for tests. It stores per-(object, address,
// qualifier) values, simulates change notifications on fresh goroutines the
// way the OS delivers them, and supports error injection.
//
// Mock is safe for concurrent use.
type Mock struct {
	mu         sync.RWMutex
	props      map[mockKey]map[string]*mockProp
	listeners  map[mockKey]ListenerFunc
	failures   map[mockKey]Status
	aggregates map[ObjectID][]byte
	nextAggID  ObjectID

	notifyWG sync.WaitGroup
}

type mockKey struct {
	obj  ObjectID
	addr PropertyAddress
}

type mockProp struct {
	data     []byte
	str      string
	isString bool
	settable bool
}

// NewMock returns an empty fake backend.
func NewMock() *Mock {
	return &Mock{
		props:      make(map[mockKey]map[string]*mockProp),
		listeners:  make(map[mockKey]ListenerFunc),
		failures:   make(map[mockKey]Status),
		aggregates: make(map[ObjectID][]byte),
		nextAggID:  0x1000,
	}
}

func (m *Mock) put(obj ObjectID, addr PropertyAddress, qualifier string, p *mockProp) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := mockKey{obj, addr}
	if m.props[k] == nil {
		m.props[k] = make(map[string]*mockProp)
	}
	m.props[k][qualifier] = p
}

// Set stores a fixed-size value (scalar, struct, or slice of either) for an
// unqualified property. The property is settable by default.
func (m *Mock) Set(obj ObjectID, addr PropertyAddress, v any) {
	m.SetQualified(obj, addr, nil, v)
}

// SetQualified stores a value that is only visible to reads carrying the
// given qualifier.
func (m *Mock) SetQualified(obj ObjectID, addr PropertyAddress, qualifier []byte, v any) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.NativeEndian, v); err != nil {
		panic(fmt.Sprintf("hal: mock value %T is not fixed-size: %v", v, err))
	}
	m.put(obj, addr, string(qualifier), &mockProp{data: buf.Bytes(), settable: true})
}

// SetBytes stores a raw byte value.
func (m *Mock) SetBytes(obj ObjectID, addr PropertyAddress, data []byte) {
	m.put(obj, addr, "", &mockProp{data: bytes.Clone(data), settable: true})
}

// SetString stores a string value, served through ReadString.
func (m *Mock) SetString(obj ObjectID, addr PropertyAddress, s string) {
	m.put(obj, addr, "", &mockProp{str: s, isString: true, settable: true})
}

// SetClass records the class and base class an object reports.
func (m *Mock) SetClass(obj ObjectID, class, baseClass ClassID) {
	m.Set(obj, Addr(SelectorClass), uint32(class))
	m.Set(obj, Addr(SelectorBaseClass), uint32(baseClass))
	m.SetReadOnly(obj, Addr(SelectorClass))
	m.SetReadOnly(obj, Addr(SelectorBaseClass))
}

// SetReadOnly marks an existing property as rejecting writes.
func (m *Mock) SetReadOnly(obj ObjectID, addr PropertyAddress) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if byQ, ok := m.props[mockKey{obj, addr}]; ok {
		for _, p := range byQ {
			p.settable = false
		}
	}
}

// Remove deletes a property entirely; subsequent access reports
// StatusUnknownProperty.
func (m *Mock) Remove(obj ObjectID, addr PropertyAddress) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.props, mockKey{obj, addr})
}

// FailWith makes every primitive call against (obj, addr) fail with the
// given status until cleared with status StatusOK.
func (m *Mock) FailWith(obj ObjectID, addr PropertyAddress, status Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if status == StatusOK {
		delete(m.failures, mockKey{obj, addr})
		return
	}
	m.failures[mockKey{obj, addr}] = status
}

func (m *Mock) lookup(op string, obj ObjectID, addr PropertyAddress, qualifier []byte) (*mockProp, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	k := mockKey{obj, addr}
	if status, ok := m.failures[k]; ok {
		return nil, newError(op, obj, addr, status)
	}
	byQ, ok := m.props[k]
	if !ok {
		return nil, newError(op, obj, addr, StatusUnknownProperty)
	}
	p, ok := byQ[string(qualifier)]
	if !ok {
		// A qualified read of an unqualified property falls back; the
		// reverse does not.
		if p, ok = byQ[""]; !ok {
			return nil, newError(op, obj, addr, StatusUnknownProperty)
		}
	}
	return p, nil
}

// Size implements Backend.
func (m *Mock) Size(obj ObjectID, addr PropertyAddress, qualifier []byte) (int, error) {
	p, err := m.lookup("size", obj, addr, qualifier)
	if err != nil {
		return 0, err
	}
	if p.isString {
		return len(p.str), nil
	}
	return len(p.data), nil
}

// Read implements Backend.
func (m *Mock) Read(obj ObjectID, addr PropertyAddress, qualifier []byte, dst []byte) (int, error) {
	p, err := m.lookup("read", obj, addr, qualifier)
	if err != nil {
		return 0, err
	}
	src := p.data
	if p.isString {
		src = []byte(p.str)
	}
	return copy(dst, src), nil
}

// Write implements Backend.
func (m *Mock) Write(obj ObjectID, addr PropertyAddress, qualifier []byte, data []byte) error {
	p, err := m.lookup("write", obj, addr, qualifier)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !p.settable {
		return newError("write", obj, addr, StatusUnsupportedOperation)
	}
	p.data = bytes.Clone(data)
	p.isString = false
	return nil
}

// HasProperty implements Backend.
func (m *Mock) HasProperty(obj ObjectID, addr PropertyAddress) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.props[mockKey{obj, addr}]
	return ok
}

// IsSettable implements Backend.
func (m *Mock) IsSettable(obj ObjectID, addr PropertyAddress) (bool, error) {
	p, err := m.lookup("settable", obj, addr, nil)
	if err != nil {
		return false, err
	}
	return p.settable, nil
}

// ReadString implements Backend.
func (m *Mock) ReadString(obj ObjectID, addr PropertyAddress, qualifier []byte) (string, error) {
	p, err := m.lookup("read", obj, addr, qualifier)
	if err != nil {
		return "", err
	}
	if p.isString {
		return p.str, nil
	}
	return string(p.data), nil
}

// WriteString implements Backend.
func (m *Mock) WriteString(obj ObjectID, addr PropertyAddress, qualifier []byte, value string) error {
	p, err := m.lookup("write", obj, addr, qualifier)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !p.settable {
		return newError("write", obj, addr, StatusUnsupportedOperation)
	}
	p.str = value
	p.isString = true
	return nil
}

// AddListener implements Backend. Re-registering replaces.
func (m *Mock) AddListener(obj ObjectID, addr PropertyAddress, fn ListenerFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := mockKey{obj, addr}
	if status, ok := m.failures[k]; ok {
		return newError("addListener", obj, addr, status)
	}
	m.listeners[k] = fn
	return nil
}

// RemoveListener implements Backend.
func (m *Mock) RemoveListener(obj ObjectID, addr PropertyAddress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.listeners, mockKey{obj, addr})
	return nil
}

// Notify simulates an OS change event for (obj, addr). The registered
// listener, if any, runs on its own goroutine, mirroring the unordered
// background delivery of the real HAL. Use Sync to wait for deliveries.
func (m *Mock) Notify(obj ObjectID, addr PropertyAddress) {
	m.mu.RLock()
	fn := m.listeners[mockKey{obj, addr}]
	m.mu.RUnlock()
	if fn == nil {
		return
	}
	m.notifyWG.Add(1)
	go func() {
		defer m.notifyWG.Done()
		fn(addr)
	}()
}

// Sync blocks until all notifications issued so far have been delivered.
func (m *Mock) Sync() {
	m.notifyWG.Wait()
}

// ListenerCount reports how many listeners are currently registered, across
// all objects.
func (m *Mock) ListenerCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.listeners)
}

// CreateAggregate implements AggregateCreator: it allocates a fresh object
// handle and records the composition description.
func (m *Mock) CreateAggregate(description []byte) (ObjectID, error) {
	m.mu.Lock()
	id := m.nextAggID
	m.nextAggID++
	m.aggregates[id] = bytes.Clone(description)
	m.mu.Unlock()
	m.SetClass(id, ClassAggregateDevice, ClassDevice)
	return id, nil
}

// DestroyAggregate implements AggregateCreator.
func (m *Mock) DestroyAggregate(obj ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.aggregates[obj]; !ok {
		return newError("destroyAggregate", obj, PropertyAddress{}, StatusBadObject)
	}
	delete(m.aggregates, obj)
	return nil
}

// AggregateDescription returns the recorded composition for an aggregate
// created through CreateAggregate.
func (m *Mock) AggregateDescription(obj ObjectID) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.aggregates[obj]
}

var _ Backend = (*Mock)(nil)
var _ AggregateCreator = (*Mock)(nil)
