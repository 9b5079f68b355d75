//go:build darwin && cgo

package hal

import "C"
import "sync"

// Registry mapping the clientData cookies handed to the C listener proc
// back to Go callbacks. Cookies outlive re-registration: replacing the
// callback for a pair swaps the func without another OS round trip.
type listenerRegistry struct {
	mu      sync.Mutex
	next    uintptr
	byKey   map[listenerKey]uintptr
	entries map[uintptr]*listenerEntry
}

type listenerKey struct {
	obj  ObjectID
	addr PropertyAddress
}

type listenerEntry struct {
	mu sync.Mutex
	fn ListenerFunc
}

var nativeListeners = &listenerRegistry{
	next:    1,
	byKey:   make(map[listenerKey]uintptr),
	entries: make(map[uintptr]*listenerEntry),
}

func (r *listenerRegistry) add(obj ObjectID, addr PropertyAddress, fn ListenerFunc) error {
	r.mu.Lock()
	if cookie, ok := r.byKey[listenerKey{obj, addr}]; ok {
		entry := r.entries[cookie]
		r.mu.Unlock()
		entry.mu.Lock()
		entry.fn = fn
		entry.mu.Unlock()
		return nil
	}
	cookie := r.next
	r.next++
	entry := &listenerEntry{fn: fn}
	r.byKey[listenerKey{obj, addr}] = cookie
	r.entries[cookie] = entry
	r.mu.Unlock()

	if err := registerNativeListener(obj, addr, cookie); err != nil {
		r.mu.Lock()
		delete(r.byKey, listenerKey{obj, addr})
		delete(r.entries, cookie)
		r.mu.Unlock()
		return err
	}
	return nil
}

func (r *listenerRegistry) remove(obj ObjectID, addr PropertyAddress) error {
	r.mu.Lock()
	cookie, ok := r.byKey[listenerKey{obj, addr}]
	if !ok {
		r.mu.Unlock()
		return nil
	}
	delete(r.byKey, listenerKey{obj, addr})
	delete(r.entries, cookie)
	r.mu.Unlock()
	return unregisterNativeListener(obj, addr, cookie)
}

func (r *listenerRegistry) dispatch(obj ObjectID, addr PropertyAddress, cookie uintptr) {
	r.mu.Lock()
	entry := r.entries[cookie]
	r.mu.Unlock()
	if entry == nil {
		// Raced with removal; the OS may still deliver in-flight events.
		return
	}
	entry.mu.Lock()
	fn := entry.fn
	entry.mu.Unlock()
	if fn != nil {
		fn(addr)
	}
}

//export goHALPropertyListener
func goHALPropertyListener(objectID, selector, scope, element C.uint32_t, handle C.uintptr_t) {
	nativeListeners.dispatch(
		ObjectID(objectID),
		PropertyAddress{
			Selector: Selector(selector),
			Scope:    Scope(scope),
			Element:  Element(element),
		},
		uintptr(handle),
	)
}
