package coreaudio

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shaban/coreaudio/hal"
	"github.com/shaban/coreaudio/internal/testutil"
)

// Hammers Watch, Unwatch and deliveries concurrently. Run with -race; the
// assertion at the end only checks nothing fired after the final removal.
func TestWatchConcurrentReplace(t *testing.T) {
	m := testutil.NewSystem()
	d := newTestDevice(t, m)
	addr := hal.Addr(hal.SelectorDeviceIsAlive)

	var fired atomic.Int64
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		for range 200 {
			d.Watch(addr, func(hal.PropertyAddress) { fired.Add(1) })
		}
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			d.Watch(addr, func(hal.PropertyAddress) { fired.Add(1) })
			d.Unwatch(addr)
		}
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			m.Notify(d.ID(), addr)
		}
	}()
	wg.Wait()
	m.Sync()

	if err := d.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	before := fired.Load()
	m.Notify(d.ID(), addr)
	m.Sync()
	if fired.Load() != before {
		t.Error("callback fired after Close")
	}
}
