package devices

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	coreaudio "github.com/shaban/coreaudio"
	"github.com/shaban/coreaudio/hal"
)

// The system selectors whose change notifications drive a rescan.
var monitorSelectors = []hal.Selector{
	hal.SelectorDevices,
	hal.SelectorDefaultInputDevice,
	hal.SelectorDefaultOutputDevice,
}

// Monitor watches for device hotplug and default-device changes. It
// registers change listeners on the system object and rescans the device
// list when one fires, diffing snapshots by UID. Events are delivered
// from a single goroutine, so callbacks never run concurrently with each
// other.
type Monitor struct {
	backend hal.Backend
	log     zerolog.Logger

	mu      sync.RWMutex
	running bool
	sys     *coreaudio.SystemObject
	known   map[string]AudioDevice
	lastIn  string
	lastOut string

	kicks chan struct{}
	done  chan struct{}

	onDeviceAdded     func(device AudioDevice)
	onDeviceRemoved   func(deviceUID string)
	onDefaultsChanged func(inputUID, outputUID string)
}

// NewMonitor creates a monitor over the given backend.
func NewMonitor(b hal.Backend, log zerolog.Logger) *Monitor {
	return &Monitor{
		backend: b,
		log:     log,
		kicks:   make(chan struct{}, 1),
	}
}

// SetCallbacks configures device event callbacks. Call before Start.
func (m *Monitor) SetCallbacks(
	onAdded func(AudioDevice),
	onRemoved func(string),
	onDefaultsChanged func(inputUID, outputUID string),
) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onDeviceAdded = onAdded
	m.onDeviceRemoved = onRemoved
	m.onDefaultsChanged = onDefaultsChanged
}

// Start takes an initial snapshot and begins listening for changes.
func (m *Monitor) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return fmt.Errorf("device monitor is already running")
	}

	initial, err := ListOn(m.backend)
	if err != nil {
		return fmt.Errorf("failed to take initial device snapshot: %w", err)
	}

	m.known = make(map[string]AudioDevice, len(initial))
	for _, device := range initial {
		m.known[device.UID] = device
	}
	m.lastIn, m.lastOut = defaults(initial)

	m.sys = coreaudio.SystemOn(m.backend)
	for _, sel := range monitorSelectors {
		addr := hal.Addr(sel)
		if err := m.sys.Watch(addr, func(hal.PropertyAddress) {
			m.kick()
		}); err != nil {
			// A backend that cannot notify for one selector can still
			// notify for the others.
			m.log.Warn().Err(err).
				Str("selector", addr.Selector.String()).
				Msg("device monitor: listener registration failed")
		}
	}

	m.done = make(chan struct{})
	m.running = true
	go m.loop(m.done)

	return nil
}

// Stop removes the listeners and halts event delivery. In-flight
// callbacks may still complete after Stop returns.
func (m *Monitor) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return nil
	}

	for _, sel := range monitorSelectors {
		if err := m.sys.Unwatch(hal.Addr(sel)); err != nil {
			m.log.Warn().Err(err).Msg("device monitor: listener removal failed")
		}
	}
	close(m.done)
	m.running = false
	return nil
}

// IsRunning returns whether the monitor is active.
func (m *Monitor) IsRunning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running
}

// Devices returns the most recent snapshot the monitor holds.
func (m *Monitor) Devices() AudioDevices {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make(AudioDevices, 0, len(m.known))
	for _, device := range m.known {
		list = append(list, device)
	}
	return list
}

// kick requests a rescan. Coalesces: one pending rescan covers any burst
// of notifications.
func (m *Monitor) kick() {
	select {
	case m.kicks <- struct{}{}:
	default:
	}
}

func (m *Monitor) loop(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-m.kicks:
			m.rescan()
		}
	}
}

func (m *Monitor) rescan() {
	current, err := ListOn(m.backend)
	if err != nil {
		m.log.Warn().Err(err).Msg("device monitor: rescan failed")
		return
	}

	m.mu.Lock()
	var added []AudioDevice
	var removed []string

	seen := make(map[string]bool, len(current))
	for _, device := range current {
		seen[device.UID] = true
		if _, ok := m.known[device.UID]; !ok {
			added = append(added, device)
		}
		m.known[device.UID] = device
	}
	for uid := range m.known {
		if !seen[uid] {
			removed = append(removed, uid)
			delete(m.known, uid)
		}
	}

	in, out := defaults(current)
	defaultsChanged := in != m.lastIn || out != m.lastOut
	m.lastIn, m.lastOut = in, out

	onAdded := m.onDeviceAdded
	onRemoved := m.onDeviceRemoved
	onDefaults := m.onDefaultsChanged
	m.mu.Unlock()

	for _, device := range added {
		m.log.Info().Str("uid", device.UID).Str("name", device.Name).Msg("audio device added")
		if onAdded != nil {
			onAdded(device)
		}
	}
	for _, uid := range removed {
		m.log.Info().Str("uid", uid).Msg("audio device removed")
		if onRemoved != nil {
			onRemoved(uid)
		}
	}
	if defaultsChanged {
		m.log.Info().Str("input", in).Str("output", out).Msg("default devices changed")
		if onDefaults != nil {
			onDefaults(in, out)
		}
	}
}

func defaults(list AudioDevices) (inputUID, outputUID string) {
	for _, device := range list {
		if device.IsDefaultInput {
			inputUID = device.UID
		}
		if device.IsDefaultOutput {
			outputUID = device.UID
		}
	}
	return inputUID, outputUID
}
