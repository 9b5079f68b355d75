package hal

// ListenerFunc is invoked when the OS reports that a property changed. The
// execution context is owned by the OS: calls arrive on a background
// goroutine, unordered, and possibly concurrently for distinct properties.
type ListenerFunc func(PropertyAddress)

// Backend is the seam between this module and the operating system. The
// four primitive entry points of the HAL live here, plus the string forms
// the native shim exposes (CFString-typed selectors cross the boundary as
// UTF-8) and the listener registry.
//
// Every call is synchronous and blocking on the caller's goroutine.
// Failures surface immediately as *Error; nothing is retried.
type Backend interface {
	// Size reports the byte count of the property's current value.
	// Variable-length properties require this before Read.
	Size(obj ObjectID, addr PropertyAddress, qualifier []byte) (int, error)

	// Read copies the property's value into dst and reports the number of
	// bytes written, at most len(dst).
	Read(obj ObjectID, addr PropertyAddress, qualifier []byte, dst []byte) (int, error)

	// Write replaces the property's value.
	Write(obj ObjectID, addr PropertyAddress, qualifier []byte, data []byte) error

	// HasProperty reports whether the object publishes the property at all.
	HasProperty(obj ObjectID, addr PropertyAddress) bool

	// IsSettable reports whether the property accepts writes.
	IsSettable(obj ObjectID, addr PropertyAddress) (bool, error)

	// ReadString and WriteString handle CFString-typed selectors.
	ReadString(obj ObjectID, addr PropertyAddress, qualifier []byte) (string, error)
	WriteString(obj ObjectID, addr PropertyAddress, qualifier []byte, value string) error

	// AddListener registers fn for change notifications on (obj, addr).
	// At most one listener per pair; registering again replaces the old
	// one. RemoveListener is a no-op for unknown pairs.
	AddListener(obj ObjectID, addr PropertyAddress, fn ListenerFunc) error
	RemoveListener(obj ObjectID, addr PropertyAddress) error
}

// Default returns the process-wide platform backend: CoreAudio on darwin
// with cgo, a failing stub everywhere else.
func Default() Backend { return defaultBackend }

var defaultBackend = newPlatformBackend()

// AggregateCreator is the optional Backend extension for the two HAL entry
// points that exist outside the property mechanism: creating and destroying
// aggregate devices. The description is the composition dictionary, encoded
// as JSON across the boundary.
type AggregateCreator interface {
	CreateAggregate(description []byte) (ObjectID, error)
	DestroyAggregate(obj ObjectID) error
}
