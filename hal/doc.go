// Package hal is the thin floor of the binding: property addresses, the
// status/error model, and the four primitive entry points of the macOS
// audio hardware abstraction layer (query property size, read property
// data, write property data, add/remove change listener), exposed through
// the Backend interface so the rest of the module never touches cgo
// directly.
//
// Three Backend implementations exist:
//   - the native CoreAudio backend (darwin && cgo)
//   - a stub that fails every call with StatusNotRunning (everything else)
//   - Mock, an in-memory fake compiled everywhere, used by the tests
//
// String-typed properties cross the boundary as UTF-8; the native shim
// converts CFStringRef values on the C side so no CoreFoundation handles
// ever reach Go.
package hal
