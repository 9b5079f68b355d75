// Package coreaudio wraps the macOS audio HAL object model:
//   - one typed wrapper per HAL object class (device, stream, box, plug-in,
//     clock device, aggregate/endpoint device, transport manager, and the
//     control family), each exposing the property menu its class publishes
//   - a class-ID dispatch factory (Make) that inspects an object handle and
//     returns the most specific wrapper, degrading to an ancestor type for
//     classes this build does not know about
//   - the process-wide system object singleton (System) with the hardware
//     toggles, default-device properties and UID translation
//
// All property traffic flows through a hal.Backend, so everything here runs
// unchanged against the live HAL, the non-darwin stub, or the hal.Mock fake
// used by the tests.
package coreaudio
