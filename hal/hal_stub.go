//go:build !darwin || !cgo

package hal

// stubBackend stands in when the CoreAudio HAL is unavailable (non-darwin
// builds, or cgo disabled). Every call fails with StatusNotRunning.
type stubBackend struct{}

func newPlatformBackend() Backend { return stubBackend{} }

func (stubBackend) Size(obj ObjectID, addr PropertyAddress, _ []byte) (int, error) {
	return 0, newError("size", obj, addr, StatusNotRunning)
}

func (stubBackend) Read(obj ObjectID, addr PropertyAddress, _ []byte, _ []byte) (int, error) {
	return 0, newError("read", obj, addr, StatusNotRunning)
}

func (stubBackend) Write(obj ObjectID, addr PropertyAddress, _ []byte, _ []byte) error {
	return newError("write", obj, addr, StatusNotRunning)
}

func (stubBackend) HasProperty(ObjectID, PropertyAddress) bool { return false }

func (stubBackend) IsSettable(obj ObjectID, addr PropertyAddress) (bool, error) {
	return false, newError("settable", obj, addr, StatusNotRunning)
}

func (stubBackend) ReadString(obj ObjectID, addr PropertyAddress, _ []byte) (string, error) {
	return "", newError("read", obj, addr, StatusNotRunning)
}

func (stubBackend) WriteString(obj ObjectID, addr PropertyAddress, _ []byte, _ string) error {
	return newError("write", obj, addr, StatusNotRunning)
}

func (stubBackend) AddListener(obj ObjectID, addr PropertyAddress, _ ListenerFunc) error {
	return newError("addListener", obj, addr, StatusNotRunning)
}

func (stubBackend) RemoveListener(ObjectID, PropertyAddress) error { return nil }

var _ Backend = stubBackend{}
