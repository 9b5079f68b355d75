// Package devices provides flat, filterable snapshots of the audio and
// MIDI hardware, plus a hotplug monitor driven by HAL change
// notifications. It is the convenience layer over the object wrappers:
// one call walks the property tree and returns plain structs.
package devices

import (
	"fmt"
	"slices"

	coreaudio "github.com/shaban/coreaudio"
	"github.com/shaban/coreaudio/hal"
)

// AudioDevice is a point-in-time snapshot of one device's commonly needed
// properties.
type AudioDevice struct {
	Name                 string    `json:"name"`
	UID                  string    `json:"uid"`
	DeviceID             uint32    `json:"deviceId"`
	IsAlive              bool      `json:"isAlive"`
	IsHidden             bool      `json:"isHidden"`
	InputChannelCount    int       `json:"inputChannelCount"`
	OutputChannelCount   int       `json:"outputChannelCount"`
	IsDefaultInput       bool      `json:"isDefaultInput"`
	IsDefaultOutput      bool      `json:"isDefaultOutput"`
	NominalSampleRate    float64   `json:"nominalSampleRate"`
	SupportedSampleRates []float64 `json:"supportedSampleRates"`
	TransportType        string    `json:"transportType"`
}

// Capability helpers.
func (a AudioDevice) CanInput() bool  { return a.InputChannelCount > 0 }
func (a AudioDevice) CanOutput() bool { return a.OutputChannelCount > 0 }

func (a AudioDevice) IsInputOutput() bool {
	return a.CanInput() && a.CanOutput()
}

func (a AudioDevice) IsInputOnly() bool {
	return a.CanInput() && !a.CanOutput()
}

func (a AudioDevice) IsOutputOnly() bool {
	return a.CanOutput() && !a.CanInput()
}

// CommonSampleRates returns sample rates supported by both devices,
// preserving this device's order.
func (a AudioDevice) CommonSampleRates(other AudioDevice) []float64 {
	if len(a.SupportedSampleRates) == 0 || len(other.SupportedSampleRates) == 0 {
		return nil
	}
	var common []float64
	for _, rate := range a.SupportedSampleRates {
		if slices.Contains(other.SupportedSampleRates, rate) {
			common = append(common, rate)
		}
	}
	return common
}

// AudioDevices is a device list with filter methods.
type AudioDevices []AudioDevice

// Inputs returns only devices that can capture audio.
func (devices AudioDevices) Inputs() AudioDevices {
	var inputs AudioDevices
	for _, device := range devices {
		if device.CanInput() {
			inputs = append(inputs, device)
		}
	}
	return inputs
}

// Outputs returns only devices that can play audio.
func (devices AudioDevices) Outputs() AudioDevices {
	var outputs AudioDevices
	for _, device := range devices {
		if device.CanOutput() {
			outputs = append(outputs, device)
		}
	}
	return outputs
}

// InputOutput returns only devices that can both capture and play audio.
func (devices AudioDevices) InputOutput() AudioDevices {
	var ioDevices AudioDevices
	for _, device := range devices {
		if device.IsInputOutput() {
			ioDevices = append(ioDevices, device)
		}
	}
	return ioDevices
}

// Alive returns only devices that are still present.
func (devices AudioDevices) Alive() AudioDevices {
	var alive AudioDevices
	for _, device := range devices {
		if device.IsAlive {
			alive = append(alive, device)
		}
	}
	return alive
}

// ByTransport returns only devices attached over the given transport
// (e.g. "usb", "builtin", "bluetooth").
func (devices AudioDevices) ByTransport(transport string) AudioDevices {
	var filtered AudioDevices
	for _, device := range devices {
		if device.TransportType == transport {
			filtered = append(filtered, device)
		}
	}
	return filtered
}

// ByUID returns the device with the given UID, or false.
func (devices AudioDevices) ByUID(uid string) (AudioDevice, bool) {
	for _, device := range devices {
		if device.UID == uid {
			return device, true
		}
	}
	return AudioDevice{}, false
}

// UIDs returns the device UIDs in list order.
func (devices AudioDevices) UIDs() []string {
	uids := make([]string, len(devices))
	for i, device := range devices {
		uids[i] = device.UID
	}
	return uids
}

// List snapshots every device the default backend publishes.
func List() (AudioDevices, error) {
	return ListOn(hal.Default())
}

// ListOn snapshots every device a backend publishes.
func ListOn(b hal.Backend) (AudioDevices, error) {
	sys := coreaudio.SystemOn(b)
	wrapped, err := sys.Devices()
	if err != nil {
		return nil, fmt.Errorf("devices: enumerate: %w", err)
	}

	defaultInput := defaultUID(sys.DefaultInputDevice)
	defaultOutput := defaultUID(sys.DefaultOutputDevice)

	list := make(AudioDevices, 0, len(wrapped))
	for _, d := range wrapped {
		snap, err := snapshot(d)
		if err != nil {
			return nil, fmt.Errorf("devices: device %d: %w", d.ID(), err)
		}
		snap.IsDefaultInput = snap.UID != "" && snap.UID == defaultInput
		snap.IsDefaultOutput = snap.UID != "" && snap.UID == defaultOutput
		list = append(list, snap)
	}
	return list, nil
}

func defaultUID(get func() (*coreaudio.Device, error)) string {
	d, err := get()
	if err != nil || d == nil {
		return ""
	}
	uid, err := d.UID()
	if err != nil {
		return ""
	}
	return uid
}

// snapshot reads one device's property menu, treating unsupported optional
// properties as absent rather than fatal.
func snapshot(d *coreaudio.Device) (AudioDevice, error) {
	uid, err := d.UID()
	if err != nil && !hal.IsUnsupported(err) {
		return AudioDevice{}, err
	}
	name, err := d.Name()
	if err != nil && !hal.IsUnsupported(err) {
		return AudioDevice{}, err
	}

	snap := AudioDevice{
		Name:     name,
		UID:      uid,
		DeviceID: uint32(d.ID()),
	}

	if alive, err := d.IsAlive(); err == nil {
		snap.IsAlive = alive
	}
	if hidden, err := d.IsHidden(); err == nil {
		snap.IsHidden = hidden
	}
	if in, err := d.ChannelCount(hal.ScopeInput); err == nil {
		snap.InputChannelCount = in
	}
	if out, err := d.ChannelCount(hal.ScopeOutput); err == nil {
		snap.OutputChannelCount = out
	}
	if rate, err := d.NominalSampleRate(); err == nil {
		snap.NominalSampleRate = rate
	}
	if ranges, err := d.AvailableNominalSampleRates(); err == nil {
		snap.SupportedSampleRates = ratesFromRanges(ranges)
	}
	if transport, err := d.TransportType(); err == nil {
		snap.TransportType = transport.String()
	}
	return snap, nil
}

// The rates commonly probed inside a continuous range.
var standardRates = []float64{
	8000, 11025, 16000, 22050, 32000, 44100, 48000,
	88200, 96000, 176400, 192000, 352800, 384000,
}

// ratesFromRanges flattens range entries into discrete rates: a collapsed
// range contributes its value, a spanning range contributes the standard
// rates it covers.
func ratesFromRanges(ranges []hal.ValueRange) []float64 {
	var rates []float64
	add := func(r float64) {
		if !slices.Contains(rates, r) {
			rates = append(rates, r)
		}
	}
	for _, r := range ranges {
		if r.Minimum == r.Maximum {
			add(r.Minimum)
			continue
		}
		for _, std := range standardRates {
			if r.Contains(std) {
				add(std)
			}
		}
	}
	slices.Sort(rates)
	return rates
}
