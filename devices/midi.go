package devices

import (
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// MIDIDevice represents a MIDI endpoint pair with input/output capabilities.
// Input and output ports with the same name are merged into one entry.
type MIDIDevice struct {
	Name          string `json:"name"`
	HasInput      bool   `json:"hasInput"`
	HasOutput     bool   `json:"hasOutput"`
	InputPortNum  int    `json:"inputPortNum"`  // -1 when HasInput is false
	OutputPortNum int    `json:"outputPortNum"` // -1 when HasOutput is false
}

// Helper methods for MIDI capability checking
func (m MIDIDevice) CanInput() bool {
	return m.HasInput
}

func (m MIDIDevice) CanOutput() bool {
	return m.HasOutput
}

func (m MIDIDevice) IsInputOutput() bool {
	return m.HasInput && m.HasOutput
}

func (m MIDIDevice) IsInputOnly() bool {
	return m.HasInput && !m.HasOutput
}

func (m MIDIDevice) IsOutputOnly() bool {
	return m.HasOutput && !m.HasInput
}

// MIDIDevices represents a slice of MIDIDevice with filter methods
type MIDIDevices []MIDIDevice

// Inputs returns only MIDI devices that can receive MIDI input
func (devices MIDIDevices) Inputs() MIDIDevices {
	var inputs MIDIDevices
	for _, device := range devices {
		if device.CanInput() {
			inputs = append(inputs, device)
		}
	}
	return inputs
}

// Outputs returns only MIDI devices that can send MIDI output
func (devices MIDIDevices) Outputs() MIDIDevices {
	var outputs MIDIDevices
	for _, device := range devices {
		if device.CanOutput() {
			outputs = append(outputs, device)
		}
	}
	return outputs
}

// InputOutput returns only MIDI devices that can both receive and send MIDI
func (devices MIDIDevices) InputOutput() MIDIDevices {
	var ioDevices MIDIDevices
	for _, device := range devices {
		if device.IsInputOutput() {
			ioDevices = append(ioDevices, device)
		}
	}
	return ioDevices
}

// ByName returns the MIDI device with the given name, or false.
func (devices MIDIDevices) ByName(name string) (MIDIDevice, bool) {
	for _, device := range devices {
		if device.Name == name {
			return device, true
		}
	}
	return MIDIDevice{}, false
}

// GetMIDI returns all MIDI devices with unified input/output capabilities.
// Call CloseMIDI when done to release the underlying driver.
func GetMIDI() (MIDIDevices, error) {
	byName := make(map[string]*MIDIDevice)
	var order []string

	for _, in := range midi.GetInPorts() {
		name := in.String()
		device, ok := byName[name]
		if !ok {
			device = &MIDIDevice{Name: name, InputPortNum: -1, OutputPortNum: -1}
			byName[name] = device
			order = append(order, name)
		}
		device.HasInput = true
		device.InputPortNum = in.Number()
	}
	for _, out := range midi.GetOutPorts() {
		name := out.String()
		device, ok := byName[name]
		if !ok {
			device = &MIDIDevice{Name: name, InputPortNum: -1, OutputPortNum: -1}
			byName[name] = device
			order = append(order, name)
		}
		device.HasOutput = true
		device.OutputPortNum = out.Number()
	}

	devices := make(MIDIDevices, 0, len(order))
	for _, name := range order {
		devices = append(devices, *byName[name])
	}
	return devices, nil
}

// CloseMIDI releases the MIDI driver and its ports.
func CloseMIDI() {
	midi.CloseDriver()
}
