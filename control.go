package coreaudio

import "github.com/shaban/coreaudio/hal"

// Control wraps a HAL control: a single adjustable aspect of a device,
// attached to one scope/element pair.
type Control struct {
	Object
}

func newControl(b hal.Backend, id hal.ObjectID) *Control {
	return &Control{Object: newObject(b, id)}
}

// Scope reports which device section the control belongs to.
func (c *Control) Scope() (hal.Scope, error) {
	v, err := hal.ReadScalar[uint32](c.backend, c.id, hal.Addr(hal.SelectorControlScope), nil)
	return hal.Scope(v), err
}

// Element reports which channel or sub-unit the control belongs to.
func (c *Control) Element() (hal.Element, error) {
	v, err := hal.ReadScalar[uint32](c.backend, c.id, hal.Addr(hal.SelectorControlElement), nil)
	return hal.Element(v), err
}

// BooleanControl is an on/off control.
type BooleanControl struct {
	Control
}

func newBooleanControl(b hal.Backend, id hal.ObjectID) *BooleanControl {
	return &BooleanControl{Control: Control{Object: newObject(b, id)}}
}

// Value reports the control state.
func (c *BooleanControl) Value() (bool, error) {
	return hal.ReadBool(c.backend, c.id, hal.Addr(hal.SelectorBooleanControlValue))
}

// SetValue flips the control.
func (c *BooleanControl) SetValue(on bool) error {
	return hal.WriteBool(c.backend, c.id, hal.Addr(hal.SelectorBooleanControlValue), on)
}

// The boolean leaf kinds carry no extra properties; the concrete type is
// the information.
type (
	MuteControl         struct{ BooleanControl }
	SoloControl         struct{ BooleanControl }
	JackControl         struct{ BooleanControl }
	LFEMuteControl      struct{ BooleanControl }
	PhantomPowerControl struct{ BooleanControl }
	PhaseInvertControl  struct{ BooleanControl }
	ClipLightControl    struct{ BooleanControl }
	TalkbackControl     struct{ BooleanControl }
	ListenbackControl   struct{ BooleanControl }
)

// LevelControl is a continuous control with scalar and decibel views of
// the same value.
type LevelControl struct {
	Control
}

func newLevelControl(b hal.Backend, id hal.ObjectID) *LevelControl {
	return &LevelControl{Control: Control{Object: newObject(b, id)}}
}

// ScalarValue returns the level on the 0..1 scale.
func (c *LevelControl) ScalarValue() (float32, error) {
	return hal.ReadScalar[float32](c.backend, c.id, hal.Addr(hal.SelectorLevelControlScalarValue), nil)
}

// SetScalarValue sets the level on the 0..1 scale.
func (c *LevelControl) SetScalarValue(v float32) error {
	return hal.WriteScalar(c.backend, c.id, hal.Addr(hal.SelectorLevelControlScalarValue), nil, v)
}

// DecibelValue returns the level in dB.
func (c *LevelControl) DecibelValue() (float32, error) {
	return hal.ReadScalar[float32](c.backend, c.id, hal.Addr(hal.SelectorLevelControlDecibelValue), nil)
}

// SetDecibelValue sets the level in dB.
func (c *LevelControl) SetDecibelValue(v float32) error {
	return hal.WriteScalar(c.backend, c.id, hal.Addr(hal.SelectorLevelControlDecibelValue), nil, v)
}

// DecibelRange reports the control's dB bounds.
func (c *LevelControl) DecibelRange() (hal.ValueRange, error) {
	return hal.ReadScalar[hal.ValueRange](c.backend, c.id, hal.Addr(hal.SelectorLevelControlDecibelRange), nil)
}

// ConvertScalarToDecibels maps a 0..1 value onto the control's dB curve.
// The HAL computes the conversion in place: the input travels out, the
// result travels back.
func (c *LevelControl) ConvertScalarToDecibels(v float32) (float32, error) {
	addr := hal.Addr(hal.SelectorLevelControlScalarToDecibels)
	if err := hal.WriteScalar(c.backend, c.id, addr, nil, v); err != nil {
		return 0, err
	}
	return hal.ReadScalar[float32](c.backend, c.id, addr, nil)
}

// ConvertDecibelsToScalar maps a dB value onto the 0..1 scale.
func (c *LevelControl) ConvertDecibelsToScalar(v float32) (float32, error) {
	addr := hal.Addr(hal.SelectorLevelControlDecibelsToScalar)
	if err := hal.WriteScalar(c.backend, c.id, addr, nil, v); err != nil {
		return 0, err
	}
	return hal.ReadScalar[float32](c.backend, c.id, addr, nil)
}

type (
	VolumeControl    struct{ LevelControl }
	LFEVolumeControl struct{ LevelControl }
)

// SelectorControl is a control choosing among discrete items (data
// sources, clock sources, line levels).
type SelectorControl struct {
	Control
}

func newSelectorControl(b hal.Backend, id hal.ObjectID) *SelectorControl {
	return &SelectorControl{Control: Control{Object: newObject(b, id)}}
}

// CurrentItems returns the selected item IDs.
func (c *SelectorControl) CurrentItems() ([]uint32, error) {
	return hal.ReadSlice[uint32](c.backend, c.id, hal.Addr(hal.SelectorSelectorControlCurrentItem), nil)
}

// SetCurrentItems selects items by ID.
func (c *SelectorControl) SetCurrentItems(ids []uint32) error {
	return hal.WriteSlice(c.backend, c.id, hal.Addr(hal.SelectorSelectorControlCurrentItem), nil, ids)
}

// AvailableItems lists the selectable item IDs.
func (c *SelectorControl) AvailableItems() ([]uint32, error) {
	return hal.ReadSlice[uint32](c.backend, c.id, hal.Addr(hal.SelectorSelectorControlAvailableItems), nil)
}

// ItemName resolves an item ID to its display name; the ID travels as the
// qualifier.
func (c *SelectorControl) ItemName(item uint32) (string, error) {
	qualifier := make([]byte, 4)
	putNativeUint32(qualifier, item)
	return c.backend.ReadString(c.id, hal.Addr(hal.SelectorSelectorControlItemName), qualifier)
}

type (
	DataSourceControl      struct{ SelectorControl }
	DataDestinationControl struct{ SelectorControl }
	ClockSourceControl     struct{ SelectorControl }
	LineLevelControl       struct{ SelectorControl }
	HighPassFilterControl  struct{ SelectorControl }
)

// SliderControl is a continuous control over an arbitrary integer range.
type SliderControl struct {
	Control
}

func newSliderControl(b hal.Backend, id hal.ObjectID) *SliderControl {
	return &SliderControl{Control: Control{Object: newObject(b, id)}}
}

// Value returns the slider position.
func (c *SliderControl) Value() (uint32, error) {
	return hal.ReadScalar[uint32](c.backend, c.id, hal.Addr(hal.SelectorSliderControlValue), nil)
}

// SetValue moves the slider.
func (c *SliderControl) SetValue(v uint32) error {
	return hal.WriteScalar(c.backend, c.id, hal.Addr(hal.SelectorSliderControlValue), nil, v)
}

// Range reports the slider's bounds as the HAL's two-element array.
func (c *SliderControl) Range() ([2]uint32, error) {
	return hal.ReadScalar[[2]uint32](c.backend, c.id, hal.Addr(hal.SelectorSliderControlRange), nil)
}

// StereoPanControl positions a signal between two channels.
type StereoPanControl struct {
	Control
}

func newStereoPanControl(b hal.Backend, id hal.ObjectID) *StereoPanControl {
	return &StereoPanControl{Control: Control{Object: newObject(b, id)}}
}

// Value returns the pan position, 0..1 with 0.5 centered.
func (c *StereoPanControl) Value() (float32, error) {
	return hal.ReadScalar[float32](c.backend, c.id, hal.Addr(hal.SelectorStereoPanControlValue), nil)
}

// SetValue moves the pan position.
func (c *StereoPanControl) SetValue(v float32) error {
	return hal.WriteScalar(c.backend, c.id, hal.Addr(hal.SelectorStereoPanControlValue), nil, v)
}

// PanningChannels reports the two channels the control pans between.
func (c *StereoPanControl) PanningChannels() ([2]uint32, error) {
	return hal.ReadScalar[[2]uint32](c.backend, c.id, hal.Addr(hal.SelectorStereoPanControlChannels), nil)
}
