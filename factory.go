package coreaudio

import (
	"encoding/binary"
	"fmt"

	"github.com/shaban/coreaudio/hal"
)

func putNativeUint32(dst []byte, v uint32) {
	binary.NativeEndian.PutUint32(dst, v)
}

// Make inspects the class an object handle reports and returns the most
// specific wrapper for it. Unrecognized leaf classes degrade to the
// nearest ancestor wrapper rather than failing, so objects introduced by
// newer OS releases still come back usable. The reserved system handle
// always yields the singleton, whatever class the backend claims.
func Make(b hal.Backend, id hal.ObjectID) (AudioObject, error) {
	if id == hal.UnknownObjectID {
		return nil, fmt.Errorf("coreaudio: cannot wrap the unknown object id")
	}
	if id == hal.SystemObjectID {
		return SystemOn(b), nil
	}

	class, err := hal.ReadScalar[uint32](b, id, hal.Addr(hal.SelectorClass), nil)
	if err != nil {
		return nil, fmt.Errorf("coreaudio: object %d has no class: %w", id, err)
	}
	// A missing base class is survivable; the class switch alone usually
	// resolves the wrapper.
	base, _ := hal.ReadScalar[uint32](b, id, hal.Addr(hal.SelectorBaseClass), nil)

	if obj := makeByClass(b, id, hal.ClassID(class)); obj != nil {
		return obj, nil
	}
	if obj := makeByAncestor(b, id, hal.ClassID(base)); obj != nil {
		return obj, nil
	}
	o := newObject(b, id)
	return &o, nil
}

func makeByClass(b hal.Backend, id hal.ObjectID, class hal.ClassID) AudioObject {
	switch class {
	case hal.ClassDevice:
		return newDevice(b, id)
	case hal.ClassSubDevice:
		return newSubDevice(b, id)
	case hal.ClassAggregateDevice:
		return newAggregateDevice(b, id)
	case hal.ClassEndPointDevice:
		return newEndPointDevice(b, id)
	case hal.ClassStream:
		return newStream(b, id)
	case hal.ClassBox:
		return newBox(b, id)
	case hal.ClassClockDevice:
		return newClockDevice(b, id)
	case hal.ClassPlugIn:
		return newPlugIn(b, id)
	case hal.ClassTransportManager:
		return newTransportManager(b, id)
	case hal.ClassControl:
		return newControl(b, id)
	case hal.ClassBooleanControl:
		return newBooleanControl(b, id)
	case hal.ClassMuteControl:
		return &MuteControl{BooleanControl: *newBooleanControl(b, id)}
	case hal.ClassSoloControl:
		return &SoloControl{BooleanControl: *newBooleanControl(b, id)}
	case hal.ClassJackControl:
		return &JackControl{BooleanControl: *newBooleanControl(b, id)}
	case hal.ClassLFEMuteControl:
		return &LFEMuteControl{BooleanControl: *newBooleanControl(b, id)}
	case hal.ClassPhantomPowerControl:
		return &PhantomPowerControl{BooleanControl: *newBooleanControl(b, id)}
	case hal.ClassPhaseInvertControl:
		return &PhaseInvertControl{BooleanControl: *newBooleanControl(b, id)}
	case hal.ClassClipLightControl:
		return &ClipLightControl{BooleanControl: *newBooleanControl(b, id)}
	case hal.ClassTalkbackControl:
		return &TalkbackControl{BooleanControl: *newBooleanControl(b, id)}
	case hal.ClassListenbackControl:
		return &ListenbackControl{BooleanControl: *newBooleanControl(b, id)}
	case hal.ClassLevelControl:
		return newLevelControl(b, id)
	case hal.ClassVolumeControl:
		return &VolumeControl{LevelControl: *newLevelControl(b, id)}
	case hal.ClassLFEVolumeControl:
		return &LFEVolumeControl{LevelControl: *newLevelControl(b, id)}
	case hal.ClassSelectorControl:
		return newSelectorControl(b, id)
	case hal.ClassDataSourceControl:
		return &DataSourceControl{SelectorControl: *newSelectorControl(b, id)}
	case hal.ClassDataDestinationControl:
		return &DataDestinationControl{SelectorControl: *newSelectorControl(b, id)}
	case hal.ClassClockSourceControl:
		return &ClockSourceControl{SelectorControl: *newSelectorControl(b, id)}
	case hal.ClassLineLevelControl:
		return &LineLevelControl{SelectorControl: *newSelectorControl(b, id)}
	case hal.ClassHighPassFilterControl:
		return &HighPassFilterControl{SelectorControl: *newSelectorControl(b, id)}
	case hal.ClassSliderControl:
		return newSliderControl(b, id)
	case hal.ClassStereoPanControl:
		return newStereoPanControl(b, id)
	}
	return nil
}

// makeByAncestor resolves a leaf class this build does not know by its
// reported base class, walking the control family before the broader
// kinds.
func makeByAncestor(b hal.Backend, id hal.ObjectID, base hal.ClassID) AudioObject {
	switch base {
	case hal.ClassBooleanControl:
		return newBooleanControl(b, id)
	case hal.ClassLevelControl:
		return newLevelControl(b, id)
	case hal.ClassSelectorControl:
		return newSelectorControl(b, id)
	case hal.ClassControl:
		return newControl(b, id)
	case hal.ClassDevice:
		return newDevice(b, id)
	case hal.ClassPlugIn:
		return newPlugIn(b, id)
	case hal.ClassObject:
		o := newObject(b, id)
		return &o
	}
	return nil
}

// DeviceForUID resolves a device UID against the default backend and wraps
// the result. A nil device with a nil error means the UID named nothing.
func DeviceForUID(uid string) (*Device, error) {
	return System().DeviceForUID(uid)
}
