package coreaudio

import (
	"testing"

	"github.com/shaban/coreaudio/hal"
	"github.com/shaban/coreaudio/internal/testutil"
)

func TestBox(t *testing.T) {
	m := testutil.NewSystem()
	boxID := hal.ObjectID(40)
	m.SetClass(boxID, hal.ClassBox, hal.ClassObject)
	m.SetString(boxID, hal.Addr(hal.SelectorBoxUID), "dock-1")
	m.Set(boxID, hal.Addr(hal.SelectorBoxHasAudio), uint32(1))
	m.Set(boxID, hal.Addr(hal.SelectorBoxAcquired), uint32(0))
	m.Set(boxID, hal.Addr(hal.SelectorBoxDeviceList), []uint32{41})
	m.SetClass(41, hal.ClassDevice, hal.ClassObject)

	x := newBox(m, boxID)
	uid, err := x.UID()
	if err != nil || uid != "dock-1" {
		t.Fatalf("UID = %q, %v", uid, err)
	}
	hasAudio, err := x.HasAudio()
	if err != nil || !hasAudio {
		t.Errorf("HasAudio = %v, %v", hasAudio, err)
	}

	if err := x.SetAcquired(true); err != nil {
		t.Fatalf("SetAcquired: %v", err)
	}
	held, _ := x.Acquired()
	if !held {
		t.Error("acquire did not stick")
	}

	devs, err := x.Devices()
	if err != nil {
		t.Fatalf("Devices: %v", err)
	}
	if len(devs) != 1 || devs[0].ID() != 41 {
		t.Errorf("box devices = %v", devs)
	}
}

func TestPlugIn(t *testing.T) {
	m := testutil.NewSystem()
	pID := hal.ObjectID(45)
	m.SetClass(pID, hal.ClassPlugIn, hal.ClassObject)
	m.SetString(pID, hal.Addr(hal.SelectorBundleID), "com.example.driver")
	m.Set(pID, hal.Addr(hal.SelectorDeviceList), []uint32{46})
	m.SetClass(46, hal.ClassDevice, hal.ClassObject)
	m.SetQualified(pID, hal.Addr(hal.SelectorTranslateUIDToDevice), []byte("plug-dev"), uint32(46))
	m.Set(pID, hal.Addr(hal.SelectorTranslateUIDToDevice), uint32(hal.UnknownObjectID))

	p := newPlugIn(m, pID)
	bundle, err := p.BundleID()
	if err != nil || bundle != "com.example.driver" {
		t.Fatalf("BundleID = %q, %v", bundle, err)
	}

	d, err := p.DeviceForUID("plug-dev")
	if err != nil {
		t.Fatalf("DeviceForUID: %v", err)
	}
	if d == nil || d.ID() != 46 {
		t.Errorf("resolved %v", d)
	}
	d, err = p.DeviceForUID("nothing")
	if err != nil || d != nil {
		t.Errorf("unknown UID: %v, %v", d, err)
	}
}

func TestClockDevice(t *testing.T) {
	m := testutil.NewSystem()
	cID := hal.ObjectID(48)
	m.SetClass(cID, hal.ClassClockDevice, hal.ClassObject)
	m.SetString(cID, hal.Addr(hal.SelectorClockDeviceUID), "word-clock")
	m.Set(cID, hal.Addr(hal.SelectorNominalSampleRate), float64(48000))

	c := newClockDevice(m, cID)
	uid, err := c.UID()
	if err != nil || uid != "word-clock" {
		t.Fatalf("UID = %q, %v", uid, err)
	}
	rate, err := c.NominalSampleRate()
	if err != nil || rate != 48000 {
		t.Errorf("rate = %v, %v", rate, err)
	}
}

// Sub-device lists cross the string boundary newline-joined.
func TestAggregateSubDeviceList(t *testing.T) {
	m := testutil.NewSystem()
	aggID := hal.ObjectID(52)
	m.SetClass(aggID, hal.ClassAggregateDevice, hal.ClassDevice)
	m.SetString(aggID, hal.Addr(hal.SelectorAggregateFullSubDeviceList), "uid-a\nuid-b\nuid-c")
	m.Set(aggID, hal.Addr(hal.SelectorAggregateActiveSubDeviceList), []uint32{53})
	m.SetClass(53, hal.ClassSubDevice, hal.ClassDevice)

	a := newAggregateDevice(m, aggID)
	uids, err := a.FullSubDeviceList()
	if err != nil {
		t.Fatalf("FullSubDeviceList: %v", err)
	}
	if len(uids) != 3 || uids[0] != "uid-a" || uids[2] != "uid-c" {
		t.Errorf("uids = %v", uids)
	}

	subs, err := a.ActiveSubDevices()
	if err != nil {
		t.Fatalf("ActiveSubDevices: %v", err)
	}
	if len(subs) != 1 || subs[0].ID() != 53 {
		t.Errorf("subs = %v", subs)
	}
}

func TestBooleanControl(t *testing.T) {
	m := testutil.NewSystem()
	cID := hal.ObjectID(55)
	m.SetClass(cID, hal.ClassMuteControl, hal.ClassBooleanControl)
	m.Set(cID, hal.Addr(hal.SelectorBooleanControlValue), uint32(0))

	c := newBooleanControl(m, cID)
	on, err := c.Value()
	if err != nil || on {
		t.Fatalf("Value = %v, %v", on, err)
	}
	if err := c.SetValue(true); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if on, _ = c.Value(); !on {
		t.Error("value did not stick")
	}
}

func TestLevelControlConversion(t *testing.T) {
	m := testutil.NewSystem()
	cID := hal.ObjectID(56)
	m.SetClass(cID, hal.ClassVolumeControl, hal.ClassLevelControl)
	m.Set(cID, hal.Addr(hal.SelectorLevelControlScalarValue), float32(0.5))
	m.Set(cID, hal.Addr(hal.SelectorLevelControlDecibelRange), hal.ValueRange{Minimum: -60, Maximum: 0})
	// The mock has no conversion curve; the written value reads back,
	// which is enough to exercise the in-place protocol.
	m.Set(cID, hal.Addr(hal.SelectorLevelControlScalarToDecibels), float32(0))

	c := newLevelControl(m, cID)
	v, err := c.ScalarValue()
	if err != nil || v != 0.5 {
		t.Fatalf("ScalarValue = %v, %v", v, err)
	}

	r, err := c.DecibelRange()
	if err != nil || r.Minimum != -60 {
		t.Errorf("DecibelRange = %v, %v", r, err)
	}

	got, err := c.ConvertScalarToDecibels(0.25)
	if err != nil {
		t.Fatalf("ConvertScalarToDecibels: %v", err)
	}
	if got != 0.25 {
		t.Errorf("conversion round trip = %v", got)
	}
}

func TestSelectorControlItems(t *testing.T) {
	m := testutil.NewSystem()
	cID := hal.ObjectID(57)
	m.SetClass(cID, hal.ClassDataSourceControl, hal.ClassSelectorControl)
	m.Set(cID, hal.Addr(hal.SelectorSelectorControlCurrentItem), []uint32{1})
	m.Set(cID, hal.Addr(hal.SelectorSelectorControlAvailableItems), []uint32{1, 2})

	c := newSelectorControl(m, cID)
	items, err := c.AvailableItems()
	if err != nil || len(items) != 2 {
		t.Fatalf("AvailableItems = %v, %v", items, err)
	}

	if err := c.SetCurrentItems([]uint32{2}); err != nil {
		t.Fatalf("SetCurrentItems: %v", err)
	}
	current, err := c.CurrentItems()
	if err != nil || len(current) != 1 || current[0] != 2 {
		t.Errorf("CurrentItems = %v, %v", current, err)
	}
}
