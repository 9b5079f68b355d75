package hal

// ClassID is the OS-reported type tag of an object. The HAL publishes a
// two-level taxonomy: every object reports a class and a base class.
type ClassID uint32

const (
	ClassWildcard ClassID = 0x2a2a2a2a // '****'

	ClassObject           ClassID = 0x616f626a // 'aobj'
	ClassSystemObject     ClassID = 0x61737973 // 'asys'
	ClassPlugIn           ClassID = 0x61706c67 // 'aplg'
	ClassTransportManager ClassID = 0x7472706d // 'trpm'
	ClassBox              ClassID = 0x61626f78 // 'abox'
	ClassDevice           ClassID = 0x61646576 // 'adev'
	ClassSubDevice        ClassID = 0x61737562 // 'asub'
	ClassAggregateDevice  ClassID = 0x61616767 // 'aagg'
	ClassEndPointDevice   ClassID = 0x65646576 // 'edev'
	ClassEndPoint         ClassID = 0x656e6470 // 'endp'
	ClassStream           ClassID = 0x61737472 // 'astr'
	ClassClockDevice      ClassID = 0x61636c6b // 'aclk'

	ClassControl          ClassID = 0x6163746c // 'actl'
	ClassSliderControl    ClassID = 0x736c6472 // 'sldr'
	ClassStereoPanControl ClassID = 0x7370616e // 'span'

	ClassBooleanControl      ClassID = 0x746f676c // 'togl'
	ClassMuteControl         ClassID = 0x6d757465 // 'mute'
	ClassSoloControl         ClassID = 0x736f6c6f // 'solo'
	ClassJackControl         ClassID = 0x6a61636b // 'jack'
	ClassLFEMuteControl      ClassID = 0x7375626d // 'subm'
	ClassPhantomPowerControl ClassID = 0x7068616e // 'phan'
	ClassPhaseInvertControl  ClassID = 0x70687369 // 'phsi'
	ClassClipLightControl    ClassID = 0x636c6970 // 'clip'
	ClassTalkbackControl     ClassID = 0x74616c62 // 'talb'
	ClassListenbackControl   ClassID = 0x6c736e62 // 'lsnb'

	ClassLevelControl     ClassID = 0x6c65766c // 'levl'
	ClassVolumeControl    ClassID = 0x766c6d65 // 'vlme'
	ClassLFEVolumeControl ClassID = 0x73756276 // 'subv'

	ClassSelectorControl        ClassID = 0x736c6374 // 'slct'
	ClassDataSourceControl      ClassID = 0x64737263 // 'dsrc'
	ClassDataDestinationControl ClassID = 0x64657374 // 'dest'
	ClassClockSourceControl     ClassID = 0x636c636b // 'clck'
	ClassLineLevelControl       ClassID = 0x6e6c766c // 'nlvl'
	ClassHighPassFilterControl  ClassID = 0x68697066 // 'hipf'
)

func (c ClassID) String() string { return fourCCString(uint32(c)) }
