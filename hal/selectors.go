package hal

// Property selectors, grouped by the object class that publishes them. The
// four-char spellings are the HAL's own.

// Every object.
const (
	SelectorBaseClass           Selector = 0x62636c73 // 'bcls'
	SelectorClass               Selector = 0x636c6173 // 'clas'
	SelectorOwner               Selector = 0x73746476 // 'stdv'
	SelectorName                Selector = 0x6c6e616d // 'lnam'
	SelectorModelName           Selector = 0x6c6d6f64 // 'lmod'
	SelectorManufacturer        Selector = 0x6c6d616b // 'lmak'
	SelectorElementName         Selector = 0x6c63686e // 'lchn'
	SelectorElementCategoryName Selector = 0x6c63636e // 'lccn'
	SelectorElementNumberName   Selector = 0x6c636e6e // 'lcnn'
	SelectorOwnedObjects        Selector = 0x6f776e64 // 'ownd'
	SelectorIdentify            Selector = 0x6964656e // 'iden'
	SelectorSerialNumber        Selector = 0x736e756d // 'snum'
	SelectorFirmwareVersion     Selector = 0x6677766e // 'fwvn'
	SelectorWildcard            Selector = 0x2a2a2a2a // '****'
)

// System object.
const (
	SelectorDevices                       Selector = 0x64657623 // 'dev#'
	SelectorDefaultInputDevice            Selector = 0x64496e20 // 'dIn '
	SelectorDefaultOutputDevice           Selector = 0x644f7574 // 'dOut'
	SelectorDefaultSystemOutputDevice     Selector = 0x734f7574 // 'sOut'
	SelectorTranslateUIDToDevice          Selector = 0x75696464 // 'uidd'
	SelectorMixStereoToMono               Selector = 0x73746d6f // 'stmo'
	SelectorPlugInList                    Selector = 0x706c6723 // 'plg#'
	SelectorTranslateBundleIDToPlugIn     Selector = 0x62696470 // 'bidp'
	SelectorTransportManagerList          Selector = 0x746d6723 // 'tmg#'
	SelectorTranslateBundleIDToTransport  Selector = 0x746d6269 // 'tmbi'
	SelectorBoxList                       Selector = 0x626f7823 // 'box#'
	SelectorTranslateUIDToBox             Selector = 0x75696462 // 'uidb'
	SelectorClockDeviceList               Selector = 0x636c6b23 // 'clk#'
	SelectorTranslateUIDToClockDevice     Selector = 0x75696463 // 'uidc'
	SelectorProcessIsMain                 Selector = 0x6d61696e // 'main'
	SelectorIsInitingOrExiting            Selector = 0x696e6f74 // 'inot'
	SelectorUserIDChanged                 Selector = 0x65756964 // 'euid'
	SelectorProcessIsAudible              Selector = 0x706d7574 // 'pmut'
	SelectorSleepingIsAllowed             Selector = 0x736c6570 // 'slep'
	SelectorUnloadingIsAllowed            Selector = 0x756e6c64 // 'unld'
	SelectorHogModeIsAllowed              Selector = 0x686f6772 // 'hogr'
	SelectorUserSessionIsActiveOrHeadless Selector = 0x75736572 // 'user'
	SelectorServiceRestarted              Selector = 0x73727374 // 'srst'
	SelectorPowerHint                     Selector = 0x706f7768 // 'powh'
)

// Plug-ins and transport managers.
const (
	SelectorBundleID               Selector = 0x70696964 // 'piid'
	SelectorDeviceList             Selector = 0x64657623 // 'dev#'
	SelectorEndPointList           Selector = 0x656e6423 // 'end#'
	SelectorTranslateUIDToEndPoint Selector = 0x75696465 // 'uide'
)

// Boxes.
const (
	SelectorBoxUID             Selector = 0x62756964 // 'buid'
	SelectorBoxHasAudio        Selector = 0x62686175 // 'bhau'
	SelectorBoxHasVideo        Selector = 0x62687669 // 'bhvi'
	SelectorBoxHasMIDI         Selector = 0x62686d69 // 'bhmi'
	SelectorBoxIsProtected     Selector = 0x6270726f // 'bpro'
	SelectorBoxAcquired        Selector = 0x62786f6e // 'bxon'
	SelectorBoxAcquisitionFail Selector = 0x62786f66 // 'bxof'
	SelectorBoxDeviceList      Selector = 0x62647623 // 'bdv#'
	SelectorBoxClockDeviceList Selector = 0x62636c23 // 'bcl#'
)

// Devices (and, where the spelling is shared, clock devices).
const (
	SelectorDeviceUID                   Selector = 0x75696420 // 'uid '
	SelectorModelUID                    Selector = 0x6d756964 // 'muid'
	SelectorTransportType               Selector = 0x7472616e // 'tran'
	SelectorRelatedDevices              Selector = 0x616b696e // 'akin'
	SelectorClockDomain                 Selector = 0x636c6b64 // 'clkd'
	SelectorDeviceIsAlive               Selector = 0x6c69766e // 'livn'
	SelectorDeviceIsRunning             Selector = 0x676f696e // 'goin'
	SelectorDeviceCanBeDefault          Selector = 0x64666c74 // 'dflt'
	SelectorDeviceCanBeSystemDefault    Selector = 0x73666c74 // 'sflt'
	SelectorLatency                     Selector = 0x6c746e63 // 'ltnc'
	SelectorStreams                     Selector = 0x73746d23 // 'stm#'
	SelectorControlList                 Selector = 0x6374726c // 'ctrl'
	SelectorSafetyOffset                Selector = 0x73616674 // 'saft'
	SelectorNominalSampleRate           Selector = 0x6e737274 // 'nsrt'
	SelectorAvailableNominalSampleRates Selector = 0x6e737223 // 'nsr#'
	SelectorIcon                        Selector = 0x69636f6e // 'icon'
	SelectorIsHidden                    Selector = 0x6869646e // 'hidn'
	SelectorPreferredChannelsForStereo  Selector = 0x64636832 // 'dch2'
	SelectorPreferredChannelLayout      Selector = 0x73726e64 // 'srnd'

	SelectorDeviceIsRunningSomewhere Selector = 0x676f6e65 // 'gone'
	SelectorHogMode                  Selector = 0x6f696e6b // 'oink'
	SelectorBufferFrameSize          Selector = 0x6673697a // 'fsiz'
	SelectorBufferFrameSizeRange     Selector = 0x66737a23 // 'fsz#'
	SelectorUsesVariableBufferSizes  Selector = 0x7666737a // 'vfsz'
	SelectorStreamConfiguration      Selector = 0x736c6179 // 'slay'
	SelectorActualSampleRate         Selector = 0x61737274 // 'asrt'
	SelectorClockDevice              Selector = 0x61706364 // 'apcd'
	SelectorJackIsConnected          Selector = 0x6a61636b // 'jack'
	SelectorVolumeScalar             Selector = 0x766f6c6d // 'volm'
	SelectorVolumeDecibels           Selector = 0x766f6c64 // 'vold'
	SelectorMute                     Selector = 0x6d757465 // 'mute'
	SelectorSolo                     Selector = 0x736f6c6f // 'solo'
	SelectorDataSource               Selector = 0x73737263 // 'ssrc'
	SelectorDataSources              Selector = 0x73736323 // 'ssc#'
	SelectorDataSourceNameForID      Selector = 0x6c73636e // 'lscn'
	SelectorClockSource              Selector = 0x63737263 // 'csrc'
	SelectorClockSources             Selector = 0x63736323 // 'csc#'
	SelectorPlayThru                 Selector = 0x74687275 // 'thru'
)

// Streams.
const (
	SelectorStreamIsActive                 Selector = 0x73616374 // 'sact'
	SelectorStreamDirection                Selector = 0x73646972 // 'sdir'
	SelectorStreamTerminalType             Selector = 0x7465726d // 'term'
	SelectorStreamStartingChannel          Selector = 0x7363686e // 'schn'
	SelectorStreamVirtualFormat            Selector = 0x73666d74 // 'sfmt'
	SelectorStreamAvailableVirtualFormats  Selector = 0x73666d61 // 'sfma'
	SelectorStreamPhysicalFormat           Selector = 0x70667420 // 'pft '
	SelectorStreamAvailablePhysicalFormats Selector = 0x70667461 // 'pfta'
)

// Clock devices.
const (
	SelectorClockDeviceUID Selector = 0x63756964 // 'cuid'
)

// Controls.
const (
	SelectorControlScope   Selector = 0x63736370 // 'cscp'
	SelectorControlElement Selector = 0x63656c6d // 'celm'

	SelectorBooleanControlValue Selector = 0x6263766c // 'bcvl'

	SelectorSelectorControlCurrentItem    Selector = 0x73636369 // 'scci'
	SelectorSelectorControlAvailableItems Selector = 0x73636169 // 'scai'
	SelectorSelectorControlItemName       Selector = 0x7363696e // 'scin'

	SelectorLevelControlScalarValue      Selector = 0x6c637376 // 'lcsv'
	SelectorLevelControlDecibelValue     Selector = 0x6c636476 // 'lcdv'
	SelectorLevelControlDecibelRange     Selector = 0x6c636472 // 'lcdr'
	SelectorLevelControlScalarToDecibels Selector = 0x6c637364 // 'lcsd'
	SelectorLevelControlDecibelsToScalar Selector = 0x6c636473 // 'lcds'

	SelectorSliderControlValue Selector = 0x73647276 // 'sdrv'
	SelectorSliderControlRange Selector = 0x73647272 // 'sdrr'

	SelectorStereoPanControlValue    Selector = 0x73706376 // 'spcv'
	SelectorStereoPanControlChannels Selector = 0x73706363 // 'spcc'
)

// Aggregate, sub- and endpoint devices.
const (
	SelectorAggregateFullSubDeviceList   Selector = 0x67727570 // 'grup'
	SelectorAggregateActiveSubDeviceList Selector = 0x61677270 // 'agrp'
	SelectorAggregateComposition         Selector = 0x61636f6d // 'acom'
	SelectorAggregateMainSubDevice       Selector = 0x616d7374 // 'amst'

	SelectorSubDeviceExtraLatency         Selector = 0x786c7463 // 'xltc'
	SelectorSubDeviceDriftCompensation    Selector = 0x64726674 // 'drft'
	SelectorSubDeviceDriftQuality         Selector = 0x64726671 // 'drfq'

	SelectorEndPointDeviceIsPrivate Selector = 0x70726976 // 'priv'
)

// TransportType values reported by devices and boxes.
type TransportType uint32

const (
	TransportUnknown     TransportType = 0
	TransportBuiltIn     TransportType = 0x626c746e // 'bltn'
	TransportVirtual     TransportType = 0x76697274 // 'virt'
	TransportPCI         TransportType = 0x70636920 // 'pci '
	TransportUSB         TransportType = 0x75736220 // 'usb '
	TransportFireWire    TransportType = 0x31333934 // '1394'
	TransportBluetooth   TransportType = 0x626c7565 // 'blue'
	TransportBluetoothLE TransportType = 0x626c6561 // 'blea'
	TransportHDMI        TransportType = 0x68646d69 // 'hdmi'
	TransportDisplayPort TransportType = 0x64707274 // 'dprt'
	TransportAirPlay     TransportType = 0x61697270 // 'airp'
	TransportThunderbolt TransportType = 0x7468756e // 'thun'
	TransportEthernet    TransportType = 0x65746872 // 'ethr'
	TransportAVB         TransportType = 0x65617662 // 'eavb'
	TransportAggregate   TransportType = 0x67727570 // 'grup'
	TransportContinuity  TransportType = 0x636f6e74 // 'cont'
)

func (t TransportType) String() string {
	switch t {
	case TransportUnknown:
		return "unknown"
	case TransportBuiltIn:
		return "builtin"
	case TransportVirtual:
		return "virtual"
	case TransportPCI:
		return "pci"
	case TransportUSB:
		return "usb"
	case TransportFireWire:
		return "firewire"
	case TransportBluetooth:
		return "bluetooth"
	case TransportBluetoothLE:
		return "bluetooth-le"
	case TransportHDMI:
		return "hdmi"
	case TransportDisplayPort:
		return "displayport"
	case TransportAirPlay:
		return "airplay"
	case TransportThunderbolt:
		return "thunderbolt"
	case TransportEthernet:
		return "ethernet"
	case TransportAVB:
		return "avb"
	case TransportAggregate:
		return "aggregate"
	case TransportContinuity:
		return "continuity"
	}
	return fourCCString(uint32(t))
}
