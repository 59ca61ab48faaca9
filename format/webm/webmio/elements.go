package webmio

const (
	ElementTypeUnknown uint8 = 0x0
	ElementTypeMaster  uint8 = 0x1
	ElementTypeUint    uint8 = 0x2
	ElementTypeInt     uint8 = 0x3
	ElementTypeString  uint8 = 0x4
	ElementTypeUnicode uint8 = 0x5
	ElementTypeBinary  uint8 = 0x6
	ElementTypeFloat   uint8 = 0x7
	ElementTypeRaw     uint8 = 0x8
)

var (
	ElementUnknown            = ElementRegister{0x0, ElementTypeUnknown, "Unknown"}
	ElementRaw                = ElementRegister{0x0, ElementTypeRaw, "Raw"}
	ElementEBML               = ElementRegister{0x1a45dfa3, ElementTypeMaster, "EBML"}
	ElementEBMLVersion        = ElementRegister{0x4286, ElementTypeUint, "EBMLVersion"}
	ElementEBMLReadVersion    = ElementRegister{0x42f7, ElementTypeUint, "EBMLReadVersion"}
	ElementEBMLMaxIDLength    = ElementRegister{0x42f2, ElementTypeUint, "EBMLMaxIDLength"}
	ElementEBMLMaxSizeLength  = ElementRegister{0x42f3, ElementTypeUint, "EBMLMaxSizeLength"}
	ElementDocType            = ElementRegister{0x4282, ElementTypeString, "DocType"}
	ElementDocTypeVersion     = ElementRegister{0x4287, ElementTypeUint, "DocTypeVersion"}
	ElementDocTypeReadVersion = ElementRegister{0x4285, ElementTypeUint, "DocTypeReadVersion"}
	ElementVoid               = ElementRegister{0xec, ElementTypeBinary, "Void"}
	ElementSegment            = ElementRegister{0x18538067, ElementTypeMaster, "Segment"}
	ElementInfo               = ElementRegister{0x1549a966, ElementTypeMaster, "Info"}
	ElementSegmentUID         = ElementRegister{0x73a4, ElementTypeBinary, "SegmentUID"}
	ElementTimecodeScale      = ElementRegister{0x2ad7b1, ElementTypeUint, "TimecodeScale"}
	ElementDuration           = ElementRegister{0x4489, ElementTypeFloat, "Duration"}
	ElementMuxingApp          = ElementRegister{0x4d80, ElementTypeUnicode, "MuxingApp"}
	ElementWritingApp         = ElementRegister{0x5741, ElementTypeUnicode, "WritingApp"}
	ElementCluster            = ElementRegister{0x1f43b675, ElementTypeMaster, "Cluster"}
	ElementTimecode           = ElementRegister{0xe7, ElementTypeUint, "Timecode"}
	ElementSimpleBlock        = ElementRegister{0xa3, ElementTypeBinary, "SimpleBlock"}
	ElementTracks             = ElementRegister{0x1654ae6b, ElementTypeMaster, "Tracks"}
	ElementTrackEntry         = ElementRegister{0xae, ElementTypeMaster, "TrackEntry"}
	ElementTrackNumber        = ElementRegister{0xd7, ElementTypeUint, "TrackNumber"}
	ElementTrackUID           = ElementRegister{0x73c5, ElementTypeUint, "TrackUID"}
	ElementTrackType          = ElementRegister{0x83, ElementTypeUint, "TrackType"}
	ElementFlagLacing         = ElementRegister{0x9c, ElementTypeUint, "FlagLacing"}
	ElementDefaultDuration    = ElementRegister{0x23e383, ElementTypeUint, "DefaultDuration"}
	ElementLanguage           = ElementRegister{0x22b59c, ElementTypeString, "Language"}
	ElementCodecID            = ElementRegister{0x86, ElementTypeString, "CodecID"}
	ElementCodecName          = ElementRegister{0x258688, ElementTypeUnicode, "CodecName"}
	ElementVideo              = ElementRegister{0xe0, ElementTypeMaster, "Video"}
	ElementPixelWidth         = ElementRegister{0xb0, ElementTypeUint, "PixelWidth"}
	ElementPixelHeight        = ElementRegister{0xba, ElementTypeUint, "PixelHeight"}
	ElementDisplayWidth       = ElementRegister{0x54b0, ElementTypeUint, "DisplayWidth"}
	ElementDisplayHeight      = ElementRegister{0x54ba, ElementTypeUint, "DisplayHeight"}
	ElementCues               = ElementRegister{0x1c53bb6b, ElementTypeMaster, "Cues"}
	ElementCuePoint           = ElementRegister{0xbb, ElementTypeMaster, "CuePoint"}
	ElementCueTime            = ElementRegister{0xb3, ElementTypeUint, "CueTime"}
	ElementCueTrackPositions  = ElementRegister{0xb7, ElementTypeMaster, "CueTrackPositions"}
	ElementCueTrack           = ElementRegister{0xf7, ElementTypeUint, "CueTrack"}
	ElementCueClusterPosition = ElementRegister{0xf1, ElementTypeUint, "CueClusterPosition"}
)

// GetElementRegister returns the infos concerning the provided element ID
func GetElementRegister(id uint32) ElementRegister {
	switch id {
	case ElementEBML.ID:
		return ElementEBML
	case ElementEBMLVersion.ID:
		return ElementEBMLVersion
	case ElementEBMLReadVersion.ID:
		return ElementEBMLReadVersion
	case ElementEBMLMaxIDLength.ID:
		return ElementEBMLMaxIDLength
	case ElementEBMLMaxSizeLength.ID:
		return ElementEBMLMaxSizeLength
	case ElementDocType.ID:
		return ElementDocType
	case ElementDocTypeVersion.ID:
		return ElementDocTypeVersion
	case ElementDocTypeReadVersion.ID:
		return ElementDocTypeReadVersion
	case ElementVoid.ID:
		return ElementVoid
	case ElementSegment.ID:
		return ElementSegment
	case ElementInfo.ID:
		return ElementInfo
	case ElementSegmentUID.ID:
		return ElementSegmentUID
	case ElementTimecodeScale.ID:
		return ElementTimecodeScale
	case ElementDuration.ID:
		return ElementDuration
	case ElementMuxingApp.ID:
		return ElementMuxingApp
	case ElementWritingApp.ID:
		return ElementWritingApp
	case ElementCluster.ID:
		return ElementCluster
	case ElementTimecode.ID:
		return ElementTimecode
	case ElementSimpleBlock.ID:
		return ElementSimpleBlock
	case ElementTracks.ID:
		return ElementTracks
	case ElementTrackEntry.ID:
		return ElementTrackEntry
	case ElementTrackNumber.ID:
		return ElementTrackNumber
	case ElementTrackUID.ID:
		return ElementTrackUID
	case ElementTrackType.ID:
		return ElementTrackType
	case ElementFlagLacing.ID:
		return ElementFlagLacing
	case ElementDefaultDuration.ID:
		return ElementDefaultDuration
	case ElementLanguage.ID:
		return ElementLanguage
	case ElementCodecID.ID:
		return ElementCodecID
	case ElementCodecName.ID:
		return ElementCodecName
	case ElementVideo.ID:
		return ElementVideo
	case ElementPixelWidth.ID:
		return ElementPixelWidth
	case ElementPixelHeight.ID:
		return ElementPixelHeight
	case ElementDisplayWidth.ID:
		return ElementDisplayWidth
	case ElementDisplayHeight.ID:
		return ElementDisplayHeight
	case ElementCues.ID:
		return ElementCues
	case ElementCuePoint.ID:
		return ElementCuePoint
	case ElementCueTime.ID:
		return ElementCueTime
	case ElementCueTrackPositions.ID:
		return ElementCueTrackPositions
	case ElementCueTrack.ID:
		return ElementCueTrack
	case ElementCueClusterPosition.ID:
		return ElementCueClusterPosition
	default:
		return ElementUnknown
	}
}
