package mapiprop

import "github.com/oxmsgkit/oxmsg/internal/binenc"

// setKind discriminates the 18-member closed catalogue of well-known
// property sets from an arbitrary retained GUID.
type setKind uint8

const (
	setOther setKind = iota
	setPublicStrings
	setCommon
	setAddress
	setInternetHeaders
	setAppointment
	setMeeting
	setLog
	setMessaging
	setNote
	setPostRss
	setTask
	setUnifiedMessaging
	setMAPI
	setAirSync
	setSharing
	setXMLExtractedEntities
	setAttachment
	setCalendarAssistant
)

// PropertySet is a GUID identifying a namespace of named properties. The
// 18-member closed catalogue compares equal by value; any other GUID is
// retained verbatim as "Other".
type PropertySet struct {
	kind  setKind
	other binenc.GUID
}

// The 18 well-known property-set GUIDs, already in canonical display byte
// order.
var (
	guidPublicStrings       = binenc.GUID{0x00, 0x02, 0x03, 0x29, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}
	guidCommon              = binenc.GUID{0x00, 0x06, 0x20, 0x08, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}
	guidAddress             = binenc.GUID{0x00, 0x06, 0x20, 0x04, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}
	guidHeaders             = binenc.GUID{0x00, 0x02, 0x03, 0x86, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}
	guidAppointment         = binenc.GUID{0x00, 0x06, 0x20, 0x02, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}
	guidMeeting             = binenc.GUID{0x6E, 0xD8, 0xDA, 0x90, 0x45, 0x0B, 0x10, 0x1B, 0x98, 0xDA, 0x00, 0xAA, 0x00, 0x3F, 0x13, 0x05}
	guidLog                 = binenc.GUID{0x00, 0x06, 0x20, 0x0A, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}
	guidMessaging           = binenc.GUID{0x41, 0xF2, 0x8F, 0x13, 0x83, 0xF4, 0x41, 0x14, 0xA5, 0x84, 0xEE, 0xDB, 0x5A, 0x6B, 0x0B, 0xFF}
	guidNote                = binenc.GUID{0x00, 0x06, 0x20, 0x0E, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}
	guidPostRss             = binenc.GUID{0x00, 0x06, 0x20, 0x41, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}
	guidTask                = binenc.GUID{0x00, 0x06, 0x20, 0x03, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}
	guidUnifiedMessaging    = binenc.GUID{0x44, 0x42, 0x85, 0x8E, 0xA9, 0xE3, 0x4E, 0x80, 0xB9, 0x00, 0x31, 0x7A, 0x21, 0x0C, 0xC1, 0x5B}
	guidMAPI                = binenc.GUID{0x00, 0x02, 0x03, 0x28, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}
	guidAirSync             = binenc.GUID{0x71, 0x03, 0x55, 0x49, 0x07, 0x39, 0x4D, 0xCB, 0x91, 0x63, 0x00, 0xF0, 0x58, 0x0D, 0xBB, 0xDF}
	guidSharing             = binenc.GUID{0x00, 0x06, 0x20, 0x40, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}
	guidXMLExtractedEntities = binenc.GUID{0x23, 0x23, 0x96, 0x08, 0x68, 0x5D, 0x47, 0x32, 0x9C, 0x55, 0x4C, 0x95, 0xCB, 0x4E, 0x8E, 0x33}
	guidAttachment          = binenc.GUID{0x96, 0x35, 0x7F, 0x7F, 0x59, 0xE1, 0x47, 0xD0, 0x99, 0xA7, 0x46, 0x51, 0x5C, 0x18, 0x3B, 0x54}
	guidCalendarAssistant   = binenc.GUID{0x11, 0x00, 0x0E, 0x07, 0xB5, 0x1B, 0x40, 0xD6, 0xAF, 0x21, 0xCA, 0xA8, 0x5E, 0xDA, 0xB1, 0xD0}
)

// Exported PropertySet constants, one per member of the closed catalogue.
var (
	PSPublicStrings         = PropertySet{kind: setPublicStrings}
	PSETIDCommon            = PropertySet{kind: setCommon}
	PSETIDAddress           = PropertySet{kind: setAddress}
	PSInternetHeaders       = PropertySet{kind: setInternetHeaders}
	PSETIDAppointment       = PropertySet{kind: setAppointment}
	PSETIDMeeting           = PropertySet{kind: setMeeting}
	PSETIDLog               = PropertySet{kind: setLog}
	PSETIDMessaging         = PropertySet{kind: setMessaging}
	PSETIDNote              = PropertySet{kind: setNote}
	PSETIDPostRss           = PropertySet{kind: setPostRss}
	PSETIDTask              = PropertySet{kind: setTask}
	PSETIDUnifiedMessaging  = PropertySet{kind: setUnifiedMessaging}
	PSMAPI                  = PropertySet{kind: setMAPI}
	PSETIDAirSync           = PropertySet{kind: setAirSync}
	PSETIDSharing           = PropertySet{kind: setSharing}
	PSETIDXMLExtrEntities   = PropertySet{kind: setXMLExtractedEntities}
	PSETIDAttachment        = PropertySet{kind: setAttachment}
	PSETIDCalendarAssistant = PropertySet{kind: setCalendarAssistant}
)

var setNames = map[setKind]string{
	setPublicStrings:        "PS_PUBLIC_STRINGS",
	setCommon:               "PSETID_Common",
	setAddress:              "PSETID_Address",
	setInternetHeaders:      "PS_INTERNET_HEADERS",
	setAppointment:          "PSETID_Appointment",
	setMeeting:              "PSETID_Meeting",
	setLog:                  "PSETID_Log",
	setMessaging:            "PSETID_Messaging",
	setNote:                 "PSETID_Note",
	setPostRss:              "PSETID_PostRss",
	setTask:                 "PSETID_Task",
	setUnifiedMessaging:     "PSETID_UnifiedMessaging",
	setMAPI:                 "PS_MAPI",
	setAirSync:              "PSETID_AirSync",
	setSharing:              "PSETID_Sharing",
	setXMLExtractedEntities: "PSETID_XmlExtractedEntities",
	setAttachment:           "PSETID_Attachment",
	setCalendarAssistant:    "PSETID_CalendarAssistant",
}

var guidToSet = map[binenc.GUID]setKind{
	guidPublicStrings:        setPublicStrings,
	guidCommon:               setCommon,
	guidAddress:              setAddress,
	guidHeaders:              setInternetHeaders,
	guidAppointment:          setAppointment,
	guidMeeting:              setMeeting,
	guidLog:                  setLog,
	guidMessaging:            setMessaging,
	guidNote:                 setNote,
	guidPostRss:              setPostRss,
	guidTask:                 setTask,
	guidUnifiedMessaging:     setUnifiedMessaging,
	guidMAPI:                 setMAPI,
	guidAirSync:              setAirSync,
	guidSharing:              setSharing,
	guidXMLExtractedEntities: setXMLExtractedEntities,
	guidAttachment:           setAttachment,
	guidCalendarAssistant:    setCalendarAssistant,
}

var setToGUID = map[setKind]binenc.GUID{
	setPublicStrings:        guidPublicStrings,
	setCommon:               guidCommon,
	setAddress:              guidAddress,
	setInternetHeaders:      guidHeaders,
	setAppointment:          guidAppointment,
	setMeeting:              guidMeeting,
	setLog:                  guidLog,
	setMessaging:            guidMessaging,
	setNote:                 guidNote,
	setPostRss:              guidPostRss,
	setTask:                 guidTask,
	setUnifiedMessaging:     guidUnifiedMessaging,
	setMAPI:                 guidMAPI,
	setAirSync:              guidAirSync,
	setSharing:              guidSharing,
	setXMLExtractedEntities: guidXMLExtractedEntities,
	setAttachment:           guidAttachment,
	setCalendarAssistant:    guidCalendarAssistant,
}

// ToGUID returns the canonical GUID for p.
func (p PropertySet) ToGUID() binenc.GUID {
	if p.kind == setOther {
		return p.other
	}
	return setToGUID[p.kind]
}

// String renders the catalogue name, or the raw GUID for a retained
// "Other" property set.
func (p PropertySet) String() string {
	if p.kind == setOther {
		return p.other.String()
	}
	return setNames[p.kind]
}

// IsOther reports whether p falls outside the 18-member closed catalogue.
func (p PropertySet) IsOther() bool {
	return p.kind == setOther
}

// PropertySetFromGUID maps a GUID to its closed-catalogue PropertySet, or
// wraps it as "Other" when it matches none of the 18 well-known sets.
func PropertySetFromGUID(g binenc.GUID) PropertySet {
	if kind, ok := guidToSet[g]; ok {
		return PropertySet{kind: kind}
	}
	return PropertySet{kind: setOther, other: g}
}
