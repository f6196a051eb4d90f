package oxmsg

import (
	"fmt"
	"strings"
	"time"

	"github.com/oxmsgkit/oxmsg/internal/cfbio"
	"github.com/oxmsgkit/oxmsg/mapiprop"
)

const (
	propertiesStreamName = "__properties_version1.0"
	nameIDStorageName    = "__nameid_version1.0"
	recipientPrefix      = "__recip_version1.0_#"
	attachmentPrefix     = "__attach_version1.0_#"

	guidStreamName   = "__substg1.0_00020102"
	entryStreamName  = "__substg1.0_00030102"
	stringStreamName = "__substg1.0_00040102"
)

// Message is the decoded form of one .msg compound file: the well-known
// header fields a caller usually wants, plus the full set of resolved
// properties for anything this package doesn't promote to a named field.
type Message struct {
	MessageClass string
	Subject      string

	SenderName         string
	SenderEmailAddress string

	DisplayTo  string
	DisplayCc  string
	DisplayBcc string

	TransportHeaders string

	ClientSubmitTime     time.Time
	DeliveryTime         time.Time
	CreationTime         time.Time
	LastModificationTime time.Time

	HasAttachments bool

	Recipients  []Recipient
	Attachments []Attachment

	// Properties holds every property resolved on the top-level message
	// object, keyed by its runtime property id (the well-known PidTag for
	// tags below 0x8000, or 0x8000+index for a named property).
	Properties map[uint16]mapiprop.PValue

	// NameIDMap is the message's own Named Property Map, or nil if it
	// carried no "__nameid_version1.0" storage.
	NameIDMap *mapiprop.NameIDMap

	// Summary holds the legacy OLE "\x05SummaryInformation" PropertySet,
	// if the file carried one. Most modern .msg writers omit it; nil when
	// absent or undecodable.
	Summary SummaryProperties

	Warnings []Warning
}

// Property looks up a well-known tag on the top-level message.
func (m *Message) Property(tag mapiprop.PidTag) (mapiprop.PValue, bool) {
	pv, ok := m.Properties[uint16(tag)]
	return pv, ok
}

// NamedProperty resolves name within set against the message's Named
// Property Map and returns its current value, if both the mapping and a
// value for it exist.
func (m *Message) NamedProperty(set mapiprop.PropertySet, name string) (mapiprop.PValue, bool) {
	if m.NameIDMap == nil {
		return mapiprop.PValue{}, false
	}
	for _, np := range m.NameIDMap.Entries() {
		if np.Set == set && np.Kind == mapiprop.KindString && np.Name == name {
			pv, ok := m.Properties[np.PropID]
			return pv, ok
		}
	}
	return mapiprop.PValue{}, false
}

// propertyObject is everything needed to resolve one storage's fixed
// property entries and their variable-length payloads: its own stream
// opener, already scoped to the right storage prefix.
type propertyObject struct {
	open func(name string) ([]byte, bool)
}

func (p propertyObject) resolveAll(entries []mapiprop.Entry, opts ParseOptions, warnings *[]Warning) map[uint16]mapiprop.PValue {
	props := make(map[uint16]mapiprop.PValue, len(entries))
	for _, e := range entries {
		pid := e.PID
		pv, warn := mapiprop.ResolveVariable(pid, e, p.open)
		if warn != nil {
			*warnings = append(*warnings, *warn)
			if opts.Strict {
				continue
			}
		}
		props[pid] = pv
	}
	return props
}

// assembleMessage builds a Message from an opened compound file.
func assembleMessage(adapter *cfbio.Adapter, opts ParseOptions) (*Message, error) {
	opts = opts.withDefaults()
	msg := &Message{}

	rootData, ok := adapter.OpenStream(propertiesStreamName)
	if !ok {
		return nil, ErrMissingPropertiesStream
	}

	opts.logf("parsing top-level properties stream, %d bytes", len(rootData))

	_, entryBytes, err := mapiprop.ParseHeader(rootData, true)
	if err != nil {
		if opts.Strict {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPropertyEntry, err)
		}
		msg.Warnings = append(msg.Warnings, Warning{Path: propertiesStreamName, Err: err})
	}
	entries := mapiprop.ParseEntries(entryBytes)

	var nameMap *mapiprop.NameIDMap
	if adapter.HasStorage(nameIDStorageName) {
		nameMap, err = loadNameIDMap(adapter, nameIDStorageName, &msg.Warnings)
		if err != nil && opts.Strict {
			return nil, err
		}
	}
	msg.NameIDMap = nameMap

	root := propertyObject{open: adapter.OpenStream}
	msg.Properties = root.resolveAll(entries, opts, &msg.Warnings)

	populateWellKnownFields(msg)

	if msg.Subject == "" {
		return nil, ErrMissingSubject
	}
	if msg.SenderEmailAddress == "" {
		return nil, ErrMissingSenderEmailAddress
	}
	if msg.DeliveryTime.IsZero() {
		return nil, ErrMissingDeliveryTime
	}

	recipients, err := assembleRecipients(adapter, opts, &msg.Warnings)
	if err != nil && opts.Strict {
		return nil, err
	}
	msg.Recipients = recipients

	attachments, err := assembleAttachments(adapter, opts, &msg.Warnings)
	if err != nil && opts.Strict {
		return nil, err
	}
	msg.Attachments = attachments
	if len(attachments) > 0 {
		msg.HasAttachments = true
	}

	msg.Summary = loadSummaryProperties(adapter)

	if opts.Strict && len(msg.Warnings) > 0 {
		return nil, fmt.Errorf("oxmsg: strict parse failed: %s", msg.Warnings[0].String())
	}

	return msg, nil
}

func loadNameIDMap(adapter *cfbio.Adapter, storage string, warnings *[]Warning) (*mapiprop.NameIDMap, error) {
	guidStream, _ := adapter.OpenStream(cfbio.Join(storage, guidStreamName))
	entryStream, ok := adapter.OpenStream(cfbio.Join(storage, entryStreamName))
	if !ok {
		return nil, fmt.Errorf("oxmsg: %s missing entry stream", storage)
	}
	stringStream, _ := adapter.OpenStream(cfbio.Join(storage, stringStreamName))

	m, warns, err := mapiprop.ParseNameIDMap(guidStream, entryStream, stringStream)
	*warnings = append(*warnings, warns...)
	return m, err
}

func populateWellKnownFields(msg *Message) {
	get := func(tag mapiprop.PidTag) (mapiprop.PValue, bool) {
		return msg.Property(tag)
	}
	if pv, ok := get(mapiprop.PidTagMessageClass); ok && pv.Present {
		msg.MessageClass = pv.Str
	}
	if pv, ok := get(mapiprop.PidTagSubject); ok && pv.Present {
		msg.Subject = pv.Str
	}
	if pv, ok := get(mapiprop.PidTagSenderName); ok && pv.Present {
		msg.SenderName = pv.Str
	}
	if pv, ok := get(mapiprop.PidTagSenderEmailAddress); ok && pv.Present && isValidEmail(pv.Str) {
		msg.SenderEmailAddress = pv.Str
	}
	if pv, ok := get(mapiprop.PidTagSmtpAddress); ok && pv.Present && msg.SenderEmailAddress == "" && isValidEmail(pv.Str) {
		msg.SenderEmailAddress = pv.Str
	}
	if pv, ok := get(mapiprop.PidTagDisplayTo); ok && pv.Present {
		msg.DisplayTo = pv.Str
	}
	if pv, ok := get(mapiprop.PidTagDisplayCc); ok && pv.Present {
		msg.DisplayCc = pv.Str
	}
	if pv, ok := get(mapiprop.PidTagDisplayBcc); ok && pv.Present {
		msg.DisplayBcc = pv.Str
	}
	if pv, ok := get(mapiprop.PidTagTransportMessageHeaders); ok && pv.Present {
		msg.TransportHeaders = pv.Str
	}
	if pv, ok := get(mapiprop.PidTagClientSubmitTime); ok && pv.Present {
		msg.ClientSubmitTime = pv.Time
	}
	if pv, ok := get(mapiprop.PidTagMessageDeliveryTime); ok && pv.Present {
		msg.DeliveryTime = pv.Time
	}
	if pv, ok := get(mapiprop.PidTagCreationTime); ok && pv.Present {
		msg.CreationTime = pv.Time
	}
	if pv, ok := get(mapiprop.PidTagLastModificationTime); ok && pv.Present {
		msg.LastModificationTime = pv.Time
	}
	if pv, ok := get(mapiprop.PidTagHasAttachments); ok && pv.Present {
		msg.HasAttachments = pv.Bool
	}
}

// isValidEmail is a light hygiene check on a resolved email-address
// property, not a validator suitable for rejecting recipient input: it
// exists only to stop an obviously-garbage property value (truncated
// binary misdecoded as a string, for instance) from landing in
// SenderEmailAddress or a Recipient's EmailAddress field.
func isValidEmail(s string) bool {
	if s == "" || len(s) > 320 {
		return false
	}
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return strings.IndexByte(s[at+1:], '.') >= 0
}
