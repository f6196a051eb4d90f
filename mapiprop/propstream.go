package mapiprop

import (
	"errors"
	"fmt"

	"github.com/oxmsgkit/oxmsg/internal/binenc"
)

// ErrShortInput is re-exported so callers parsing a property stream don't
// need to import internal/binenc just to compare errors.
var ErrShortInput = binenc.ErrShortInput

// Flags is the 32-bit MANDATORY|READABLE|WRITABLE flag field carried by
// every fixed-length property entry.
type Flags uint32

const (
	FlagMandatory Flags = 0x1
	FlagReadable  Flags = 0x2
	FlagWritable  Flags = 0x4
)

// Header is the parsed form of a property stream's leading fixed header.
// TopLevel distinguishes the Message-root 32-byte header from the 8-byte
// header every Recipient/Attachment sub-object carries.
type Header struct {
	TopLevel         bool
	NextRecipientID  uint32
	NextAttachmentID uint32
	RecipientCount   uint32
	AttachmentCount  uint32
}

const (
	topLevelHeaderLen = 32
	subObjectHeaderLen = 8
	entryLen           = 16
)

// ParseHeader consumes the fixed header at the start of data and returns
// it along with the remaining bytes (the fixed-length entry array).
func ParseHeader(data []byte, topLevel bool) (Header, []byte, error) {
	if topLevel {
		if len(data) < topLevelHeaderLen {
			return Header{}, nil, fmt.Errorf("mapiprop: top-level property header: %w", ErrShortInput)
		}
		nextRecipient, _ := binenc.ReadU32LE(data[8:12])
		nextAttachment, _ := binenc.ReadU32LE(data[12:16])
		recipientCount, _ := binenc.ReadU32LE(data[16:20])
		attachmentCount, _ := binenc.ReadU32LE(data[20:24])
		h := Header{
			TopLevel:         true,
			NextRecipientID:  nextRecipient,
			NextAttachmentID: nextAttachment,
			RecipientCount:   recipientCount,
			AttachmentCount:  attachmentCount,
		}
		return h, data[topLevelHeaderLen:], nil
	}

	if len(data) < subObjectHeaderLen {
		return Header{}, nil, fmt.Errorf("mapiprop: sub-object property header: %w", ErrShortInput)
	}
	return Header{}, data[subObjectHeaderLen:], nil
}

// Entry is one 16-byte fixed-length record from a property stream's entry
// array.
type Entry struct {
	PType PropertyType
	PID   uint16
	Flags Flags
	Value [8]byte
}

// ParseEntries decodes the fixed-length entry array following a property
// stream header. Parsing stops cleanly, without error, as soon as fewer
// than 16 bytes remain — a truncated trailing entry is tolerated, not
// fatal, matching the lenient posture this module takes toward malformed
// sub-structures generally.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	for len(data) >= entryLen {
		rawType, _ := binenc.ReadU16LE(data[0:2])
		pid, _ := binenc.ReadU16LE(data[2:4])
		flags, _ := binenc.ReadU32LE(data[4:8])

		ptype, known := TypeOf(rawType)
		if !known {
			// Lenient: an unrecognised type tag decodes to Null rather
			// than aborting the whole entry array.
			ptype = Null
		}

		var value [8]byte
		copy(value[:], data[8:16])

		entries = append(entries, Entry{
			PType: ptype,
			PID:   pid,
			Flags: Flags(flags),
			Value: value,
		})
		data = data[entryLen:]
	}
	return entries
}

// ErrUnknownPropertyType flags a PType that ParseEntries could not map to
// a registered PropertyType; it is informational only, since ParseEntries
// already degrades the entry to Null rather than returning this error.
var ErrUnknownPropertyType = errors.New("mapiprop: unknown property type tag")
