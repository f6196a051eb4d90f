package oxmsg

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/oxmsgkit/oxmsg/internal/cfbio"
	"github.com/oxmsgkit/oxmsg/mapiprop"
)

// RecipientType mirrors PR_RECIPIENT_TYPE (PidTagRecipientType).
type RecipientType int

const (
	RecipientOriginator RecipientType = iota
	RecipientTo
	RecipientCc
	RecipientBcc
)

func (t RecipientType) String() string {
	switch t {
	case RecipientTo:
		return "To"
	case RecipientCc:
		return "Cc"
	case RecipientBcc:
		return "Bcc"
	default:
		return "Originator"
	}
}

// Recipient is one entry from a "__recip_version1.0_#########" storage.
type Recipient struct {
	ID           int
	Type         RecipientType
	DisplayName  string
	EmailAddress string
	Properties   map[uint16]mapiprop.PValue
}

func assembleRecipients(adapter *cfbio.Adapter, opts ParseOptions, warnings *[]Warning) ([]Recipient, error) {
	storages := storagesWithPrefix(adapter, recipientPrefix)
	n := opts.enumerationLimit(len(storages))

	recipients := make([]Recipient, 0, n)
	for _, storage := range storages[:n] {
		id, err := storageID(storage, recipientPrefix)
		if err != nil {
			*warnings = append(*warnings, Warning{Path: storage, Err: err})
			continue
		}

		entries, err := readObjectEntries(adapter, storage, false, warnings)
		if err != nil {
			*warnings = append(*warnings, Warning{Path: storage, Err: err})
			continue
		}

		obj := propertyObject{open: func(name string) ([]byte, bool) {
			return adapter.OpenStream(cfbio.Join(storage, name))
		}}
		props := obj.resolveAll(entries, opts, warnings)

		r := Recipient{ID: id, Properties: props}
		if pv, ok := props[uint16(mapiprop.PidTagDisplayName)]; ok && pv.Present {
			r.DisplayName = pv.Str
		}
		if pv, ok := props[uint16(mapiprop.PidTagSmtpAddress)]; ok && pv.Present && isValidEmail(pv.Str) {
			r.EmailAddress = pv.Str
		}
		if pv, ok := props[uint16(mapiprop.PidTagEmailAddress)]; ok && pv.Present && r.EmailAddress == "" && isValidEmail(pv.Str) {
			r.EmailAddress = pv.Str
		}
		if pv, ok := props[uint16(mapiprop.PidTagRecipientType)]; ok && pv.Present {
			r.Type = RecipientType(pv.I32)
		}

		recipients = append(recipients, r)
	}

	sort.Slice(recipients, func(i, j int) bool { return recipients[i].ID < recipients[j].ID })
	return recipients, nil
}

// maxStorageProbe bounds the sequential recipient/attachment storage scan,
// so a corrupt file claiming an implausible index can't spin the loop
// forever.
const maxStorageProbe = 2048

// storagesWithPrefix enumerates a message's recipient or attachment
// sub-objects in index order: prefix joined with the zero-padded uppercase
// 8-hex-digit suffix MS-OXMSG writers lay out contiguously from 0,
// stopping at the first absent index. A storage at an index past a gap
// (e.g. #00000005 with nothing at #00000001) is never reached.
func storagesWithPrefix(adapter *cfbio.Adapter, prefix string) []string {
	var names []string
	for i := 0; i <= maxStorageProbe; i++ {
		name := fmt.Sprintf("%s%08X", prefix, i)
		if !adapter.HasStorage(name) {
			break
		}
		names = append(names, name)
	}
	return names
}

// storageID parses the trailing 8-hex-digit id MS-OXMSG encodes into a
// recipient or attachment storage name.
func storageID(storage, prefix string) (int, error) {
	suffix := strings.TrimPrefix(storage, prefix)
	v, err := strconv.ParseUint(suffix, 16, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// readObjectEntries opens and parses the fixed property header and entry
// array for one recipient or attachment storage.
func readObjectEntries(adapter *cfbio.Adapter, storage string, topLevel bool, warnings *[]Warning) ([]mapiprop.Entry, error) {
	data, ok := adapter.OpenStream(cfbio.Join(storage, propertiesStreamName))
	if !ok {
		return nil, ErrMissingPropertiesStream
	}
	_, rest, err := mapiprop.ParseHeader(data, topLevel)
	if err != nil {
		*warnings = append(*warnings, Warning{Path: storage, Err: err})
		return nil, err
	}
	return mapiprop.ParseEntries(rest), nil
}
