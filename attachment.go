package oxmsg

import (
	"sort"

	"github.com/oxmsgkit/oxmsg/internal/cfbio"
	"github.com/oxmsgkit/oxmsg/mapiprop"
)

// Attachment is one entry from a "__attach_version1.0_#########" storage.
type Attachment struct {
	ID         int
	Filename   string
	Data       []byte
	Hidden     bool
	Properties map[uint16]mapiprop.PValue
}

func assembleAttachments(adapter *cfbio.Adapter, opts ParseOptions, warnings *[]Warning) ([]Attachment, error) {
	storages := storagesWithPrefix(adapter, attachmentPrefix)
	n := opts.enumerationLimit(len(storages))

	attachments := make([]Attachment, 0, n)
	for _, storage := range storages[:n] {
		id, err := storageID(storage, attachmentPrefix)
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

		a := Attachment{ID: id, Properties: props}
		if pv, ok := props[uint16(mapiprop.PidTagAttachLongFilename)]; ok && pv.Present {
			a.Filename = pv.Str
		} else if pv, ok := props[uint16(mapiprop.PidTagDisplayName)]; ok && pv.Present {
			a.Filename = pv.Str
		}
		if pv, ok := props[uint16(mapiprop.PidTagAttachDataBinary)]; ok && pv.Present {
			a.Data = pv.Bin
		}
		if pv, ok := props[uint16(mapiprop.PidTagAttachmentHidden)]; ok && pv.Present {
			a.Hidden = pv.Bool
		}

		attachments = append(attachments, a)
	}

	sort.Slice(attachments, func(i, j int) bool { return attachments[i].ID < attachments[j].ID })
	return attachments, nil
}
