package oxmsg

import (
	"bytes"

	"github.com/richardlehane/msoleps"

	"github.com/oxmsgkit/oxmsg/internal/cfbio"
)

const summaryInfoStreamName = "\x05SummaryInformation"

// SummaryProperties holds the classic OLE PropertySet ("\x05SummaryInformation")
// values some .msg writers still attach alongside the MAPI property
// streams — author, title, and similar document metadata inherited from
// the compound file format's non-MAPI ancestry. This is best-effort: a
// missing or undecodable stream is never an error, just an empty map,
// since nothing in the MAPI property model depends on it.
type SummaryProperties map[string]string

// loadSummaryProperties decodes the root-level SummaryInformation stream,
// if present, using the classic OLE PropertySet reader rather than the
// MAPI property-stream format every other part of this package parses.
func loadSummaryProperties(adapter *cfbio.Adapter) SummaryProperties {
	data, ok := adapter.OpenStream(summaryInfoStreamName)
	if !ok {
		return nil
	}

	doc, err := msoleps.New(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	props := make(SummaryProperties, len(doc.Property))
	for _, p := range doc.Property {
		if p == nil || p.Name == "" {
			continue
		}
		props[p.Name] = p.String()
	}
	if len(props) == 0 {
		return nil
	}
	return props
}
