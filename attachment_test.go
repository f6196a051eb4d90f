package oxmsg

import (
	"testing"

	"github.com/oxmsgkit/oxmsg/internal/cfbio"
	"github.com/oxmsgkit/oxmsg/mapiprop"
)

func TestAssembleAttachmentsFilenameFallsBackToDisplayName(t *testing.T) {
	displayName := "Quarterly Report.pdf"
	displayBytes := utf16le(displayName)

	entries := subObjectHeader(
		fixedEntry(mapiprop.String, uint16(mapiprop.PidTagDisplayName), u32le(uint32(len(displayBytes)))),
	)

	storage := "__attach_version1.0_#00000000"
	streams := map[string][]byte{
		cfbio.Join(storage, propertiesStreamName): entries,
		cfbio.Join(storage, mapiprop.SubstreamName(uint16(mapiprop.PidTagDisplayName), mapiprop.String)): displayBytes,
	}

	adapter := cfbio.FromStreams(streams)
	var warnings []Warning
	attachments, err := assembleAttachments(adapter, ParseOptions{}, &warnings)
	if err != nil {
		t.Fatalf("assembleAttachments: %v", err)
	}
	if len(attachments) != 1 {
		t.Fatalf("got %d attachments, want 1", len(attachments))
	}
	if attachments[0].Filename != displayName {
		t.Fatalf("Filename = %q, want %q", attachments[0].Filename, displayName)
	}
}

func TestAssembleAttachmentsPrefersLongFilename(t *testing.T) {
	longName := "report-final-v2.pdf"
	longBytes := utf16le(longName)
	displayBytes := utf16le("Quarterly Report.pdf")

	entries := subObjectHeader(
		fixedEntry(mapiprop.String, uint16(mapiprop.PidTagAttachLongFilename), u32le(uint32(len(longBytes)))),
		fixedEntry(mapiprop.String, uint16(mapiprop.PidTagDisplayName), u32le(uint32(len(displayBytes)))),
	)

	storage := "__attach_version1.0_#00000000"
	streams := map[string][]byte{
		cfbio.Join(storage, propertiesStreamName): entries,
		cfbio.Join(storage, mapiprop.SubstreamName(uint16(mapiprop.PidTagAttachLongFilename), mapiprop.String)): longBytes,
		cfbio.Join(storage, mapiprop.SubstreamName(uint16(mapiprop.PidTagDisplayName), mapiprop.String)):        displayBytes,
	}

	adapter := cfbio.FromStreams(streams)
	var warnings []Warning
	attachments, err := assembleAttachments(adapter, ParseOptions{}, &warnings)
	if err != nil {
		t.Fatalf("assembleAttachments: %v", err)
	}
	if len(attachments) != 1 {
		t.Fatalf("got %d attachments, want 1", len(attachments))
	}
	if attachments[0].Filename != longName {
		t.Fatalf("Filename = %q, want %q (AttachLongFilename should win over DisplayName)", attachments[0].Filename, longName)
	}
}

func TestAssembleAttachmentsDataAndHidden(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	entries := subObjectHeader(
		fixedEntry(mapiprop.Binary, uint16(mapiprop.PidTagAttachDataBinary), u32le(uint32(len(data)))),
		fixedEntry(mapiprop.Boolean, uint16(mapiprop.PidTagAttachmentHidden), []byte{1, 0}),
	)

	storage := "__attach_version1.0_#00000000"
	streams := map[string][]byte{
		cfbio.Join(storage, propertiesStreamName): entries,
		cfbio.Join(storage, mapiprop.SubstreamName(uint16(mapiprop.PidTagAttachDataBinary), mapiprop.Binary)): data,
	}

	adapter := cfbio.FromStreams(streams)
	var warnings []Warning
	attachments, err := assembleAttachments(adapter, ParseOptions{}, &warnings)
	if err != nil {
		t.Fatalf("assembleAttachments: %v", err)
	}
	if len(attachments) != 1 {
		t.Fatalf("got %d attachments, want 1", len(attachments))
	}
	a := attachments[0]
	if string(a.Data) != string(data) {
		t.Fatalf("Data = %v, want %v", a.Data, data)
	}
	if !a.Hidden {
		t.Fatalf("expected Hidden=true")
	}
}

func TestAssembleAttachmentsStopsAtFirstGap(t *testing.T) {
	entries := subObjectHeader()

	// An attachment at index 5 with nothing at index 0 must not be
	// enumerated: storagesWithPrefix stops at the first absent index.
	storage := "__attach_version1.0_#00000005"
	streams := map[string][]byte{
		cfbio.Join(storage, propertiesStreamName): entries,
	}

	adapter := cfbio.FromStreams(streams)
	var warnings []Warning
	attachments, err := assembleAttachments(adapter, ParseOptions{}, &warnings)
	if err != nil {
		t.Fatalf("assembleAttachments: %v", err)
	}
	if len(attachments) != 0 {
		t.Fatalf("got %d attachments, want 0 (gap at index 0 should stop enumeration)", len(attachments))
	}
}
