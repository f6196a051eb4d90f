package mapiprop

import "testing"

func TestParseHeaderTopLevel(t *testing.T) {
	data := make([]byte, topLevelHeaderLen+entryLen)
	// bytes 8..12 = next recipient id, 12..16 = next attachment id,
	// 16..20 = recipient count, 20..24 = attachment count.
	data[8] = 0x05
	data[16] = 0x02
	data[20] = 0x01

	h, rest, err := ParseHeader(data, true)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if !h.TopLevel || h.NextRecipientID != 5 || h.RecipientCount != 2 || h.AttachmentCount != 1 {
		t.Fatalf("unexpected header: %+v", h)
	}
	if len(rest) != entryLen {
		t.Fatalf("rest = %d bytes, want %d", len(rest), entryLen)
	}
}

func TestParseHeaderTopLevelShort(t *testing.T) {
	if _, _, err := ParseHeader(make([]byte, 10), true); err == nil {
		t.Fatalf("expected error for truncated top-level header")
	}
}

func TestParseHeaderSubObject(t *testing.T) {
	data := make([]byte, subObjectHeaderLen+entryLen)
	h, rest, err := ParseHeader(data, false)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if h.TopLevel {
		t.Fatalf("expected TopLevel=false")
	}
	if len(rest) != entryLen {
		t.Fatalf("rest = %d bytes, want %d", len(rest), entryLen)
	}
}

func TestParseEntries(t *testing.T) {
	entry := make([]byte, entryLen)
	entry[0] = byte(Integer32)
	entry[2] = 0x37 // PidTagSubject low byte
	entry[3] = 0x00
	entry[8] = 0x2A // value = 42

	entries := ParseEntries(entry)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.PType != Integer32 || e.PID != 0x0037 {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.Value[0] != 0x2A {
		t.Fatalf("unexpected value bytes: %v", e.Value)
	}
}

func TestParseEntriesTruncatedTrailer(t *testing.T) {
	data := make([]byte, entryLen+5)
	data[0] = byte(Boolean)
	entries := ParseEntries(data)
	if len(entries) != 1 {
		t.Fatalf("trailing short bytes should be dropped, not errored: got %d entries", len(entries))
	}
}

func TestParseEntriesUnknownType(t *testing.T) {
	data := make([]byte, entryLen)
	data[0], data[1] = 0xFF, 0xFF
	entries := ParseEntries(data)
	if len(entries) != 1 || entries[0].PType != Null {
		t.Fatalf("unknown type should degrade to Null, got %+v", entries)
	}
}
