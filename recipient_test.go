package oxmsg

import "testing"

func TestRecipientTypeString(t *testing.T) {
	cases := map[RecipientType]string{
		RecipientOriginator: "Originator",
		RecipientTo:         "To",
		RecipientCc:         "Cc",
		RecipientBcc:        "Bcc",
	}
	for rt, want := range cases {
		if got := rt.String(); got != want {
			t.Fatalf("RecipientType(%d).String() = %q, want %q", rt, got, want)
		}
	}
}

func TestStorageID(t *testing.T) {
	id, err := storageID("__recip_version1.0_#0000002A", recipientPrefix)
	if err != nil {
		t.Fatalf("storageID: %v", err)
	}
	if id != 0x2A {
		t.Fatalf("id = %d, want %d", id, 0x2A)
	}
}

func TestStorageIDInvalid(t *testing.T) {
	if _, err := storageID("__recip_version1.0_#zzzzzzzz", recipientPrefix); err == nil {
		t.Fatalf("expected error for non-hex suffix")
	}
}
