package mapiprop

import (
	"bytes"
	"io"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// decodeString8 decodes a PtypString8 byte sequence to UTF-8. MAPI does not
// carry an explicit codepage alongside every String8 property, so the
// decoder falls back through a short chain: detect a charset via chardet,
// look it up through x/net/html/charset and decode with that encoding; if
// detection, lookup or decoding fails, decode with x/text's Windows-1252
// table, and if that fails too, with ISO-8859-1.
func decodeString8(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}

	enc := charmap.Windows1252
	if det, err := chardet.NewTextDetector().DetectBest(b); err == nil && det != nil {
		if e, name := charset.Lookup(det.Charset); e != nil {
			_ = name
			enc = nil
			out, _, decErr := transform.Bytes(e.NewDecoder(), b)
			if decErr == nil {
				return string(out), nil
			}
		}
	}
	if enc == nil {
		enc = charmap.Windows1252
	}

	r := transform.NewReader(bytes.NewReader(b), enc.NewDecoder())
	out, err := io.ReadAll(r)
	if err != nil {
		// Last resort: ISO-8859-1 never rejects a byte, so it always
		// produces something rather than dropping the property.
		out, _, _ = transform.Bytes(charmap.ISO8859_1.NewDecoder(), b)
	}
	return string(out), nil
}
