// Package oxmsg parses Microsoft Outlook .msg files (MS-OXMSG compound-file
// binary messages) into an in-memory Message graph: subject, sender and
// recipients, body, headers, attachments, and the full set of decoded MAPI
// properties, including named properties resolved through the message's
// Named Property Map.
//
// Parsing never fails outright on a malformed sub-structure unless
// ParseOptions.Strict is set: recoverable problems are collected as
// Warnings on the returned Message instead of aborting the whole parse.
package oxmsg

import (
	"fmt"
	"io"
	"os"

	"github.com/oxmsgkit/oxmsg/internal/cfbio"
)

// ParseFile opens path and parses it as a .msg compound file.
func ParseFile(path string, opts ParseOptions) (*Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("oxmsg: %w", err)
	}
	defer f.Close()
	return Parse(f, opts)
}

// Parse reads a .msg compound file from ra and decodes it into a Message.
func Parse(ra io.ReaderAt, opts ParseOptions) (*Message, error) {
	adapter, err := cfbio.Open(ra)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCompoundFile, err)
	}
	return assembleMessage(adapter, opts)
}
