package oxmsg

import (
	"log"

	"github.com/oxmsgkit/oxmsg/mapiprop"
)

// ParseOptions controls how tolerant a Parse call is of malformed input.
type ParseOptions struct {
	// Strict aborts Parse on the first malformed sub-structure instead of
	// recording a Warning and continuing. Off by default: most .msg files
	// in the wild carry at least one writer quirk that the lenient path
	// recovers from cleanly.
	Strict bool

	// Logger receives debug-level tracing: the size of the top-level
	// properties stream being parsed. Warnings are not logged; they are
	// collected in Message.Warnings. Nil disables logging.
	Logger *log.Logger

	// MaxEnumeration caps the number of recipients and the number of
	// attachments read from a single message, guarding against a hostile
	// or corrupt file claiming an implausible count. Multiple* property
	// elements are not capped by it. Zero takes the default cap of 2048.
	MaxEnumeration int
}

// defaultMaxEnumeration is the recipient/attachment cap
// applied whenever ParseOptions.MaxEnumeration is left at its zero value.
const defaultMaxEnumeration = 2048

// withDefaults fills in the zero-valued fields of o that carry a non-zero
// default, without disturbing a caller's explicit choice.
func (o ParseOptions) withDefaults() ParseOptions {
	if o.MaxEnumeration == 0 {
		o.MaxEnumeration = defaultMaxEnumeration
	}
	return o
}

// Warning is a non-fatal diagnostic recorded while decoding a message.
type Warning = mapiprop.Warning

func (o ParseOptions) logf(format string, args ...interface{}) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

func (o ParseOptions) enumerationLimit(n int) int {
	if o.MaxEnumeration > 0 && n > o.MaxEnumeration {
		return o.MaxEnumeration
	}
	return n
}
