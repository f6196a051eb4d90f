package oxmsg

import "errors"

// Sentinel errors this package returns from Parse. ErrMalformedCompoundFile
// and ErrMissingPropertiesStream are structural: the input could not be
// read as a .msg file at all. ErrMissingSubject,
// ErrMissingSenderEmailAddress, and ErrMissingDeliveryTime are semantic:
// the file parsed cleanly but lacks a property every message is required
// to carry, so these always abort Parse, even when ParseOptions.Strict is
// left unset. ErrMalformedPropertyEntry is returned only when Strict is
// set; without Strict the underlying header error is recorded as a
// Warning instead. ErrUnresolvedNamedProperty is not returned by Parse.
var (
	// ErrMalformedCompoundFile means the input could not be opened as a
	// compound file at all (bad header, truncated FAT, and similar).
	ErrMalformedCompoundFile = errors.New("oxmsg: malformed compound file")

	// ErrMissingPropertiesStream means the root storage has no
	// "__properties_version1.0" stream, so no message properties can be
	// recovered at all.
	ErrMissingPropertiesStream = errors.New("oxmsg: missing properties stream")

	// ErrMissingSubject means the message carries no PidTagSubject
	// (0x0037001F), a property every parsed message is required to have.
	ErrMissingSubject = errors.New("oxmsg: missing subject")

	// ErrMissingSenderEmailAddress means the message carries no
	// PidTagSenderEmailAddress (0x0C1F001F), a property every parsed
	// message is required to have.
	ErrMissingSenderEmailAddress = errors.New("oxmsg: missing sender email address")

	// ErrMissingDeliveryTime means the message carries no
	// PidTagMessageDeliveryTime (0x0E06), a property every parsed message
	// is required to have.
	ErrMissingDeliveryTime = errors.New("oxmsg: missing delivery time")

	// ErrMalformedPropertyEntry wraps the error from a top-level
	// properties stream too short to hold its 32-byte header, in Strict
	// mode.
	ErrMalformedPropertyEntry = errors.New("oxmsg: malformed property entry")

	// ErrUnresolvedNamedProperty flags a named-property runtime id that
	// the Named Property Map could not resolve.
	ErrUnresolvedNamedProperty = errors.New("oxmsg: unresolved named property")
)
