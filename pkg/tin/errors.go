package tin

import "errors"

// Sentinel errors for the validation failure taxonomy. Jurisdiction packages
// return these (optionally wrapped) so callers can branch with errors.Is and
// transport layers can translate them into stable wire codes.
//
// The kinds mirror the stages of the validation pipeline:
//   - ErrInvalidFormat: characters outside the allowed alphabet after cleaning
//   - ErrInvalidLength: cleaned length not among the accepted set
//   - ErrInvalidComponent: a sub-field violates a structural rule
//   - ErrInvalidChecksum: structure is fine but the check value disagrees
var (
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidLength    = errors.New("invalid length")
	ErrInvalidComponent = errors.New("invalid component")
	ErrInvalidChecksum  = errors.New("invalid checksum")
)

// Kind returns the stable label for a validation error, suitable for wire
// responses and metrics. Unrecognized errors map to "invalid"; nil maps to
// the empty string.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, ErrInvalidComponent):
		return "invalid_component"
	case errors.Is(err, ErrInvalidChecksum):
		return "invalid_checksum"
	default:
		return "invalid"
	}
}
