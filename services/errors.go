package services

import "errors"

// Service errors grouped by how the controllers surface them:
// not-found conditions map to 404, invalid ceremony state to 400,
// authentication failures to 401 and duplicate registrations to 409.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCredentialNotFound = errors.New("credential not found")

	ErrChallengeNotFound = errors.New("invalid or expired challenge")
	ErrNoCredentials     = errors.New("no biometric credentials registered")

	ErrChallengeMismatch = errors.New("challenge mismatch")
	ErrOriginMismatch    = errors.New("origin mismatch")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrCounterReplay     = errors.New("invalid counter - possible replay attack")

	ErrCredentialExists = errors.New("credential already registered")
)

// IsUnauthorized reports whether err is one of the authentication failures
// that collapse to a 401 at the HTTP boundary.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrChallengeMismatch) ||
		errors.Is(err, ErrOriginMismatch) ||
		errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrCounterReplay)
}
