package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOption     = errors.New("invalid option")
	ErrConfiguration     = errors.New("configuration error")
	ErrCrypto            = errors.New("crypto error")
	ErrExternalTool      = errors.New("external tool failed")
	ErrSignatureInvalid  = errors.New("invalid signature")
	ErrInvalidGitHubData = errors.New("invalid GitHub data")
	ErrAdvisorRunning    = errors.New("advisor run already in progress")
)

// PlatformError is returned when the GitHub API answers with a non-2xx status that
// the caller did not expect.
type PlatformError struct {
	StatusCode int
	Target     string
}

func (x *PlatformError) Error() string {
	return fmt.Sprintf("GitHub API returned status %d for %s", x.StatusCode, x.Target)
}

// AsPlatformError extracts a PlatformError from the chain.
func AsPlatformError(err error) (*PlatformError, bool) {
	var pe *PlatformError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
