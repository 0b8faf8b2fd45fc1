package google

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

// Common Google API errors.
var (
	// ErrUnauthorized indicates invalid or expired credentials.
	ErrUnauthorized = errors.New("google: unauthorised (invalid credentials)")

	// ErrForbidden indicates insufficient permissions.
	ErrForbidden = errors.New("google: forbidden (insufficient permissions)")

	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = errors.New("google: resource not found")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("google: rate limit exceeded")
)

// IsUnauthorized returns true if the error indicates invalid credentials.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) || hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden returns true if the error indicates insufficient permissions.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden) || hasStatus(err, http.StatusForbidden)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || hasStatus(err, http.StatusNotFound)
}

// IsRateLimited returns true if the error indicates rate limiting.
// Drive also reports per-user quota exhaustion as 403 with a rate limit reason.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) || hasStatus(err, http.StatusTooManyRequests) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusForbidden {
		for _, item := range gerr.Errors {
			if item.Reason == "userRateLimitExceeded" || item.Reason == "rateLimitExceeded" {
				return true
			}
		}
	}
	return false
}

func hasStatus(err error, code int) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == code
}

// WrapError converts a Google API error to a connector error that also
// matches the corresponding domain sentinel.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch {
	case IsRateLimited(err):
		return fmt.Errorf("%w: %w", ErrRateLimited, domain.ErrRateLimited)
	case gerr.Code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, domain.ErrAuthInvalid)
	case gerr.Code == http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrForbidden, domain.ErrAuthInvalid)
	case gerr.Code == http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, domain.ErrNotFound)
	default:
		return err
	}
}
