package fallback

import (
	"errors"
	"fmt"

	"github.com/marcelsud/library-console/catalog"
)

/* Policy decides which read failures are answered with fallback data
 * Always: every failure (a reachable backend's 404 included)
 * Unreachable: only connectivity failures
 */
type Policy int

const (
	Always Policy = iota + 1
	Unreachable
)

// String returns the string representation of the policy
func (p Policy) String() string {
	switch p {
	case Always:
		return "always"
	case Unreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// NewPolicy creates a Policy from a string
func NewPolicy(s string) Policy {
	switch s {
	case "always":
		return Always
	case "unreachable":
		return Unreachable
	default:
		return 0
	}
}

// Validate checks if the policy is valid
func (p Policy) Validate() error {
	if p < Always || p > Unreachable {
		return fmt.Errorf("invalid fallback policy: %d", p)
	}
	return nil
}

// Covers reports whether err should be answered with fallback data.
func (p Policy) Covers(err error) bool {
	if err == nil {
		return false
	}
	switch p {
	case Always:
		return true
	case Unreachable:
		return errors.Is(err, catalog.ErrUnreachable)
	default:
		return false
	}
}
