package unit

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNoMatcher is returned for a descriptor with neither Class nor Pred.
	ErrNoMatcher = errors.New("invalid spec, no class or predicate")
	// ErrInvalidName is returned for a malformed token or namespace.
	ErrInvalidName = errors.New("invalid name")
)

var tokenPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// IsValidToken reports whether s can be used as a transformer token.
func IsValidToken(s string) bool {
	return tokenPattern.MatchString(s)
}

// IsValidNamespace reports whether s is a dot-separated list of tokens.
// The empty string is the default namespace and is valid.
func IsValidNamespace(s string) bool {
	if s == "" {
		return true
	}

	for _, part := range strings.Split(s, ".") {
		if !IsValidToken(part) {
			return false
		}
	}

	return true
}

func validateName(token, namespace string) error {
	switch {
	case token == "":
		return fmt.Errorf("%w: missing token", ErrInvalidName)
	case !IsValidToken(token):
		return fmt.Errorf("%w: invalid token %q", ErrInvalidName, token)
	case !IsValidNamespace(namespace):
		return fmt.Errorf("%w: invalid namespace %q for %s", ErrInvalidName, namespace, token)
	}

	return nil
}
