// Package validation runs declarative per-field rule chains against inbound
// JSON payloads.
//
// A Rule lists checks in order. The first failing check produces the field's
// only error; independent fields are still checked, so a payload yields at
// most one error per field, in declaration order.
package validation

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Predicate reports whether a (possibly trimmed) field value is acceptable.
type Predicate func(value string) bool

// Check pairs a predicate with the message reported when it fails.
type Check struct {
	Predicate Predicate
	Message   string
}

var tags = validator.New()

// IsNotEmpty reports whether s has at least one character.
func IsNotEmpty(s string) bool {
	return s != ""
}

// LengthBetween returns a predicate accepting min..max runes, inclusive.
// A negative min or max leaves that side unbounded.
func LengthBetween(min, max int) Predicate {
	return func(s string) bool {
		n := utf8.RuneCountInString(s)
		if min >= 0 && n < min {
			return false
		}
		if max >= 0 && n > max {
			return false
		}
		return true
	}
}

// IsEmail reports whether s is a bare email address.
func IsEmail(s string) bool {
	return tags.Var(s, "email") == nil
}

// IsURL reports whether s is an http, https or ftp URL whose host is a
// fully qualified domain name or an IP address. The scheme may be omitted,
// so "example.com/blog" is accepted; protocol-relative "//host" is not.
func IsURL(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") || strings.HasPrefix(s, "//") {
		return false
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ftp":
	default:
		return false
	}
	host := u.Hostname()
	if host == "" {
		return false
	}
	return tags.Var(host, "fqdn") == nil || tags.Var(host, "ip") == nil
}

// IsResourceID reports whether s is a canonical resource identifier as
// generated by the service layer (lowercase hyphenated UUID).
func IsResourceID(s string) bool {
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return id.String() == strings.ToLower(s) && len(s) == 36
}
