package services

import (
	"errors"
	"strings"
)

// Kind classifies a service failure. Controllers are the only layer that
// translates kinds into HTTP status codes.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindUnauthorized
	// KindNoMatch marks a criteria search that found zero rows. The envelope
	// contract treats that as an error result, not an empty list.
	KindNoMatch
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error     { return &Error{Kind: KindConflict, Message: msg} }
func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }
func NoMatch(msg string) *Error      { return &Error{Kind: KindNoMatch, Message: msg} }

// KindOf returns the failure kind, defaulting to internal for plain errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// isUniqueViolation sniffs driver messages for unique-constraint failures,
// covering both SQLite and Postgres wording.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	l := strings.ToLower(err.Error())
	return strings.Contains(l, "unique") || strings.Contains(l, "duplicate key")
}

// isMissingTable reports whether the storage error means the table has not
// been migrated yet. Application-status lookups treat that as "no profile
// submitted" rather than a failure.
func isMissingTable(err error) bool {
	if err == nil {
		return false
	}
	l := strings.ToLower(err.Error())
	return strings.Contains(l, "no such table") ||
		strings.Contains(l, "does not exist") ||
		strings.Contains(l, "42p01")
}
