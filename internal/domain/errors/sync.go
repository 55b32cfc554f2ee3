package errors

import (
	"fmt"
	"strings"

	"profilesync/internal/domain/entity"
	"profilesync/internal/errors"
)

// Kind classifies why a profile mutation or read failed.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindRemoteRejected Kind = "remote_rejected"
	KindAuthExpired    Kind = "auth_expired"
	KindNetwork        Kind = "network"
	KindNotFound       Kind = "not_found"
	KindSessionClosed  Kind = "session_closed"
)

var kindBase = map[Kind]*BaseError{
	KindValidation:     ErrValidationFailed,
	KindRemoteRejected: ErrRemoteRejected,
	KindAuthExpired:    ErrAuthExpired,
	KindNetwork:        ErrNetworkFailure,
	KindNotFound:       ErrNotFound,
	KindSessionClosed:  ErrSessionClosed,
}

// SyncError is the single error object surfaced per failed mutation.
// Fields lists the profile attributes the failure affects; Rule is set for
// client-side validation failures and names the broken rule.
type SyncError struct {
	Kind   Kind
	Msg    string
	Fields []entity.Field
	Rule   string
	Status int
	Err    error
}

// NewSyncError builds a SyncError of the given kind. An empty msg falls back to the
// kind's user-facing message.
func NewSyncError(kind Kind, msg string, cause error) *SyncError {
	if msg == "" {
		if base, ok := kindBase[kind]; ok {
			msg = base.Message()
		}
	}

	return &SyncError{Kind: kind, Msg: msg, Err: cause}
}

// NewValidationError builds a pre-flight rejection naming the broken rule.
func NewValidationError(rule, detail string, fields ...entity.Field) *SyncError {
	msg := rule
	if detail != "" {
		msg = fmt.Sprintf("%s: %s", rule, detail)
	}

	return &SyncError{Kind: KindValidation, Msg: msg, Rule: rule, Fields: fields}
}

// Error implements the error interface
func (e *SyncError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if len(e.Fields) > 0 {
		names := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			names[i] = string(f)
		}
		fmt.Fprintf(&b, " (fields: %s)", strings.Join(names, ", "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	return b.String()
}

// Unwrap exposes the transport or server cause.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// Is lets callers match a SyncError against the predefined BaseError of its kind.
func (e *SyncError) Is(target error) bool {
	base, ok := kindBase[e.Kind]

	return ok && base.Is(target)
}

// WithFields returns a copy of e bound to the given fields.
func (e *SyncError) WithFields(fields ...entity.Field) *SyncError {
	cp := *e
	cp.Fields = fields

	return &cp
}

// HTTPCode returns the HTTP status the failure corresponds to.
func (e *SyncError) HTTPCode() int {
	if e.Status != 0 {
		return e.Status
	}

	return kindBase[e.Kind].HTTPCode()
}

// ErrorCode returns the business error code
func (e *SyncError) ErrorCode() string {
	return kindBase[e.Kind].ErrorCode()
}

// Message returns the user-friendly error message
func (e *SyncError) Message() string {
	return e.Msg
}

// Details returns the broken rule, if any.
func (e *SyncError) Details() string {
	return e.Rule
}

// KindOf extracts the Kind of err, or "" when err is not a SyncError.
func KindOf(err error) Kind {
	var se *SyncError
	if errors.As(err, &se) {
		return se.Kind
	}

	return ""
}

// Retryable reports whether retrying the same request may succeed.
// Auth expiry and server-side rejections are never retried silently.
func Retryable(err error) bool {
	return KindOf(err) == KindNetwork
}
