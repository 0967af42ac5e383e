package uri

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/internal/grammar"
)

// Error is a sentinel error of the package.
type Error = errorutil.Error

const (
	// ErrInvalidURI is matched by every parse, build and resolve failure caused by URI syntax.
	ErrInvalidURI Error = "invalid URI"
	// ErrNonAbsoluteBase is returned when a reference is resolved against a base without a scheme.
	ErrNonAbsoluteBase Error = "base URI is not absolute"
	// ErrSchemePolicy is matched by failures reported by scheme hooks.
	ErrSchemePolicy Error = "scheme policy violation"

	// ErrGrammarViolation is matched when a component does not conform to its RFC 3986 rule.
	ErrGrammarViolation = grammar.ErrGrammarViolation
	// ErrMalformedEncoding is matched when a '%' does not start a valid "%" HEXDIG HEXDIG triplet.
	ErrMalformedEncoding = grammar.ErrMalformedEncoding
)

// Component names used in [ComponentError].
const (
	CompScheme   = "scheme"
	CompUserInfo = "userinfo"
	CompHost     = "host"
	CompPort     = "port"
	CompPath     = "path"
	CompQuery    = "query"
	CompFragment = "fragment"
)

// ComponentError describes a single component that failed its grammar.
// Err matches either [ErrGrammarViolation] or [ErrMalformedEncoding].
type ComponentError struct {
	// Component is the name of the failed component, see Comp* constants.
	Component string
	// Offset is the byte offset of the first offending character.
	// It is relative to the parsed input for [Parse] and to the component value for [Builder.Build].
	Offset int
	Err    error
}

func (e *ComponentError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("invalid %s at offset %d: %v", e.Component, e.Offset, e.Err)
}

func (e *ComponentError) Unwrap() error { return e.Err }

func (*ComponentError) Grammar() bool { return true }

func newGrammarErr(comp string, off int, format string, args ...any) *ComponentError {
	return &ComponentError{
		Component: comp,
		Offset:    off,
		Err:       errorutil.NewWrapperError(ErrGrammarViolation, append([]any{format}, args...)...),
	}
}

func newEncodingErr(comp string, off int) *ComponentError {
	return &ComponentError{
		Component: comp,
		Offset:    off,
		Err:       &grammar.EncodingError{Offset: off},
	}
}

// InvalidURIError is returned when the input can not be turned into a [URI].
// It wraps the first failure found.
type InvalidURIError struct {
	Input string
	Err   error
}

func (e *InvalidURIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s: %v", ErrInvalidURI, strconv.Quote(e.Input), e.Err)
}

func (e *InvalidURIError) Unwrap() error { return e.Err }

func (*InvalidURIError) Is(target error) bool { return target == ErrInvalidURI }

func (*InvalidURIError) Grammar() bool { return true }

// SchemePolicyError is returned when a scheme [Hook] rejects a URI.
// It never matches [ErrInvalidURI]: a hook error matching [ErrInvalidURI]
// is kept in Err but is not unwrapped.
type SchemePolicyError struct {
	Scheme string
	Err    error
}

func (e *SchemePolicyError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s for %q: %v", ErrSchemePolicy, e.Scheme, e.Err)
}

func (e *SchemePolicyError) Unwrap() error {
	if errors.Is(e.Err, ErrInvalidURI) {
		return nil
	}
	return e.Err
}

func (*SchemePolicyError) Is(target error) bool { return target == ErrSchemePolicy }
