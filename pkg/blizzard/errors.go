package blizzard

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind discriminates the failures this package returns
type ErrorKind int

/*
ErrorKind values
*/
const (
	UnknownKind ErrorKind = iota
	ConfigKind
	ValidationKind
	APIKind
	ParseKind
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigKind:
		return "config"
	case ValidationKind:
		return "validation"
	case APIKind:
		return "api"
	case ParseKind:
		return "parse"
	default:
		return "unknown"
	}
}

type kinded interface {
	Kind() ErrorKind
}

// KindOf walks the wrap chain of err and returns the kind of the first classified error
func KindOf(err error) ErrorKind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}

	return UnknownKind
}

// ConfigError is returned when a client cannot be constructed
type ConfigError struct {
	Region RegionName
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unknown region: %s", e.Region)
}

// Kind - ConfigKind
func (e *ConfigError) Kind() ErrorKind { return ConfigKind }

// ValidationError is returned before any request is made when an argument is not accepted
type ValidationError struct {
	Parameter   string
	Value       string
	Reason      string
	Suggestions []string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s %q: %s", e.Parameter, e.Value, e.Reason)
	if len(e.Suggestions) > 0 {
		msg = fmt.Sprintf("%s (did you mean %s?)", msg, strings.Join(e.Suggestions, ", "))
	}

	return msg
}

// Kind - ValidationKind
func (e *ValidationError) Kind() ErrorKind { return ValidationKind }

// NewValidationError produces a validation error for a single parameter
func NewValidationError(parameter string, value interface{}, reason string) *ValidationError {
	return &ValidationError{Parameter: parameter, Value: fmt.Sprint(value), Reason: reason}
}

func newWhitelistError(parameter string, value string, wList whitelist) *ValidationError {
	err := NewValidationError(parameter, value, "not one of the recognized values")
	err.Suggestions = wList.suggest(value)

	return err
}

// APIError is returned when the api responds with a non-200 status
type APIError struct {
	StatusCode int
	Message    string
	URI        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Kind - APIKind
func (e *APIError) Kind() ErrorKind { return APIKind }

// IsForbidden is true when the api rejected the credential
func (e *APIError) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

// ParseError wraps a json decoding failure of a response body
type ParseError struct {
	URI string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse response from %s: %s", e.URI, e.Err.Error())
}

// Kind - ParseKind
func (e *ParseError) Kind() ErrorKind { return ParseKind }

func (e *ParseError) Unwrap() error { return e.Err }
