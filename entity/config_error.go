package entity

import (
	"errors"
	"fmt"
)

// ConfigError describes an error which occurs while configuring the [Parser], like an improper suffix.
type ConfigError struct {
	Issue Issue // Issue is the kind of the problem.
	Err   error // Err contains the original error.
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%d: %v", e.Issue, e.Err)
}

// NewConfigError is a factory function for creating a *ConfigError.
func NewConfigError(issue Issue, err error) *ConfigError {
	return &ConfigError{
		Issue: issue,
		Err:   err,
	}
}

func newEmptySuffixError(idx int) error {
	return NewConfigError(IssueEmptySuffix, fmt.Errorf("custom suffix #%d is empty", idx))
}

func newInvalidSuffixError(suffix string, char rune) error {
	return NewConfigError(
		IssueInvalidSuffix,
		fmt.Errorf("custom suffix %q contains %q, expected ASCII letters, digits, '_' or '-'", suffix, char),
	)
}

// ErrNilOption is returned by [NewParser] when one of the options is nil.
var ErrNilOption = errors.New("entity: nil Option")
