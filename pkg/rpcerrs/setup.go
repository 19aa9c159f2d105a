package rpcerrs

import "fmt"

// SetupError represents invalid connection setup parameters.
// It names the offending argument together with the expected and
// observed shape so the caller can fix the call site directly.
type SetupError struct {
	*BaseError
	argument string
	expected string
	actual   string
}

// NewSetupError creates a new setup error for the named argument.
func NewSetupError(
	code ErrorCode,
	argument, expected, actual string,
) *SetupError {
	e := &SetupError{
		BaseError: NewBaseError(
			CategorySetup,
			code,
			fmt.Sprintf(
				"invalid %s: expected %s, got %s",
				argument, expected, actual,
			),
			nil,
		),
		argument: argument,
		expected: expected,
		actual:   actual,
	}
	_ = e.WithMetadata(MetadataKeyArgument, argument)

	return e
}

// Argument returns the name of the invalid setup argument.
func (e *SetupError) Argument() string {
	return e.argument
}

// Expected returns the expected shape of the argument.
func (e *SetupError) Expected() string {
	return e.expected
}

// Actual returns the observed shape of the argument.
func (e *SetupError) Actual() string {
	return e.actual
}
