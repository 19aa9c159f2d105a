package rpcerrs

// RequestDataError represents an invalid method or params shape.
// It is raised before any bytes are written to the stream.
type RequestDataError struct {
	*BaseError
	field string
}

// NewRequestDataError creates a new request data error for the named field.
func NewRequestDataError(
	code ErrorCode,
	message string,
	field string,
) *RequestDataError {
	e := &RequestDataError{
		BaseError: NewBaseError(CategoryRequest, code, message, nil),
		field:     field,
	}
	_ = e.WithMetadata("field", field)

	return e
}

// Field returns the name of the invalid request field ("method" or "params").
func (e *RequestDataError) Field() string {
	return e.field
}

// WithMethod adds method metadata to the error.
func (e *RequestDataError) WithMethod(method string) *RequestDataError {
	_ = e.WithMetadata(MetadataKeyMethod, method)

	return e
}
