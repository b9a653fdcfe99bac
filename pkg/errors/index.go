package errors

// IndexError provides specialized error handling for key-directory
// operations. It extends the base error system with the context a Get or
// Remove failure needs: which key, and which operation.
type IndexError struct {
	*baseError
	key       string
	operation string
}

// NewIndexError creates a new index-specific error with the provided context.
func NewIndexError(err error, code ErrorCode, msg string) *IndexError {
	return &IndexError{baseError: NewBaseError(err, code, msg)}
}

// Override base error methods to return *IndexError instead of *baseError.

// WithMessage updates the error message while maintaining the IndexError type.
func (ie *IndexError) WithMessage(msg string) *IndexError {
	ie.baseError.WithMessage(msg)
	return ie
}

// WithCode sets the error code while preserving the IndexError type.
func (ie *IndexError) WithCode(code ErrorCode) *IndexError {
	ie.baseError.WithCode(code)
	return ie
}

// WithDetail adds contextual information while maintaining the IndexError type.
func (ie *IndexError) WithDetail(key string, value any) *IndexError {
	ie.baseError.WithDetail(key, value)
	return ie
}

// WithKey records which key was being processed when the error occurred.
func (ie *IndexError) WithKey(key string) *IndexError {
	ie.key = key
	return ie
}

// WithOperation records what index operation was being performed ("Get",
// "Remove", "Recovery", ...).
func (ie *IndexError) WithOperation(operation string) *IndexError {
	ie.operation = operation
	return ie
}

// Key returns the key that was being processed when the error occurred.
func (ie *IndexError) Key() string {
	return ie.key
}

// Operation returns the name of the operation that was being performed.
func (ie *IndexError) Operation() string {
	return ie.operation
}

// NewKeyNotFoundError creates the error Remove returns for a key absent from
// the key directory.
func NewKeyNotFoundError(key string) *IndexError {
	return NewIndexError(nil, ErrorCodeKeyNotFound, "key not found").
		WithKey(key).
		WithOperation("Remove")
}

// NewKeyNotProvidedError creates the error Set/Remove return for an empty key.
func NewKeyNotProvidedError(operation string) *ValidationError {
	return NewValidationError(nil, ErrorCodeKeyNotProvided, "key not provided").
		WithField("key").
		WithRule("required").
		WithDetail("operation", operation)
}
