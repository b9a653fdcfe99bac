package errors

// ErrorCode represents a standardized way to categorize different types of errors.
type ErrorCode string

// Base error codes represent the fundamental categories of failures that can
// occur across any software system. These codes provide the foundation layer
// of error classification.
const (
	// ErrorCodeIO represents failures in input/output operations across any
	// system boundary: opening, reading, writing, seeking, syncing, or
	// deleting a segment file.
	ErrorCodeIO ErrorCode = "IO_ERROR"

	// ErrorCodeInvalidInput represents caller errors where the provided
	// data doesn't meet the engine's requirements, e.g. a nil configuration.
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrorCodeInternal represents unexpected failures that don't fit into
	// any other category.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Domain-specific error codes for the key/value engine's closed error
// taxonomy: callers switch on these rather than parsing messages.
const (
	// ErrorCodeKeyNotProvided is returned when Set or Remove is called with
	// an empty key.
	ErrorCodeKeyNotProvided ErrorCode = "KEY_NOT_PROVIDED"

	// ErrorCodeKeyNotFound is returned when Remove is called on a key the
	// key directory has no entry for.
	ErrorCodeKeyNotFound ErrorCode = "KEY_NOT_FOUND"

	// ErrorCodeCorruption is returned when a segment line fails to decode,
	// or decodes to a record inconsistent with the key directory entry
	// that pointed at it.
	ErrorCodeCorruption ErrorCode = "CORRUPTION"
)

// Storage-specific error codes cover filesystem failure modes severe enough
// to warrant specific handling rather than a generic I/O error.
const (
	// ErrorCodePermissionDenied indicates insufficient permissions to access a resource.
	// This is distinct from generic IO errors because it has a specific resolution path:
	// the user needs to adjust file/directory permissions or run with elevated privileges.
	ErrorCodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// ErrorCodeDiskFull indicates that the storage device has run out of space.
	ErrorCodeDiskFull ErrorCode = "DISK_FULL"

	// ErrorCodeFilesystemReadonly indicates that the filesystem is mounted read-only.
	ErrorCodeFilesystemReadonly ErrorCode = "FILESYSTEM_READONLY"
)
