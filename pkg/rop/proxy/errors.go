package proxy

import "errors"

// Failure causes, as carried by a failed resolution.
var (
	ErrNotAccessible     = errors.New(`value has no properties`)
	ErrMethodMissing     = errors.New(`method not found`)
	ErrInvocation        = errors.New(`method invocation failed`)
	ErrIndexOutOfRange   = errors.New(`index out of range`)
	ErrKeyMissing        = errors.New(`key not found`)
	ErrInvalidKey        = errors.New(`invalid key`)
	ErrNotIndexable      = errors.New(`value is not indexable`)
	ErrOperationOnAbsent = errors.New(`operation on nil value`)
	ErrCanceled          = errors.New(`resolution canceled`)
	ErrTypeMismatch      = errors.New(`unexpected value type`)
)
