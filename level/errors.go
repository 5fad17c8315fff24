package level

import "errors"

// ErrInvalidDocument indicates a level document that cannot be decoded or
// fails validation.
var ErrInvalidDocument = errors.New("level: invalid document")
