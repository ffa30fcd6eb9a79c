package workflow

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("missing required fields in signature request")
	ErrNoRoles    = errors.New("document has no roles defined")
)

// RoleMappingError reports a signer whose role name does not exist on the
// document. It aborts the whole batch; no partial invitation is attempted.
type RoleMappingError struct {
	Role string
}

func (e *RoleMappingError) Error() string {
	return fmt.Sprintf("role %q not found in document", e.Role)
}
