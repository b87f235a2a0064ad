// pkg/unattend/errors.go - error taxonomy for answer-file operations.

package unattend

import (
	"errors"
	"fmt"
)

// ErrStructureMissing is reported by operations that require existing
// answer-file structure and do not create it themselves. Match with
// errors.Is.
var ErrStructureMissing = errors.New("required answer file structure is missing")

// ErrInvalidFieldName is reported by SetUserInput when a field name
// cannot serve as an XML element name. Match with errors.Is.
var ErrInvalidFieldName = errors.New("user input field name is not a valid XML name")

// FieldNameError identifies the offending user input field. It matches
// ErrInvalidFieldName under errors.Is.
type FieldNameError struct {
	Name string
}

func (e *FieldNameError) Error() string {
	return fmt.Sprintf("user input field %q is not a valid XML name", e.Name)
}

func (e *FieldNameError) Is(target error) bool {
	return target == ErrInvalidFieldName
}

// StructureError identifies which pass/component a strict operation
// failed to find. It matches ErrStructureMissing under errors.Is.
type StructureError struct {
	Pass      string
	Component string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("answer file has no %q component in the %q pass", e.Component, e.Pass)
}

func (e *StructureError) Is(target error) bool {
	return target == ErrStructureMissing
}
