package engine

import "fmt"

// ValidationError reports input rejected before any state was touched.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

// NotFoundError reports a reference to a record that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// ConflictError reports an operation that would break a live constraint,
// such as deleting the active sprint or reusing a category name.
type ConflictError struct {
	Msg string
}

func (e ConflictError) Error() string {
	return e.Msg
}
