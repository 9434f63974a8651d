package database

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongPassphrase is returned when an encrypted vault cannot be
	// decrypted with the supplied passphrase.
	ErrWrongPassphrase = errors.New("wrong passphrase")

	// ErrVaultEncrypted is returned when an encrypted vault payload is
	// handed to ImportVault without being decrypted first.
	ErrVaultEncrypted = errors.New("vault is encrypted")
)

// OpError describes a failed database operation on a specific resource.
type OpError struct {
	Op       string
	Resource string
	ID       string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func wrapCategoryErr(op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "category", ID: id, Err: err}
}

func wrapSprintErr(op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "sprint", ID: id, Err: err}
}

func wrapEntryErr(op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "entry", ID: id, Err: err}
}
