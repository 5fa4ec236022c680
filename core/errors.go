package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBookAlreadyBorrowed is returned when a borrow is attempted on a book
	// with an open loan record. Double borrows fail loudly, they are never a no-op.
	ErrBookAlreadyBorrowed = errors.New("book is already borrowed")

	// ErrLoanAlreadyReturned is returned when a return is attempted on a loan
	// record that already has a returned date.
	ErrLoanAlreadyReturned = errors.New("loan record is already returned")

	// ErrBookOnLoan is returned when a book with an open loan record is deleted.
	ErrBookOnLoan = errors.New("book is on loan")

	// ErrStatusConflict is returned when an edit supplies a status value that
	// disagrees with the status derived from the loan ledger.
	ErrStatusConflict = errors.New("supplied status conflicts with the loan ledger")

	// ErrAlreadyExists is returned when a create is attempted with an
	// identifier that is already in use.
	ErrAlreadyExists = errors.New("already exists")
)

// NotFoundError reports that a referenced entity does not exist (it was never
// created, or it has been removed).
type NotFoundError struct {
	Kind string // "author", "book", "member" or "loan record"
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ValidationError reports a single invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects the field-level validation failures of one command.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, fieldErr := range e {
		messages = append(messages, fieldErr.Error())
	}

	return "validation failed: " + strings.Join(messages, "; ")
}

// AsError returns the collection as an error, or nil when it is empty.
func (e ValidationErrors) AsError() error {
	if len(e) == 0 {
		return nil
	}

	return e
}
