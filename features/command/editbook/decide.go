package editbook

import (
	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
)

// state represents the current state projected from the event history.
type state struct {
	bookExists   bool
	bookBorrowed bool
}

// Decide implements the business logic for editing a book.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A book with BookID
//	WHEN: EditBook command is received
//	THEN: BookEdited event is generated with the supplied fields
//	ERROR: not found if the book was never added or has been removed
//	ERROR: status conflict if a supplied status disagrees with the loan ledger
//
// A status value equal to the derived status is accepted and ignored: the
// BookEdited event never carries a status.
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID.String())

	if !s.bookExists {
		return core.ErrorDecision(core.NotFoundError{Kind: "book", ID: command.BookID.String()})
	}

	if command.Status != nil {
		derived := core.BookStatusAvailable
		if s.bookBorrowed {
			derived = core.BookStatusBorrowed
		}

		if *command.Status != derived {
			return core.ErrorDecision(core.ErrStatusConflict)
		}
	}

	return core.SuccessDecision(
		core.BuildBookEdited(
			command.BookID,
			command.Title,
			command.AuthorID,
			command.ISBN,
			command.PublishedDate,
			command.Description,
			command.CoverImage,
			command.OccurredAt,
		),
	)
}

// project builds the current state by replaying all events from the history.
func project(history core.DomainEvents, bookID string) state {
	var s state

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAdded:
			if e.BookID == bookID {
				s.bookExists = true
			}

		case core.BookRemoved:
			if e.BookID == bookID {
				s.bookExists = false
			}

		case core.BookBorrowed:
			if e.BookID == bookID {
				s.bookBorrowed = true
			}

		case core.BookReturned:
			if e.BookID == bookID {
				s.bookBorrowed = false
			}
		}
	}

	return s
}

// BuildEventFilter creates the filter for querying all events related to the
// specified book which are relevant for this use case. Loan events are
// included so a racing borrow or return invalidates the optimistic append.
func BuildEventFilter(bookID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedEventType,
			core.BookEditedEventType,
			core.BookRemovedEventType,
			core.BookBorrowedEventType,
			core.BookReturnedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("BookID", bookID.String()),
		).
		Finalize()
}
