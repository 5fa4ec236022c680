package removebook

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

// Decide implements the business logic for removing a book.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A book with BookID
//	WHEN: RemoveBook command is received
//	THEN: BookRemoved event is generated
//	ERROR: not found if the book was never added or has already been removed
//	ERROR: "book is on loan" if the book has an open loan record
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID.String())

	if !s.bookExists {
		return core.ErrorDecision(core.NotFoundError{Kind: "book", ID: command.BookID.String()})
	}

	if s.bookBorrowed {
		return core.ErrorDecision(core.ErrBookOnLoan)
	}

	return core.SuccessDecision(
		core.BuildBookRemoved(command.BookID, command.OccurredAt),
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
// specified book which are relevant for this use case.
func BuildEventFilter(bookID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedEventType,
			core.BookRemovedEventType,
			core.BookBorrowedEventType,
			core.BookReturnedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("BookID", bookID.String()),
		).
		Finalize()
}
