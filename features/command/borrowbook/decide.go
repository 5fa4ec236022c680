package borrowbook

import (
	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
)

// state represents the current state projected from the event history.
type state struct {
	bookExists   bool
	bookBorrowed bool
	memberExists bool
}

// Decide implements the business logic for borrowing a book.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A book with BookID and member with UserID
//	WHEN: BorrowBook command is received
//	THEN: BookBorrowed event is generated with due date = borrow date + loan period
//	ERROR: not found if the book was never added or has been removed
//	ERROR: not found if the member was never registered or has been removed
//	ERROR: "book is already borrowed" if the book has an open loan record
//
// The already-borrowed case fails loudly even when the open loan belongs to
// the same member.
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID.String(), command.UserID.String())

	if !s.bookExists {
		return core.ErrorDecision(core.NotFoundError{Kind: "book", ID: command.BookID.String()})
	}

	if !s.memberExists {
		return core.ErrorDecision(core.NotFoundError{Kind: "member", ID: command.UserID.String()})
	}

	if s.bookBorrowed {
		return core.ErrorDecision(core.ErrBookAlreadyBorrowed)
	}

	return core.SuccessDecision(
		core.BuildBookBorrowed(
			command.RecordID,
			command.BookID,
			command.UserID,
			command.BorrowedDate,
			command.OccurredAt,
		),
	)
}

// project builds the current state by replaying all events from the history.
func project(history core.DomainEvents, bookID string, userID string) state {
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

		case core.MemberRegistered:
			if e.UserID == userID {
				s.memberExists = true
			}

		case core.MemberRemoved:
			if e.UserID == userID {
				s.memberExists = false
			}
		}
	}

	return s
}

// BuildEventFilter creates the filter for querying all events related to the
// specified book and member which are relevant for this use case.
func BuildEventFilter(bookID uuid.UUID, userID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedEventType,
			core.BookRemovedEventType,
			core.BookBorrowedEventType,
			core.BookReturnedEventType,
			core.MemberRegisteredEventType,
			core.MemberRemovedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("BookID", bookID.String()),
			eventstore.P("UserID", userID.String()),
		).
		Finalize()
}
