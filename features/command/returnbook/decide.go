package returnbook

import (
	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
)

// state represents the current state projected from the event history.
type state struct {
	recordExists bool
	returned     bool
	bookID       core.BookIDString
	userID       core.UserIDString
}

// Decide implements the business logic for returning a book.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A loan record with RecordID
//	WHEN: ReturnBook command is received
//	THEN: BookReturned event is generated, closing the record
//	ERROR: not found if no loan record with this ID exists
//	ERROR: "already returned" if the record already has a returned date
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.RecordID.String())

	if !s.recordExists {
		return core.ErrorDecision(core.NotFoundError{Kind: "loan record", ID: command.RecordID.String()})
	}

	if s.returned {
		return core.ErrorDecision(core.ErrLoanAlreadyReturned)
	}

	bookID, err := uuid.Parse(s.bookID)
	if err != nil {
		return core.ErrorDecision(err)
	}

	userID, err := uuid.Parse(s.userID)
	if err != nil {
		return core.ErrorDecision(err)
	}

	return core.SuccessDecision(
		core.BuildBookReturned(
			command.RecordID,
			bookID,
			userID,
			command.ReturnedDate,
			command.OccurredAt,
		),
	)
}

// project builds the current state by replaying all events from the history.
func project(history core.DomainEvents, recordID string) state {
	var s state

	for _, event := range history {
		switch e := event.(type) {
		case core.BookBorrowed:
			if e.RecordID == recordID {
				s.recordExists = true
				s.bookID = e.BookID
				s.userID = e.UserID
			}

		case core.BookReturned:
			if e.RecordID == recordID {
				s.returned = true
			}
		}
	}

	return s
}

// BuildEventFilter creates the filter for querying all events related to the
// specified loan record which are relevant for this use case.
func BuildEventFilter(recordID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookBorrowedEventType,
			core.BookReturnedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("RecordID", recordID.String()),
		).
		Finalize()
}
