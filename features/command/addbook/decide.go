package addbook

import (
	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
)

// state represents the current state projected from the event history.
type state struct {
	bookExists bool
}

// Decide implements the business logic for adding a book.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A book with BookID
//	WHEN: AddBook command is received
//	THEN: BookAdded event is generated
//	ERROR: "already exists" if a book with this ID already exists
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID.String())

	if s.bookExists {
		return core.ErrorDecision(core.ErrAlreadyExists)
	}

	return core.SuccessDecision(
		core.BuildBookAdded(
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
		).
		AndAnyPredicateOf(
			eventstore.P("BookID", bookID.String()),
		).
		Finalize()
}
