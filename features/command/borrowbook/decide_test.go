package borrowbook_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/features/command/borrowbook"
)

func Test_Decide_Success_WhenBookAvailableAndMemberRegistered(t *testing.T) {
	// arrange
	bookID := uuid.New()
	userID := uuid.New()
	recordID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		givenBookAdded(t, bookID, now.Add(-3*time.Hour)),
		givenMemberRegistered(t, userID, now.Add(-2*time.Hour)),
	}

	command := borrowbook.BuildCommand(recordID, bookID, userID, now, now)

	// act
	result := borrowbook.Decide(events, command)

	// assert
	assertSuccessDecision(t, result, recordID, bookID, userID)
}

func Test_Decide_Success_DueDateIsBorrowDatePlusLoanPeriod(t *testing.T) {
	// arrange
	bookID := uuid.New()
	userID := uuid.New()
	recordID := uuid.New()
	borrowedDate := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	now := time.Now()

	events := core.DomainEvents{
		givenBookAdded(t, bookID, now.Add(-3*time.Hour)),
		givenMemberRegistered(t, userID, now.Add(-2*time.Hour)),
	}

	command := borrowbook.BuildCommand(recordID, bookID, userID, borrowedDate, now)

	// act
	result := borrowbook.Decide(events, command)

	// assert
	assert.NoError(t, result.HasError())

	borrowedEvent, ok := result.Event.(core.BookBorrowed)
	assert.True(t, ok, "Expected BookBorrowed event")
	assert.Equal(t, "2026-03-10", borrowedEvent.BorrowedDate)
	assert.Equal(t, "2026-03-24", borrowedEvent.DueDate)
}

func Test_Decide_Success_AfterBookReturnedCanBorrowAgain(t *testing.T) {
	// arrange
	bookID := uuid.New()
	userID := uuid.New()
	recordID := uuid.New()
	previousRecordID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		givenBookAdded(t, bookID, now.Add(-5*time.Hour)),
		givenMemberRegistered(t, userID, now.Add(-4*time.Hour)),
		givenBookBorrowed(t, previousRecordID, bookID, userID, now.Add(-3*time.Hour)),
		givenBookReturned(t, previousRecordID, bookID, userID, now.Add(-1*time.Hour)),
	}

	command := borrowbook.BuildCommand(recordID, bookID, userID, now, now)

	// act
	result := borrowbook.Decide(events, command)

	// assert
	assertSuccessDecision(t, result, recordID, bookID, userID)
}

func Test_Decide_Error_WhenBookAlreadyBorrowed_EvenBySameMember(t *testing.T) {
	// arrange
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		givenBookAdded(t, bookID, now.Add(-3*time.Hour)),
		givenMemberRegistered(t, userID, now.Add(-2*time.Hour)),
		givenBookBorrowed(t, uuid.New(), bookID, userID, now.Add(-1*time.Hour)),
	}

	command := borrowbook.BuildCommand(uuid.New(), bookID, userID, now, now)

	// act
	result := borrowbook.Decide(events, command)

	// assert - a repeated borrow is a loud error, never a no-op
	assert.ErrorIs(t, result.HasError(), core.ErrBookAlreadyBorrowed)
	assert.False(t, result.HasEventToAppend())
}

func Test_Decide_BusinessErrors(t *testing.T) {
	bookID := uuid.New()
	userID := uuid.New()
	otherUserID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name        string
		events      core.DomainEvents
		expectedErr error
	}{
		{
			name: "book never added",
			events: core.DomainEvents{
				givenMemberRegistered(t, userID, now),
			},
			expectedErr: core.NotFoundError{Kind: "book", ID: bookID.String()},
		},
		{
			name: "book removed",
			events: core.DomainEvents{
				givenBookAdded(t, bookID, now.Add(-2*time.Hour)),
				givenBookRemoved(t, bookID, now.Add(-1*time.Hour)),
				givenMemberRegistered(t, userID, now),
			},
			expectedErr: core.NotFoundError{Kind: "book", ID: bookID.String()},
		},
		{
			name: "member never registered",
			events: core.DomainEvents{
				givenBookAdded(t, bookID, now),
			},
			expectedErr: core.NotFoundError{Kind: "member", ID: userID.String()},
		},
		{
			name: "member removed",
			events: core.DomainEvents{
				givenBookAdded(t, bookID, now.Add(-2*time.Hour)),
				givenMemberRegistered(t, userID, now.Add(-2*time.Hour)),
				givenMemberRemoved(t, userID, now.Add(-1*time.Hour)),
			},
			expectedErr: core.NotFoundError{Kind: "member", ID: userID.String()},
		},
		{
			name: "book borrowed by another member",
			events: core.DomainEvents{
				givenBookAdded(t, bookID, now.Add(-3*time.Hour)),
				givenMemberRegistered(t, userID, now.Add(-2*time.Hour)),
				givenMemberRegistered(t, otherUserID, now.Add(-2*time.Hour)),
				givenBookBorrowed(t, uuid.New(), bookID, otherUserID, now.Add(-1*time.Hour)),
			},
			expectedErr: core.ErrBookAlreadyBorrowed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := borrowbook.BuildCommand(uuid.New(), bookID, userID, now, now)

			// act
			result := borrowbook.Decide(tc.events, command)

			// assert
			assert.Error(t, result.HasError())
			assert.Equal(t, tc.expectedErr.Error(), result.HasError().Error())
			assert.False(t, result.HasEventToAppend())
		})
	}
}

func Test_Decide_ComplexState_BookAddedRemovedAddedAgain(t *testing.T) {
	// arrange
	bookID := uuid.New()
	userID := uuid.New()
	recordID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		givenBookAdded(t, bookID, now.Add(-5*time.Hour)),
		givenBookRemoved(t, bookID, now.Add(-4*time.Hour)),
		givenBookAdded(t, bookID, now.Add(-3*time.Hour)),
		givenMemberRegistered(t, userID, now.Add(-2*time.Hour)),
	}

	command := borrowbook.BuildCommand(recordID, bookID, userID, now, now)

	// act
	result := borrowbook.Decide(events, command)

	// assert - the last add wins
	assertSuccessDecision(t, result, recordID, bookID, userID)
}

// Test helper functions with t.Helper() for better error reporting

func givenBookAdded(t *testing.T, bookID uuid.UUID, at time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildBookAdded(
		bookID,
		"Test Book Title",
		uuid.New().String(),
		"978-1-098-10013-1",
		"2021-05-01",
		"Test description",
		"",
		at,
	)
}

func givenBookRemoved(t *testing.T, bookID uuid.UUID, at time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildBookRemoved(bookID, at)
}

func givenMemberRegistered(t *testing.T, userID uuid.UUID, at time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildMemberRegistered(
		userID,
		"Test Member Name",
		"member@example.com",
		"2024-01-15",
		at,
	)
}

func givenMemberRemoved(t *testing.T, userID uuid.UUID, at time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildMemberRemoved(userID, at)
}

func givenBookBorrowed(t *testing.T, recordID, bookID, userID uuid.UUID, at time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildBookBorrowed(recordID, bookID, userID, at, at)
}

func givenBookReturned(t *testing.T, recordID, bookID, userID uuid.UUID, at time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildBookReturned(recordID, bookID, userID, at, at)
}

func assertSuccessDecision(t *testing.T, result core.DecisionResult, recordID, bookID, userID uuid.UUID) {
	t.Helper()
	assert.NoError(t, result.HasError(), "Expected no error for success decision")
	assert.True(t, result.HasEventToAppend(), "Expected event to be generated")

	borrowedEvent, ok := result.Event.(core.BookBorrowed)
	assert.True(t, ok, "Expected BookBorrowed event")
	assert.Equal(t, recordID.String(), borrowedEvent.RecordID, "Event should have correct RecordID")
	assert.Equal(t, bookID.String(), borrowedEvent.BookID, "Event should have correct BookID")
	assert.Equal(t, userID.String(), borrowedEvent.UserID, "Event should have correct UserID")
}
