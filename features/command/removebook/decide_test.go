package removebook_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/features/command/removebook"
)

func Test_Decide_Success_WhenBookExistsAndNotBorrowed(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		givenBookAdded(t, bookID, now.Add(-3*time.Hour)),
	}

	command := removebook.BuildCommand(bookID, now)

	// act
	result := removebook.Decide(events, command)

	// assert
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())

	removedEvent, ok := result.Event.(core.BookRemoved)
	assert.True(t, ok, "Expected BookRemoved event")
	assert.Equal(t, bookID.String(), removedEvent.BookID)
}

func Test_Decide_Success_AfterOpenLoanWasReturned(t *testing.T) {
	// arrange
	bookID := uuid.New()
	userID := uuid.New()
	recordID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		givenBookAdded(t, bookID, now.Add(-5*time.Hour)),
		core.BuildBookBorrowed(recordID, bookID, userID, now.Add(-4*time.Hour), now.Add(-4*time.Hour)),
		core.BuildBookReturned(recordID, bookID, userID, now.Add(-1*time.Hour), now.Add(-1*time.Hour)),
	}

	command := removebook.BuildCommand(bookID, now)

	// act
	result := removebook.Decide(events, command)

	// assert
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())
}

func Test_Decide_Error_WhenBookOnLoan(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		givenBookAdded(t, bookID, now.Add(-3*time.Hour)),
		core.BuildBookBorrowed(uuid.New(), bookID, uuid.New(), now.Add(-1*time.Hour), now.Add(-1*time.Hour)),
	}

	command := removebook.BuildCommand(bookID, now)

	// act
	result := removebook.Decide(events, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrBookOnLoan)
	assert.False(t, result.HasEventToAppend())
}

func Test_Decide_Error_WhenBookNeverAddedOrAlreadyRemoved(t *testing.T) {
	bookID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name   string
		events core.DomainEvents
	}{
		{
			name:   "never added",
			events: core.DomainEvents{},
		},
		{
			name: "already removed",
			events: core.DomainEvents{
				givenBookAdded(t, bookID, now.Add(-2*time.Hour)),
				core.BuildBookRemoved(bookID, now.Add(-1*time.Hour)),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := removebook.BuildCommand(bookID, now)

			// act
			result := removebook.Decide(tc.events, command)

			// assert
			var notFoundErr core.NotFoundError
			assert.ErrorAs(t, result.HasError(), &notFoundErr)
			assert.Equal(t, "book", notFoundErr.Kind)
			assert.False(t, result.HasEventToAppend())
		})
	}
}

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
