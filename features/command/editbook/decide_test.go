package editbook_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/features/command/editbook"
)

func Test_Decide_Success_WithPartialFields(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()
	newTitle := "Revised Title"

	events := core.DomainEvents{
		givenBookAdded(t, bookID, now.Add(-3*time.Hour)),
	}

	command, err := editbook.BuildCommand(bookID, &newTitle, nil, nil, nil, nil, nil, nil, now)
	assert.NoError(t, err)

	// act
	result := editbook.Decide(events, command)

	// assert
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())

	editedEvent, ok := result.Event.(core.BookEdited)
	assert.True(t, ok, "Expected BookEdited event")
	assert.Equal(t, bookID.String(), editedEvent.BookID)
	assert.Equal(t, newTitle, *editedEvent.Title)
	assert.Nil(t, editedEvent.ISBN, "Untouched fields stay nil")
}

func Test_Decide_Success_WhenSuppliedStatusMatchesDerivedStatus(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()
	status := core.BookStatusBorrowed
	newTitle := "Revised Title"

	events := core.DomainEvents{
		givenBookAdded(t, bookID, now.Add(-3*time.Hour)),
		core.BuildBookBorrowed(uuid.New(), bookID, uuid.New(), now.Add(-1*time.Hour), now.Add(-1*time.Hour)),
	}

	command, err := editbook.BuildCommand(bookID, &newTitle, nil, nil, nil, nil, nil, &status, now)
	assert.NoError(t, err)

	// act
	result := editbook.Decide(events, command)

	// assert - a matching status is accepted and dropped from the event
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())
}

func Test_Decide_Error_WhenSuppliedStatusConflictsWithLoanLedger(t *testing.T) {
	bookID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name   string
		events core.DomainEvents
		status string
	}{
		{
			name: "claims available while borrowed",
			events: core.DomainEvents{
				givenBookAdded(t, bookID, now.Add(-3*time.Hour)),
				core.BuildBookBorrowed(uuid.New(), bookID, uuid.New(), now.Add(-1*time.Hour), now.Add(-1*time.Hour)),
			},
			status: core.BookStatusAvailable,
		},
		{
			name: "claims borrowed while available",
			events: core.DomainEvents{
				givenBookAdded(t, bookID, now.Add(-3*time.Hour)),
			},
			status: core.BookStatusBorrowed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command, err := editbook.BuildCommand(bookID, nil, nil, nil, nil, nil, nil, &tc.status, now)
			assert.NoError(t, err)

			// act
			result := editbook.Decide(tc.events, command)

			// assert
			assert.ErrorIs(t, result.HasError(), core.ErrStatusConflict)
			assert.False(t, result.HasEventToAppend())
		})
	}
}

func Test_Decide_Error_WhenBookDoesNotExist(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()
	newTitle := "Revised Title"

	command, err := editbook.BuildCommand(bookID, &newTitle, nil, nil, nil, nil, nil, nil, now)
	assert.NoError(t, err)

	// act
	result := editbook.Decide(core.DomainEvents{}, command)

	// assert
	var notFoundErr core.NotFoundError
	assert.ErrorAs(t, result.HasError(), &notFoundErr)
	assert.Equal(t, "book", notFoundErr.Kind)
	assert.False(t, result.HasEventToAppend())
}

func Test_BuildCommand_RejectsInvalidStatusValue(t *testing.T) {
	// arrange
	bookID := uuid.New()
	status := "lost"

	// act
	_, err := editbook.BuildCommand(bookID, nil, nil, nil, nil, nil, nil, &status, time.Now())

	// assert
	var validationErrs core.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "status", validationErrs[0].Field)
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
