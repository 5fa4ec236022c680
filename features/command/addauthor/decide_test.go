package addauthor_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/features/command/addauthor"
)

func Test_Decide_Success_WhenAuthorDoesNotExist(t *testing.T) {
	// arrange
	authorID := uuid.New()
	now := time.Now()

	command, err := addauthor.BuildCommand(authorID, "Ursula K. Le Guin", "Author of Earthsea.", "1929-10-21", now)
	assert.NoError(t, err)

	// act
	result := addauthor.Decide(core.DomainEvents{}, command)

	// assert
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())

	addedEvent, ok := result.Event.(core.AuthorAdded)
	assert.True(t, ok, "Expected AuthorAdded event")
	assert.Equal(t, authorID.String(), addedEvent.AuthorID)
	assert.Equal(t, "Ursula K. Le Guin", addedEvent.Name)
}

func Test_Decide_Success_WhenAuthorWithSameIDWasRemoved(t *testing.T) {
	// arrange
	authorID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		core.BuildAuthorAdded(authorID, "Old Entry", "", "", now.Add(-2*time.Hour)),
		core.BuildAuthorRemoved(authorID, now.Add(-1*time.Hour)),
	}

	command, err := addauthor.BuildCommand(authorID, "New Entry", "", "", now)
	assert.NoError(t, err)

	// act
	result := addauthor.Decide(events, command)

	// assert - the identifier is free again after removal
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())
}

func Test_Decide_Error_WhenAuthorAlreadyExists(t *testing.T) {
	// arrange
	authorID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		core.BuildAuthorAdded(authorID, "Ursula K. Le Guin", "", "", now.Add(-1*time.Hour)),
	}

	command, err := addauthor.BuildCommand(authorID, "Ursula K. Le Guin", "", "", now)
	assert.NoError(t, err)

	// act
	result := addauthor.Decide(events, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrAlreadyExists)
	assert.False(t, result.HasEventToAppend())
}

func Test_BuildCommand_ValidationFailures(t *testing.T) {
	testCases := []struct {
		name          string
		authorName    string
		birthDate     string
		expectedField string
	}{
		{name: "empty name", authorName: "", birthDate: "", expectedField: "name"},
		{name: "malformed birth date", authorName: "Some Author", birthDate: "21.10.1929", expectedField: "birthDate"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := addauthor.BuildCommand(uuid.New(), tc.authorName, "", tc.birthDate, time.Now())

			// assert
			var validationErrs core.ValidationErrors
			assert.ErrorAs(t, err, &validationErrs)
			assert.Equal(t, tc.expectedField, validationErrs[0].Field)
		})
	}
}
