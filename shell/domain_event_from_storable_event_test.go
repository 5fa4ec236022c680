package shell_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
	"github.com/libris-app/libris/shell"
)

func Test_DomainEventFrom_RoundTripsABorrowEventWithMetadata(t *testing.T) {
	// arrange
	recordID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	original := core.BuildBookBorrowed(recordID, bookID, userID, now, now)
	metadata := shell.BuildEventMetadata(uuid.New(), uuid.New(), uuid.New())

	storableEvent, err := shell.StorableEventFrom(original, metadata)
	assert.NoError(t, err)
	assert.Equal(t, core.BookBorrowedEventType, storableEvent.EventType)

	// act
	restored, err := shell.DomainEventFrom(storableEvent)

	// assert
	assert.NoError(t, err)

	borrowedEvent, ok := restored.(core.BookBorrowed)
	assert.True(t, ok, "Expected BookBorrowed event")
	assert.Equal(t, original.RecordID, borrowedEvent.RecordID)
	assert.Equal(t, original.DueDate, borrowedEvent.DueDate)

	restoredMetadata, err := shell.EventMetadataFrom(storableEvent)
	assert.NoError(t, err)
	assert.Equal(t, metadata, restoredMetadata)
}

func Test_DomainEventFrom_PreservesNilFieldsOfEditEvents(t *testing.T) {
	// arrange
	bookID := uuid.New()
	newTitle := "Nineteen Eighty-Four"
	now := time.Now()

	original := core.BuildBookEdited(bookID, &newTitle, nil, nil, nil, nil, nil, now)

	storableEvent, err := shell.StorableEventWithEmptyMetadataFrom(original)
	assert.NoError(t, err)

	// act
	restored, err := shell.DomainEventFrom(storableEvent)

	// assert
	assert.NoError(t, err)

	editedEvent, ok := restored.(core.BookEdited)
	assert.True(t, ok, "Expected BookEdited event")
	assert.Equal(t, newTitle, *editedEvent.Title)
	assert.Nil(t, editedEvent.ISBN)
	assert.Nil(t, editedEvent.AuthorID)
}

func Test_DomainEventFrom_FailsForUnknownEventType(t *testing.T) {
	// arrange
	storableEvent, err := eventstore.BuildStorableEventWithEmptyMetadata(
		"SomethingUnexpected", time.Now(), []byte(`{}`),
	)
	assert.NoError(t, err)

	// act
	_, err = shell.DomainEventFrom(storableEvent)

	// assert
	assert.Error(t, err)
}

func Test_DomainEventsFrom_KeepsEventOrder(t *testing.T) {
	// arrange
	bookID := uuid.New()
	userID := uuid.New()
	recordID := uuid.New()
	now := time.Now()

	domainEvents := core.DomainEvents{
		core.BuildBookAdded(bookID, "1984", uuid.New().String(), "", "", "", "", now.Add(-2*time.Hour)),
		core.BuildMemberRegistered(userID, "Ada Lovelace", "ada@example.com", "2024-01-15", now.Add(-1*time.Hour)),
		core.BuildBookBorrowed(recordID, bookID, userID, now, now),
	}

	storableEvents := make(eventstore.StorableEvents, 0, len(domainEvents))
	for _, event := range domainEvents {
		storableEvent, buildErr := shell.StorableEventWithEmptyMetadataFrom(event)
		assert.NoError(t, buildErr)
		storableEvents = append(storableEvents, storableEvent)
	}

	// act
	restored, err := shell.DomainEventsFrom(storableEvents)

	// assert
	assert.NoError(t, err)
	assert.Len(t, restored, 3)
	assert.IsType(t, core.BookAdded{}, restored[0])
	assert.IsType(t, core.MemberRegistered{}, restored[1])
	assert.IsType(t, core.BookBorrowed{}, restored[2])
}
