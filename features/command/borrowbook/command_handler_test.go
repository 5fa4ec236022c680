package borrowbook_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
	"github.com/libris-app/libris/features/command/borrowbook"
	"github.com/libris-app/libris/shell"
)

// conflictingEventStore serves a scripted history per attempt and fails the
// configured number of appends with a concurrency conflict.
type conflictingEventStore struct {
	histories    []core.DomainEvents
	appendErrs   []error
	queryCount   int
	appendCount  int
	lastAppended eventstore.StorableEvent
}

func (s *conflictingEventStore) Query(
	_ context.Context,
	_ eventstore.Filter,
) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint, error) {

	history := s.histories[min(s.queryCount, len(s.histories)-1)]
	s.queryCount++

	storableEvents := make(eventstore.StorableEvents, 0, len(history))
	for _, event := range history {
		storableEvent, err := shell.StorableEventWithEmptyMetadataFrom(event)
		if err != nil {
			return nil, 0, err
		}

		storableEvents = append(storableEvents, storableEvent)
	}

	return storableEvents, eventstore.MaxSequenceNumberUint(len(storableEvents)), nil
}

func (s *conflictingEventStore) Append(
	_ context.Context,
	_ eventstore.Filter,
	_ eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
) error {

	var err error
	if s.appendCount < len(s.appendErrs) {
		err = s.appendErrs[s.appendCount]
	}
	s.appendCount++

	if err == nil {
		s.lastAppended = event
	}

	return err
}

func Test_Handle_LoserOfConcurrentBorrowGetsAlreadyBorrowed(t *testing.T) {
	// arrange
	bookID := uuid.New()
	userID := uuid.New()
	otherUserID := uuid.New()
	now := time.Now()

	baseHistory := core.DomainEvents{
		core.BuildBookAdded(bookID, "1984", uuid.New().String(), "", "", "", "", now.Add(-2*time.Hour)),
		core.BuildMemberRegistered(userID, "Ada Lovelace", "ada@example.com", "2024-01-15", now.Add(-1*time.Hour)),
	}

	historyAfterConflict := append(
		append(core.DomainEvents{}, baseHistory...),
		core.BuildBookBorrowed(uuid.New(), bookID, otherUserID, now, now),
	)

	store := &conflictingEventStore{
		histories:  []core.DomainEvents{baseHistory, historyAfterConflict},
		appendErrs: []error{eventstore.ErrConcurrencyConflict},
	}

	handler := borrowbook.NewCommandHandler(store,
		borrowbook.WithRetryOptions(shell.WithBaseDelay(time.Millisecond)))

	command := borrowbook.BuildCommand(uuid.New(), bookID, userID, now, now)

	// act
	_, err := handler.Handle(context.Background(), command)

	// assert - the re-decision after the lost append surfaces the domain error
	assert.ErrorIs(t, err, core.ErrBookAlreadyBorrowed)
	assert.Equal(t, 2, store.queryCount)
	assert.Equal(t, 1, store.appendCount)
}

func Test_Handle_RetriesAppendAfterTransientConflict(t *testing.T) {
	// arrange
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	history := core.DomainEvents{
		core.BuildBookAdded(bookID, "1984", uuid.New().String(), "", "", "", "", now.Add(-2*time.Hour)),
		core.BuildMemberRegistered(userID, "Ada Lovelace", "ada@example.com", "2024-01-15", now.Add(-1*time.Hour)),
	}

	store := &conflictingEventStore{
		histories:  []core.DomainEvents{history},
		appendErrs: []error{eventstore.ErrConcurrencyConflict, nil},
	}

	handler := borrowbook.NewCommandHandler(store,
		borrowbook.WithRetryOptions(shell.WithBaseDelay(time.Millisecond)))

	recordID := uuid.New()
	command := borrowbook.BuildCommand(recordID, bookID, userID, now, now)

	// act
	event, err := handler.Handle(context.Background(), command)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, recordID.String(), event.RecordID)
	assert.Equal(t, 2, store.queryCount)
	assert.Equal(t, 2, store.appendCount)
	assert.Equal(t, core.BookBorrowedEventType, store.lastAppended.EventType)
}
