package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0)

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.AuthorAddedEventType:
		return unmarshalDomainEvent[core.AuthorAdded](storableEvent.PayloadJSON)

	case core.AuthorEditedEventType:
		return unmarshalDomainEvent[core.AuthorEdited](storableEvent.PayloadJSON)

	case core.AuthorRemovedEventType:
		return unmarshalDomainEvent[core.AuthorRemoved](storableEvent.PayloadJSON)

	case core.BookAddedEventType:
		return unmarshalDomainEvent[core.BookAdded](storableEvent.PayloadJSON)

	case core.BookEditedEventType:
		return unmarshalDomainEvent[core.BookEdited](storableEvent.PayloadJSON)

	case core.BookRemovedEventType:
		return unmarshalDomainEvent[core.BookRemoved](storableEvent.PayloadJSON)

	case core.MemberRegisteredEventType:
		return unmarshalDomainEvent[core.MemberRegistered](storableEvent.PayloadJSON)

	case core.MemberEditedEventType:
		return unmarshalDomainEvent[core.MemberEdited](storableEvent.PayloadJSON)

	case core.MemberRemovedEventType:
		return unmarshalDomainEvent[core.MemberRemoved](storableEvent.PayloadJSON)

	case core.BookBorrowedEventType:
		return unmarshalDomainEvent[core.BookBorrowed](storableEvent.PayloadJSON)

	case core.BookReturnedEventType:
		return unmarshalDomainEvent[core.BookReturned](storableEvent.PayloadJSON)

	default:
		return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
	}
}

func unmarshalDomainEvent[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(E)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload)
	if err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return *payload, nil
}
