package returnbook

import (
	"time"

	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
)

const (
	commandType = "ReturnBook"
)

// Command represents the intent to return a borrowed book, closing the loan
// record identified by RecordID.
type Command struct {
	RecordID     uuid.UUID
	ReturnedDate time.Time
	OccurredAt   core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(recordID uuid.UUID, returnedDate time.Time, occurredAt time.Time) Command {
	return Command{
		RecordID:     recordID,
		ReturnedDate: returnedDate,
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}
