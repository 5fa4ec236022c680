package removeauthor

import (
	"time"

	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
)

const (
	commandType = "RemoveAuthor"
)

// Command represents the intent to remove an author from the catalog.
type Command struct {
	AuthorID   uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(authorID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		AuthorID:   authorID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
