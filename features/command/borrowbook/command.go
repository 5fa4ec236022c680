package borrowbook

import (
	"time"

	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
)

const (
	commandType = "BorrowBook"
)

// Command represents the intent of a member to borrow a book.
// RecordID identifies the loan record the borrow will create.
type Command struct {
	RecordID     uuid.UUID
	BookID       uuid.UUID
	UserID       uuid.UUID
	BorrowedDate time.Time
	OccurredAt   core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	recordID uuid.UUID,
	bookID uuid.UUID,
	userID uuid.UUID,
	borrowedDate time.Time,
	occurredAt time.Time,
) Command {

	return Command{
		RecordID:     recordID,
		BookID:       bookID,
		UserID:       userID,
		BorrowedDate: borrowedDate,
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}
