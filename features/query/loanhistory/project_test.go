package loanhistory_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/features/query/loanhistory"
)

func Test_Project_IncludesOpenAndClosedLoans(t *testing.T) {
	// arrange
	authorID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	openRecordID := uuid.New()
	closedRecordID := uuid.New()
	now := time.Now()
	returnedDate := now.Add(-1 * time.Hour)

	events := core.DomainEvents{
		givenAuthorAdded(t, authorID, "George Orwell", now.Add(-9*time.Hour)),
		givenBookAdded(t, bookID, authorID, "1984", now.Add(-8*time.Hour)),
		givenMemberRegistered(t, userID, "Ada Lovelace", now.Add(-7*time.Hour)),
		core.BuildBookBorrowed(closedRecordID, bookID, userID, now.Add(-6*time.Hour), now.Add(-6*time.Hour)),
		core.BuildBookReturned(closedRecordID, bookID, userID, returnedDate, returnedDate),
		core.BuildBookBorrowed(openRecordID, bookID, userID, now.Add(-2*time.Hour), now.Add(-2*time.Hour)),
	}

	// act
	result := loanhistory.Project(events)

	// assert
	assert.Equal(t, 2, result.Count)

	closed := result.Loans[0]
	assert.Equal(t, closedRecordID.String(), closed.RecordID)
	assert.Equal(t, core.LoanStatusReturned, closed.Status)
	assert.Equal(t, returnedDate.Format(core.DateLayout), closed.ReturnedDate)
	assert.Equal(t, "George Orwell", closed.AuthorName)

	open := result.Loans[1]
	assert.Equal(t, openRecordID.String(), open.RecordID)
	assert.Equal(t, core.LoanStatusOnLoan, open.Status)
	assert.Empty(t, open.ReturnedDate)
}

func Test_Project_ExcludesLoansWithIncompleteJoins(t *testing.T) {
	// arrange
	authorID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	recordID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		givenAuthorAdded(t, authorID, "George Orwell", now.Add(-5*time.Hour)),
		givenBookAdded(t, bookID, authorID, "1984", now.Add(-4*time.Hour)),
		givenMemberRegistered(t, userID, "Ada Lovelace", now.Add(-3*time.Hour)),
		core.BuildBookBorrowed(recordID, bookID, userID, now.Add(-2*time.Hour), now.Add(-2*time.Hour)),
		core.BuildBookReturned(recordID, bookID, userID, now.Add(-90*time.Minute), now.Add(-90*time.Minute)),
		core.BuildBookRemoved(bookID, now.Add(-1*time.Hour)),
	}

	// act
	result := loanhistory.Project(events)

	// assert - even a closed loan drops out once its book is gone
	assert.Equal(t, 0, result.Count)
}

func Test_Project_ExcludesLoansWithDanglingAuthorReferences(t *testing.T) {
	// arrange
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		givenBookAdded(t, bookID, uuid.New(), "Orphaned Book", now.Add(-3*time.Hour)),
		givenMemberRegistered(t, userID, "Ada Lovelace", now.Add(-2*time.Hour)),
		core.BuildBookBorrowed(uuid.New(), bookID, userID, now.Add(-1*time.Hour), now.Add(-1*time.Hour)),
	}

	// act
	result := loanhistory.Project(events)

	// assert - the book's author was never added, the join is incomplete
	assert.Equal(t, 0, result.Count)
}

func Test_Project_AppliesLatestBookAuthorAndMemberNames(t *testing.T) {
	// arrange
	authorID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	newTitle := "Nineteen Eighty-Four"
	newAuthorName := "Eric Arthur Blair"
	newMemberName := "Ada King"

	events := core.DomainEvents{
		givenAuthorAdded(t, authorID, "George Orwell", now.Add(-6*time.Hour)),
		givenBookAdded(t, bookID, authorID, "1984", now.Add(-5*time.Hour)),
		givenMemberRegistered(t, userID, "Ada Lovelace", now.Add(-4*time.Hour)),
		core.BuildBookBorrowed(uuid.New(), bookID, userID, now.Add(-3*time.Hour), now.Add(-3*time.Hour)),
		core.BuildBookEdited(bookID, &newTitle, nil, nil, nil, nil, nil, now.Add(-2*time.Hour)),
		core.BuildAuthorEdited(authorID, &newAuthorName, nil, nil, now.Add(-2*time.Hour)),
		core.BuildMemberEdited(userID, &newMemberName, nil, now.Add(-1*time.Hour)),
	}

	// act
	result := loanhistory.Project(events)

	// assert
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, newTitle, result.Loans[0].BookTitle)
	assert.Equal(t, newAuthorName, result.Loans[0].AuthorName)
	assert.Equal(t, newMemberName, result.Loans[0].MemberName)
}

func givenAuthorAdded(t *testing.T, authorID uuid.UUID, name string, at time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildAuthorAdded(authorID, name, "", "", at)
}

func givenBookAdded(t *testing.T, bookID uuid.UUID, authorID uuid.UUID, title string, at time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildBookAdded(bookID, title, authorID.String(), "", "", "", "", at)
}

func givenMemberRegistered(t *testing.T, userID uuid.UUID, name string, at time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildMemberRegistered(userID, name, "member@example.com", "2024-01-15", at)
}
