package activeloans_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/features/query/activeloans"
)

func Test_Project_ListsOpenLoansWithBookAuthorAndMember(t *testing.T) {
	// arrange
	authorID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	recordID := uuid.New()
	now := time.Now()
	borrowedDate := now.Add(-48 * time.Hour)

	events := core.DomainEvents{
		givenAuthorAdded(t, authorID, "George Orwell", now.Add(-5*time.Hour)),
		givenBookAdded(t, bookID, authorID, "1984", now.Add(-4*time.Hour)),
		givenMemberRegistered(t, userID, "Ada Lovelace", now.Add(-3*time.Hour)),
		core.BuildBookBorrowed(recordID, bookID, userID, borrowedDate, now.Add(-2*time.Hour)),
	}

	// act
	result := activeloans.Project(events)

	// assert
	assert.Equal(t, 1, result.Count)

	loan := result.Loans[0]
	assert.Equal(t, recordID.String(), loan.RecordID)
	assert.Equal(t, "1984", loan.BookTitle)
	assert.Equal(t, "George Orwell", loan.AuthorName)
	assert.Equal(t, "Ada Lovelace", loan.MemberName)
	assert.Equal(t, borrowedDate.Format(core.DateLayout), loan.BorrowedDate)
	assert.Equal(t, borrowedDate.AddDate(0, 0, core.LoanPeriodDays).Format(core.DateLayout), loan.DueDate)
	assert.Equal(t, core.LoanStatusOnLoan, loan.Status)
}

func Test_Project_ExcludesReturnedLoans(t *testing.T) {
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
		core.BuildBookReturned(recordID, bookID, userID, now.Add(-1*time.Hour), now.Add(-1*time.Hour)),
	}

	// act
	result := activeloans.Project(events)

	// assert
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Loans)
}

func Test_Project_ExcludesLoansWithIncompleteJoins(t *testing.T) {
	// arrange
	authorID := uuid.New()
	removedBookID := uuid.New()
	danglingAuthorBookID := uuid.New()
	bookID := uuid.New()
	removedUserID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		givenAuthorAdded(t, authorID, "George Orwell", now.Add(-9*time.Hour)),
		givenBookAdded(t, removedBookID, authorID, "Removed Book", now.Add(-8*time.Hour)),
		givenBookAdded(t, danglingAuthorBookID, uuid.New(), "Orphaned Book", now.Add(-8*time.Hour)),
		givenBookAdded(t, bookID, authorID, "Kept Book", now.Add(-7*time.Hour)),
		givenMemberRegistered(t, removedUserID, "Gone Member", now.Add(-6*time.Hour)),
		givenMemberRegistered(t, userID, "Kept Member", now.Add(-5*time.Hour)),

		core.BuildBookBorrowed(uuid.New(), removedBookID, userID, now.Add(-4*time.Hour), now.Add(-4*time.Hour)),
		core.BuildBookBorrowed(uuid.New(), danglingAuthorBookID, userID, now.Add(-4*time.Hour), now.Add(-4*time.Hour)),
		core.BuildBookBorrowed(uuid.New(), bookID, removedUserID, now.Add(-3*time.Hour), now.Add(-3*time.Hour)),

		core.BuildBookRemoved(removedBookID, now.Add(-2*time.Hour)),
		core.BuildMemberRemoved(removedUserID, now.Add(-1*time.Hour)),
	}

	// act
	result := activeloans.Project(events)

	// assert - every loan lost one side of its join
	assert.Equal(t, 0, result.Count)
}

func Test_Project_ExcludesLoansOfRemovedAuthors(t *testing.T) {
	// arrange
	authorID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		givenAuthorAdded(t, authorID, "George Orwell", now.Add(-5*time.Hour)),
		givenBookAdded(t, bookID, authorID, "1984", now.Add(-4*time.Hour)),
		givenMemberRegistered(t, userID, "Ada Lovelace", now.Add(-3*time.Hour)),
		core.BuildBookBorrowed(uuid.New(), bookID, userID, now.Add(-2*time.Hour), now.Add(-2*time.Hour)),
		core.BuildAuthorRemoved(authorID, now.Add(-1*time.Hour)),
	}

	// act
	result := activeloans.Project(events)

	// assert
	assert.Equal(t, 0, result.Count)
}

func Test_Project_KeepsLoansInEventOrder(t *testing.T) {
	// arrange
	authorID := uuid.New()
	userID := uuid.New()
	firstBookID := uuid.New()
	secondBookID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		givenAuthorAdded(t, authorID, "George Orwell", now.Add(-9*time.Hour)),
		givenBookAdded(t, firstBookID, authorID, "First", now.Add(-8*time.Hour)),
		givenBookAdded(t, secondBookID, authorID, "Second", now.Add(-8*time.Hour)),
		givenMemberRegistered(t, userID, "Ada Lovelace", now.Add(-7*time.Hour)),
		core.BuildBookBorrowed(uuid.New(), firstBookID, userID, now.Add(-3*time.Hour), now.Add(-3*time.Hour)),
		core.BuildBookBorrowed(uuid.New(), secondBookID, userID, now.Add(-1*time.Hour), now.Add(-1*time.Hour)),
	}

	// act
	result := activeloans.Project(events)

	// assert - loans come out in the order they were appended to the stream
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "First", result.Loans[0].BookTitle)
	assert.Equal(t, "Second", result.Loans[1].BookTitle)
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
