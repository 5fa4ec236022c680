package memberborrows_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/features/query/memberborrows"
)

func Test_Project_ListsTheMembersLoansWithBookAndAuthor(t *testing.T) {
	// arrange
	authorID := uuid.New()
	userID := uuid.New()
	bookID := uuid.New()
	openRecordID := uuid.New()
	closedRecordID := uuid.New()
	now := time.Now()

	events := core.DomainEvents{
		givenMemberRegistered(t, userID, "Ada Lovelace", now.Add(-9*time.Hour)),
		givenAuthorAdded(t, authorID, "George Orwell", now.Add(-8*time.Hour)),
		givenBookAdded(t, bookID, authorID, "1984", now.Add(-7*time.Hour)),
		core.BuildBookBorrowed(closedRecordID, bookID, userID, now.Add(-6*time.Hour), now.Add(-6*time.Hour)),
		core.BuildBookReturned(closedRecordID, bookID, userID, now.Add(-4*time.Hour), now.Add(-4*time.Hour)),
		core.BuildBookBorrowed(openRecordID, bookID, userID, now.Add(-2*time.Hour), now.Add(-2*time.Hour)),
	}

	// act
	result, err := memberborrows.Project(events, memberborrows.BuildQuery(userID))

	// assert
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), result.UserID)
	assert.Equal(t, "Ada Lovelace", result.MemberName)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, core.LoanStatusReturned, result.Loans[0].Status)
	assert.Equal(t, core.LoanStatusOnLoan, result.Loans[1].Status)
	assert.Equal(t, "1984", result.Loans[0].BookTitle)
	assert.Equal(t, "George Orwell", result.Loans[0].AuthorName)
}

func Test_Project_Error_WhenMemberNotFound(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name   string
		events core.DomainEvents
	}{
		{
			name:   "never registered",
			events: core.DomainEvents{},
		},
		{
			name: "removed",
			events: core.DomainEvents{
				givenMemberRegistered(t, userID, "Ada Lovelace", now.Add(-2*time.Hour)),
				core.BuildMemberRemoved(userID, now.Add(-1*time.Hour)),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := memberborrows.Project(tc.events, memberborrows.BuildQuery(userID))

			// assert
			var notFoundErr core.NotFoundError
			assert.ErrorAs(t, err, &notFoundErr)
			assert.Equal(t, "member", notFoundErr.Kind)
			assert.Equal(t, userID.String(), notFoundErr.ID)
		})
	}
}

func Test_Project_ExcludesLoansWithIncompleteJoins(t *testing.T) {
	authorID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name   string
		events core.DomainEvents
	}{
		{
			name: "book removed",
			events: func() core.DomainEvents {
				bookID := uuid.New()
				return core.DomainEvents{
					givenMemberRegistered(t, userID, "Ada Lovelace", now.Add(-5*time.Hour)),
					givenAuthorAdded(t, authorID, "George Orwell", now.Add(-4*time.Hour)),
					givenBookAdded(t, bookID, authorID, "1984", now.Add(-3*time.Hour)),
					core.BuildBookBorrowed(uuid.New(), bookID, userID, now.Add(-2*time.Hour), now.Add(-2*time.Hour)),
					core.BuildBookRemoved(bookID, now.Add(-1*time.Hour)),
				}
			}(),
		},
		{
			name: "author never added",
			events: func() core.DomainEvents {
				bookID := uuid.New()
				return core.DomainEvents{
					givenMemberRegistered(t, userID, "Ada Lovelace", now.Add(-3*time.Hour)),
					givenBookAdded(t, bookID, uuid.New(), "Orphaned Book", now.Add(-2*time.Hour)),
					core.BuildBookBorrowed(uuid.New(), bookID, userID, now.Add(-1*time.Hour), now.Add(-1*time.Hour)),
				}
			}(),
		},
		{
			name: "author removed",
			events: func() core.DomainEvents {
				bookID := uuid.New()
				removedAuthorID := uuid.New()
				return core.DomainEvents{
					givenMemberRegistered(t, userID, "Ada Lovelace", now.Add(-5*time.Hour)),
					givenAuthorAdded(t, removedAuthorID, "Gone Author", now.Add(-4*time.Hour)),
					givenBookAdded(t, bookID, removedAuthorID, "1984", now.Add(-3*time.Hour)),
					core.BuildBookBorrowed(uuid.New(), bookID, userID, now.Add(-2*time.Hour), now.Add(-2*time.Hour)),
					core.BuildAuthorRemoved(removedAuthorID, now.Add(-1*time.Hour)),
				}
			}(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result, err := memberborrows.Project(tc.events, memberborrows.BuildQuery(userID))

			// assert
			assert.NoError(t, err)
			assert.Equal(t, 0, result.Count)
		})
	}
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
