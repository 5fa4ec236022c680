package activeloans

import (
	"time"

	"github.com/libris-app/libris/core"
)

// LoanInfo represents one open loan record populated with its book,
// the book's author and the borrowing member.
type LoanInfo struct {
	RecordID     core.RecordIDString
	BookID       core.BookIDString
	BookTitle    string
	AuthorName   string
	UserID       core.UserIDString
	MemberName   string
	BorrowedDate string
	DueDate      string
	Status       string
	BorrowedAt   time.Time
}

// ActiveLoans represents the query result containing all open loan records.
type ActiveLoans struct {
	Loans []LoanInfo
	Count int
}
