package memberborrows

import (
	"time"

	"github.com/libris-app/libris/core"
)

// LoanInfo represents one loan record of the member populated with its book
// and the book's author. ReturnedDate is empty while the loan is open.
type LoanInfo struct {
	RecordID     core.RecordIDString
	BookID       core.BookIDString
	BookTitle    string
	AuthorName   string
	BorrowedDate string
	DueDate      string
	ReturnedDate string
	Status       string
	BorrowedAt   time.Time
}

// MemberBorrows represents the query result containing the loan records
// of a single member.
type MemberBorrows struct {
	UserID     core.UserIDString
	MemberName string
	Loans      []LoanInfo
	Count      int
}
