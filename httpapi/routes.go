package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/libris-app/libris/features/command/addauthor"
	"github.com/libris-app/libris/features/command/addbook"
	"github.com/libris-app/libris/features/command/borrowbook"
	"github.com/libris-app/libris/features/command/editauthor"
	"github.com/libris-app/libris/features/command/editbook"
	"github.com/libris-app/libris/features/command/editmember"
	"github.com/libris-app/libris/features/command/registermember"
	"github.com/libris-app/libris/features/command/removeauthor"
	"github.com/libris-app/libris/features/command/removebook"
	"github.com/libris-app/libris/features/command/removemember"
	"github.com/libris-app/libris/features/command/returnbook"
	"github.com/libris-app/libris/features/query/activeloans"
	"github.com/libris-app/libris/features/query/authors"
	"github.com/libris-app/libris/features/query/catalogbooks"
	"github.com/libris-app/libris/features/query/loanhistory"
	"github.com/libris-app/libris/features/query/memberborrows"
	"github.com/libris-app/libris/features/query/members"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies collects everything the API needs, wired by the caller.
type Dependencies struct {
	AddAuthor      addauthor.CommandHandler
	EditAuthor     editauthor.CommandHandler
	RemoveAuthor   removeauthor.CommandHandler
	AddBook        addbook.CommandHandler
	EditBook       editbook.CommandHandler
	RemoveBook     removebook.CommandHandler
	RegisterMember registermember.CommandHandler
	EditMember     editmember.CommandHandler
	RemoveMember   removemember.CommandHandler
	BorrowBook     borrowbook.CommandHandler
	ReturnBook     returnbook.CommandHandler

	ListAuthors   authors.QueryHandler
	CatalogBooks  catalogbooks.QueryHandler
	ListMembers   members.QueryHandler
	ActiveLoans   activeloans.QueryHandler
	LoanHistory   loanhistory.QueryHandler
	MemberBorrows memberborrows.QueryHandler

	Hub    *Hub
	Pinger Pinger

	// Clock and NewID default to time.Now and uuid.New when nil.
	Clock func() time.Time
	NewID func() uuid.UUID
}

// API is the HTTP surface of the service.
type API struct {
	addAuthor      addauthor.CommandHandler
	editAuthor     editauthor.CommandHandler
	removeAuthor   removeauthor.CommandHandler
	addBook        addbook.CommandHandler
	editBook       editbook.CommandHandler
	removeBook     removebook.CommandHandler
	registerMember registermember.CommandHandler
	editMember     editmember.CommandHandler
	removeMember   removemember.CommandHandler
	borrowBook     borrowbook.CommandHandler
	returnBook     returnbook.CommandHandler

	listAuthors   authors.QueryHandler
	catalogBooks  catalogbooks.QueryHandler
	listMembers   members.QueryHandler
	activeLoans   activeloans.QueryHandler
	loanHistory   loanhistory.QueryHandler
	memberBorrows memberborrows.QueryHandler

	hub    *Hub
	pinger Pinger
	clock  func() time.Time
	newID  func() uuid.UUID
}

// NewAPI creates the API from its dependencies.
func NewAPI(deps Dependencies) *API {
	api := &API{
		addAuthor:      deps.AddAuthor,
		editAuthor:     deps.EditAuthor,
		removeAuthor:   deps.RemoveAuthor,
		addBook:        deps.AddBook,
		editBook:       deps.EditBook,
		removeBook:     deps.RemoveBook,
		registerMember: deps.RegisterMember,
		editMember:     deps.EditMember,
		removeMember:   deps.RemoveMember,
		borrowBook:     deps.BorrowBook,
		returnBook:     deps.ReturnBook,
		listAuthors:    deps.ListAuthors,
		catalogBooks:   deps.CatalogBooks,
		listMembers:    deps.ListMembers,
		activeLoans:    deps.ActiveLoans,
		loanHistory:    deps.LoanHistory,
		memberBorrows:  deps.MemberBorrows,
		hub:            deps.Hub,
		pinger:         deps.Pinger,
		clock:          deps.Clock,
		newID:          deps.NewID,
	}

	if api.clock == nil {
		api.clock = time.Now
	}
	if api.newID == nil {
		api.newID = uuid.New
	}

	return api
}

// Routes builds the request multiplexer with all API routes.
func (a *API) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealth)
	mux.HandleFunc("GET /readyz", a.handleReady)

	mux.HandleFunc("POST /api/authors", a.handleAddAuthor)
	mux.HandleFunc("GET /api/authors", a.handleListAuthors)
	mux.HandleFunc("PATCH /api/authors/{id}", a.handleEditAuthor)
	mux.HandleFunc("DELETE /api/authors/{id}", a.handleRemoveAuthor)

	mux.HandleFunc("POST /api/books", a.handleAddBook)
	mux.HandleFunc("GET /api/books", a.handleListBooks)
	mux.HandleFunc("PATCH /api/books/{id}", a.handleEditBook)
	mux.HandleFunc("DELETE /api/books/{id}", a.handleRemoveBook)

	mux.HandleFunc("POST /api/members", a.handleRegisterMember)
	mux.HandleFunc("GET /api/members", a.handleListMembers)
	mux.HandleFunc("PATCH /api/members/{id}", a.handleEditMember)
	mux.HandleFunc("DELETE /api/members/{id}", a.handleRemoveMember)
	mux.HandleFunc("GET /api/members/{id}/loans", a.handleMemberBorrows)

	mux.HandleFunc("POST /api/loans", a.handleBorrowBook)
	mux.HandleFunc("POST /api/loans/{id}/return", a.handleReturnBook)
	mux.HandleFunc("GET /api/loans/active", a.handleActiveLoans)
	mux.HandleFunc("GET /api/loans", a.handleLoanHistory)

	if a.hub != nil {
		mux.HandleFunc("GET /ws", a.hub.ServeWS)
	}

	return mux
}

func (a *API) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonSuccess(w, map[string]string{"status": "ok"})
}

func (a *API) handleReady(w http.ResponseWriter, r *http.Request) {
	if a.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := a.pinger.Ping(ctx); err != nil {
			jsonError(w, http.StatusServiceUnavailable, CodeStoreUnavailable, "store not reachable", nil)
			return
		}
	}

	jsonSuccess(w, map[string]string{"status": "ready"})
}

func (a *API) publish(changeType string, data any) {
	if a.hub != nil {
		a.hub.Publish(changeType, data)
	}
}

func parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		jsonBadRequest(w, "id must be a UUID")
		return uuid.Nil, false
	}

	return id, true
}
