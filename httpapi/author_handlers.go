package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/libris-app/libris/features/command/addauthor"
	"github.com/libris-app/libris/features/command/editauthor"
	"github.com/libris-app/libris/features/command/removeauthor"
)

type addAuthorRequest struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	BirthDate string `json:"birthDate"`
}

type editAuthorRequest struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	BirthDate *string `json:"birthDate"`
}

type authorData struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio,omitempty"`
	BirthDate string    `json:"birthDate,omitempty"`
	AddedAt   time.Time `json:"addedAt"`
}

func (a *API) handleAddAuthor(w http.ResponseWriter, r *http.Request) {
	var req addAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonBadRequest(w, "invalid JSON body")
		return
	}

	command, err := addauthor.BuildCommand(a.newID(), req.Name, req.Bio, req.BirthDate, a.clock())
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	event, err := a.addAuthor.Handle(r.Context(), command)
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	data := authorData{
		ID:        event.AuthorID,
		Name:      event.Name,
		Bio:       event.Bio,
		BirthDate: event.BirthDate,
		AddedAt:   event.OccurredAt,
	}

	jsonSuccessCreated(w, data)
	a.publish("author.added", data)
}

func (a *API) handleEditAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req editAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonBadRequest(w, "invalid JSON body")
		return
	}

	command, err := editauthor.BuildCommand(authorID, req.Name, req.Bio, req.BirthDate, a.clock())
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	event, err := a.editAuthor.Handle(r.Context(), command)
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	jsonSuccess(w, map[string]string{"id": event.AuthorID})
	a.publish("author.edited", map[string]string{"id": event.AuthorID})
}

func (a *API) handleRemoveAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	command := removeauthor.BuildCommand(authorID, a.clock())

	event, err := a.removeAuthor.Handle(r.Context(), command)
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	jsonSuccessNoContent(w)
	a.publish("author.removed", map[string]string{"id": event.AuthorID})
}

func (a *API) handleListAuthors(w http.ResponseWriter, r *http.Request) {
	result, err := a.listAuthors.Handle(r.Context())
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	authorList := make([]authorData, 0, len(result.Authors))
	for _, author := range result.Authors {
		authorList = append(authorList, authorData{
			ID:        author.AuthorID,
			Name:      author.Name,
			Bio:       author.Bio,
			BirthDate: author.BirthDate,
			AddedAt:   author.AddedAt,
		})
	}

	jsonSuccess(w, map[string]any{
		"authors": authorList,
		"count":   result.Count,
	})
}
