package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/libris-app/libris/features/command/editmember"
	"github.com/libris-app/libris/features/command/registermember"
	"github.com/libris-app/libris/features/command/removemember"
	"github.com/libris-app/libris/features/query/memberborrows"
)

type registerMemberRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	MemberSince string `json:"memberSince"`
}

type editMemberRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type memberData struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	MemberSince  string    `json:"memberSince"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func (a *API) handleRegisterMember(w http.ResponseWriter, r *http.Request) {
	var req registerMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonBadRequest(w, "invalid JSON body")
		return
	}

	command, err := registermember.BuildCommand(a.newID(), req.Name, req.Email, req.MemberSince, a.clock())
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	event, err := a.registerMember.Handle(r.Context(), command)
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	data := memberData{
		ID:           event.UserID,
		Name:         event.Name,
		Email:        event.Email,
		MemberSince:  event.MemberSince,
		RegisteredAt: event.OccurredAt,
	}

	jsonSuccessCreated(w, data)
	a.publish("member.registered", data)
}

func (a *API) handleEditMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req editMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonBadRequest(w, "invalid JSON body")
		return
	}

	command, err := editmember.BuildCommand(userID, req.Name, req.Email, a.clock())
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	event, err := a.editMember.Handle(r.Context(), command)
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	jsonSuccess(w, map[string]string{"id": event.UserID})
	a.publish("member.edited", map[string]string{"id": event.UserID})
}

func (a *API) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	command := removemember.BuildCommand(userID, a.clock())

	event, err := a.removeMember.Handle(r.Context(), command)
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	jsonSuccessNoContent(w)
	a.publish("member.removed", map[string]string{"id": event.UserID})
}

func (a *API) handleListMembers(w http.ResponseWriter, r *http.Request) {
	result, err := a.listMembers.Handle(r.Context())
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	memberList := make([]memberData, 0, len(result.Members))
	for _, member := range result.Members {
		memberList = append(memberList, memberData{
			ID:           member.UserID,
			Name:         member.Name,
			Email:        member.Email,
			MemberSince:  member.MemberSince,
			RegisteredAt: member.RegisteredAt,
		})
	}

	jsonSuccess(w, map[string]any{
		"members": memberList,
		"count":   result.Count,
	})
}

func (a *API) handleMemberBorrows(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	result, err := a.memberBorrows.Handle(r.Context(), memberborrows.BuildQuery(userID))
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	loanList := make([]loanData, 0, len(result.Loans))
	for _, loan := range result.Loans {
		loanList = append(loanList, loanData{
			RecordID:     loan.RecordID,
			BookID:       loan.BookID,
			BookTitle:    loan.BookTitle,
			AuthorName:   loan.AuthorName,
			UserID:       result.UserID,
			MemberName:   result.MemberName,
			BorrowedDate: loan.BorrowedDate,
			DueDate:      loan.DueDate,
			ReturnedDate: loan.ReturnedDate,
			Status:       loan.Status,
		})
	}

	jsonSuccess(w, map[string]any{
		"memberId":   result.UserID,
		"memberName": result.MemberName,
		"loans":      loanList,
		"count":      result.Count,
	})
}
