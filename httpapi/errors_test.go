package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
)

func Test_JSONDomainError_StatusCodeMapping(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "not found",
			err:            core.NotFoundError{Kind: "book", ID: "b1"},
			expectedStatus: http.StatusNotFound,
			expectedCode:   CodeNotFound,
		},
		{
			name:           "already exists",
			err:            core.ErrAlreadyExists,
			expectedStatus: http.StatusConflict,
			expectedCode:   CodeConflict,
		},
		{
			name:           "book already borrowed",
			err:            core.ErrBookAlreadyBorrowed,
			expectedStatus: http.StatusConflict,
			expectedCode:   CodeConflict,
		},
		{
			name:           "loan already returned",
			err:            core.ErrLoanAlreadyReturned,
			expectedStatus: http.StatusConflict,
			expectedCode:   CodeConflict,
		},
		{
			name:           "book on loan",
			err:            core.ErrBookOnLoan,
			expectedStatus: http.StatusConflict,
			expectedCode:   CodeConflict,
		},
		{
			name:           "status conflict",
			err:            core.ErrStatusConflict,
			expectedStatus: http.StatusConflict,
			expectedCode:   CodeConflict,
		},
		{
			name:           "retry exhausted concurrency conflict",
			err:            eventstore.ErrConcurrencyConflict,
			expectedStatus: http.StatusConflict,
			expectedCode:   CodeContention,
		},
		{
			name:           "store not reachable while querying",
			err:            errors.Join(eventstore.ErrQueryingEventsFailed, errors.New("connection refused")),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   CodeStoreUnavailable,
		},
		{
			name:           "store not reachable while appending",
			err:            errors.Join(eventstore.ErrAppendingEventFailed, errors.New("connection refused")),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   CodeStoreUnavailable,
		},
		{
			name:           "unexpected error",
			err:            errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   CodeInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			recorder := httptest.NewRecorder()

			// act
			jsonDomainError(recorder, tc.err)

			// assert
			assert.Equal(t, tc.expectedStatus, recorder.Code)

			var response ErrorResponse
			assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tc.expectedCode, response.Error.Code)
		})
	}
}

func Test_JSONDomainError_ValidationErrorsCarryFieldDetails(t *testing.T) {
	// arrange
	recorder := httptest.NewRecorder()
	err := core.ValidationErrors{
		{Field: "name", Message: "must not be empty"},
		{Field: "email", Message: "must be a valid email address"},
	}

	// act
	jsonDomainError(recorder, err)

	// assert
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, CodeValidationFailed, response.Error.Code)
	assert.Len(t, response.Error.Details, 2)
	assert.Equal(t, "name", response.Error.Details[0].Field)
	assert.Equal(t, "email", response.Error.Details[1].Field)
}
