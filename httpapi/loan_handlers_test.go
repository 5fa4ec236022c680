package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_HandleReturnBook_RejectsMalformedBody(t *testing.T) {
	// arrange
	api := NewAPI(Dependencies{})
	mux := api.Routes()

	request := httptest.NewRequest(
		http.MethodPost,
		"/api/loans/"+uuid.New().String()+"/return",
		strings.NewReader(`{"returnedDate":`),
	)
	recorder := httptest.NewRecorder()

	// act
	mux.ServeHTTP(recorder, request)

	// assert
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, CodeBadRequest, response.Error.Code)
}
