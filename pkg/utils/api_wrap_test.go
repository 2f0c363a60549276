package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondSuccessMergesSuccessFlag(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondSuccess(c, struct {
		Total int    `json:"total_questions"`
		Name  string `json:"current_category"`
	}{Total: 12, Name: "all"})

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 12, body["total_questions"])
	assert.Equal(t, "all", body["current_category"])
}

func TestHandleServiceErrorMapsKinds(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: empty", ErrBadRequest), http.StatusBadRequest},
		{fmt.Errorf("%w: question 7", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: missing difficulty", ErrUnprocessable), http.StatusUnprocessableEntity},
		{ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{ErrDatabaseError, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleServiceError(c, tc.err)

		assert.Equal(t, tc.code, w.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, tc.code, body.Error)
		assert.Equal(t, ErrorMessage(tc.code), body.Message)
	}
}

func TestErrorMessagesMatchContract(t *testing.T) {
	assert.Equal(t,
		"Not found!!! : please check your Data or maybe your request is currently not available.",
		ErrorMessage(http.StatusNotFound))
	assert.Equal(t,
		"Unprocessable!!! : The request was well-formed but was unable to be followed due to semantic errors. ",
		ErrorMessage(http.StatusUnprocessableEntity))
	assert.Equal(t, http.StatusText(http.StatusTeapot), ErrorMessage(http.StatusTeapot))
}
