package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request!!!! Please make sure the data you entered is correct",
	http.StatusNotFound:            "Not found!!! : please check your Data or maybe your request is currently not available.",
	http.StatusMethodNotAllowed:    "Method Not Allowed: A request was made of a resource using a request method not supported by that resource ",
	http.StatusUnprocessableEntity: "Unprocessable!!! : The request was well-formed but was unable to be followed due to semantic errors. ",
	http.StatusInternalServerError: "Internal Server Error!!!: Please try again later or reload request. ",
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// ErrorMessage returns the fixed message sent for an error status.
func ErrorMessage(code int) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return http.StatusText(code)
}

// RespondSuccess writes data as a JSON object with "success": true merged
// into its top level. data must marshal to a JSON object.
func RespondSuccess(c *gin.Context, data interface{}) {
	body := map[string]json.RawMessage{}
	if data != nil {
		raw, err := json.Marshal(data)
		if err == nil {
			err = json.Unmarshal(raw, &body)
		}
		if err != nil {
			_ = c.Error(err)
			RespondError(c, http.StatusInternalServerError)
			return
		}
	}
	body["success"] = json.RawMessage("true")
	c.JSON(http.StatusOK, body)
}

func RespondError(c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, ErrorResponse{
		Success: false,
		Error:   code,
		Message: ErrorMessage(code),
	})
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnprocessable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func HandleServiceError(c *gin.Context, err error) {
	_ = c.Error(err)
	RespondError(c, StatusFor(err))
}
