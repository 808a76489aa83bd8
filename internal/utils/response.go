package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// SendAppError renders any error as the API's error body. AppError
// carries its own status; anything else is an internal error.
func SendAppError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal Server Error"

	var appErr *AppError
	if errors.As(err, &appErr) {
		status = appErr.Status
		message = appErr.Message
	}

	c.JSON(status, ErrorResponse{Error: ErrorBody{Message: message, Status: status}})
}

func SendNotFoundRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error: ErrorBody{Message: "Not Found", Status: http.StatusNotFound},
	})
}
