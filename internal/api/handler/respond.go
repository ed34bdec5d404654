package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dana/castmatch/internal/domain"
)

// respondError maps a service error to the JSON error envelope. Input
// problems report as 400; upstream, corruption, and parse failures all
// report as 500 with the error message in the body.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if domain.IsValidation(err) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
