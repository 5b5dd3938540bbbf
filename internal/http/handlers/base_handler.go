// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"packmin/internal/ai"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeGenerateError maps pipeline failures onto HTTP statuses. Upstream
// provider failures surface as 502 so callers can tell them apart from
// our own faults.
func writeGenerateError(c *gin.Context, err error) {
	var provErr *ai.ProviderError
	if errors.As(err, &provErr) {
		writeError(c, http.StatusBadGateway, provErr.Error())
		return
	}
	writeError(c, http.StatusInternalServerError, "internal error")
}
