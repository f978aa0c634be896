package apperrors

import (
	"errors"
	"net/http"

	"taskhub/internal/util/logger"

	"github.com/gin-gonic/gin"
)

// Respond writes the HTTP error response matching the error's kind.
// Unclassified errors surface as a generic 500 without detail leakage.
func Respond(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": Message(err)})
	case errors.Is(err, ErrPermissionDenied):
		ctx.JSON(http.StatusForbidden, gin.H{"error": Message(err)})
	case errors.Is(err, ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": Message(err)})
	case errors.Is(err, ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": Message(err)})
	case errors.Is(err, ErrUnauthenticated):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": Message(err)})
	default:
		logger.GetLogger().Error("internal error", "error", err, "path", ctx.FullPath())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
