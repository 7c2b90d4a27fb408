package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zathu/shopscrape/internal/server/http/dto"
)

// abortWithError writes the uniform JSON error body and stops the chain.
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}
