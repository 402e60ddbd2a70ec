package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/server/http/dto"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/server/http/middleware"
)

// CurrentAccountID extracts authenticated account identifier from context.
func CurrentAccountID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.AccountIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
}
