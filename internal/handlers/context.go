package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gymstack/gym-manager/internal/middleware"
)

// actorID returns the authenticated user's id, or nil on
// unauthenticated paths.
func actorID(c *gin.Context) *uint {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
