package handlers

import (
	"github.com/gin-gonic/gin"

	"qcheck/internal/shared/constants"
	"qcheck/internal/shared/errors"
)

// currentUserID reads the authenticated user's ID set by the auth
// middleware.
func currentUserID(c *gin.Context) (uint, error) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, errors.NewUnauthorizedError("authentication required")
	}

	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, errors.NewUnauthorizedError("invalid user identity")
	}

	return userID, nil
}

func currentUsername(c *gin.Context) (string, error) {
	username := c.GetString(constants.ContextKeyUsername)
	if username == "" {
		return "", errors.NewUnauthorizedError("authentication required")
	}
	return username, nil
}
