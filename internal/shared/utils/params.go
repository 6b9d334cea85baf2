package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"qcheck/internal/shared/errors"
)

// ParseIDParam parses a numeric entity ID from a URL path parameter.
// entityName is used in error messages (e.g. "checklist", "project").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID: %q", entityName, raw))
	}

	return uint(id), nil
}

// ParseDateQuery parses an optional YYYY-MM-DD query parameter as a UTC
// date. Returns nil when the parameter is absent.
func ParseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid %s: expected YYYY-MM-DD, got %q", name, raw))
	}

	return &t, nil
}
