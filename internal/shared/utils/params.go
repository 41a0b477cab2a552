package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"secretsanta/internal/shared/errors"
)

// ParseUintParam reads a positive numeric path parameter.
// entityName is used in error messages (e.g., "entry").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(value), nil
}
