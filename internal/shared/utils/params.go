package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ministryshare/internal/shared/errors"
)

// ParseUintParam parses a path parameter as an unsigned integer ID.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(id), nil
}

// QueryUint parses an optional uint query parameter; returns nil when absent or invalid.
func QueryUint(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil
	}
	v := uint(id)
	return &v
}
