// internal/utils/pagination.go
package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MRafay620/ecommerce-api/internal/apperrors"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// GetLimitOffset reads limit/offset query parameters. Malformed or
// out-of-range values are rejected, not silently adjusted.
func GetLimitOffset(c *gin.Context) (limit, offset int, err error) {
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit < 1 || limit > MaxLimit {
		return 0, 0, apperrors.Validation(
			fmt.Sprintf("limit must be an integer between 1 and %d", MaxLimit), nil)
	}

	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, apperrors.Validation("offset must be a non-negative integer", nil)
	}

	return limit, offset, nil
}

// GetUintParam parses a numeric path parameter.
func GetUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}

// GetUintQuery parses an optional numeric query parameter.
func GetUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, apperrors.Validation(
			fmt.Sprintf("%s must be a positive integer", name), nil)
	}
	parsed := uint(value)
	return &parsed, nil
}

// GetTimeQuery parses an optional timestamp query parameter, accepting
// RFC 3339 or a bare calendar date.
func GetTimeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			parsed = parsed.UTC()
			return &parsed, nil
		}
	}
	return nil, apperrors.Validation(
		fmt.Sprintf("%s must be an RFC 3339 timestamp or YYYY-MM-DD date", name), nil)
}

// GetBoolQuery parses an optional boolean query parameter.
func GetBoolQuery(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperrors.Validation(
			fmt.Sprintf("%s must be a boolean", name), nil)
	}
	return &value, nil
}

// GetStringQuery returns a pointer to a non-empty query parameter.
func GetStringQuery(c *gin.Context, name string) *string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}
