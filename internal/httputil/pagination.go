package httputil

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination window for list endpoints. Keystores hold a handful of key
// versions, so the defaults stay small.
const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

// ParsePagination reads and validates the offset and limit query parameters.
// Missing parameters fall back to offset 0 and limit 50; limit is capped at 100.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		return 0, 0, errors.New("invalid offset parameter: must be a non-negative integer")
	}

	limit, err = queryInt(c, "limit", defaultPageLimit)
	if err != nil || limit < 1 || limit > maxPageLimit {
		return 0, 0, errors.New("invalid limit parameter: must be between 1 and 100")
	}

	return offset, limit, nil
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
