package helpers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// QueryInt reads an integer query parameter, returning def when it is absent.
// Values outside [lo, hi] are rejected.
func QueryInt(c *gin.Context, key string, def, lo, hi int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%s must be between %d and %d", key, lo, hi)
	}
	return n, nil
}
