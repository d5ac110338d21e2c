package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// pathID parses an integer path parameter. The error text is meant for the
// client.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return id, nil
}
