package handlers

import (
	"fmt"
	"strconv"

	"github.com/windoze95/recipefinder-api/internal/service"
)

// parseToParam parses the optional result count. An empty value means the
// service default.
func parseToParam(param string) (int, error) {
	if param == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("'to' must be an integer")
	}
	if parsed < 1 || parsed > service.MaxResultCount {
		return 0, fmt.Errorf("'to' must be between 1 and %d", service.MaxResultCount)
	}
	return parsed, nil
}
