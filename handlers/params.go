package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"school-transport-backend/pkg/dateutil"
)

// Clock returns the current time. Handlers take it so tests can pin "today".
type Clock func() time.Time

// monthParams reads ?month=&year=, defaulting to the current month.
func monthParams(c *fiber.Ctx, now time.Time) (int, time.Month, error) {
	year, month := now.Year(), now.Month()

	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1970 || y > 9999 {
			return 0, 0, fmt.Errorf("year must be a four digit number")
		}
		year = y
	}
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("month must be between 1 and 12")
		}
		month = time.Month(m)
	}
	return year, month, nil
}

// dateRangeParams reads and normalizes ?startDate=&endDate=.
func dateRangeParams(c *fiber.Ctx) (string, string, error) {
	start, okStart := dateutil.Normalize(c.Query("startDate"))
	end, okEnd := dateutil.Normalize(c.Query("endDate"))
	if !okStart || !okEnd {
		return "", "", fmt.Errorf("startDate and endDate are required in YYYY-MM-DD format")
	}
	if end < start {
		return "", "", fmt.Errorf("startDate must be on or before endDate")
	}
	return start, end, nil
}
