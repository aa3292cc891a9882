package querycache

import "fmt"

// Key prefixes shared by the handlers and the warm-up job.
const (
	CalendarPrefix = "calendar:"
	RoutesKey      = "routes"
	InvoicePrefix  = "invoice:"
)

func CalendarKey(year, month int) string {
	return fmt.Sprintf("%s%04d-%02d", CalendarPrefix, year, month)
}

func InvoiceKey(driverID, start, end string) string {
	return fmt.Sprintf("%s%s:%s:%s", InvoicePrefix, driverID, start, end)
}
