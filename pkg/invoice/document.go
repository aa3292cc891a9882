package invoice

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"school-transport-backend/models"
	"school-transport-backend/pkg/dateutil"
)

// Document is the view model of the printable invoice. Every amount is
// already formatted.
type Document struct {
	Title     string
	Reference string
	Identity  Identity

	RouteHeaders    []string
	Weeks           []DocumentWeek
	RegularSubtotal string

	Temporary         []DocumentTempDate
	TemporarySubtotal string

	Services         []DocumentService
	ServicesSubtotal string

	ShowExtraJobs     bool
	ExtraJobs         []DocumentExtraJob
	ExtraJobsSubtotal string

	PeriodFrom  string
	PeriodTo    string
	TotalPay    string
	Signer      string
	GeneratedOn string
	QRCode      template.URL
}

type Identity struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

type DocumentWeek struct {
	Number   int
	Rows     []DocumentRow
	Subtotal string
}

// DocumentRow has exactly one cell per route header.
type DocumentRow struct {
	Day    string
	Date   string
	Routes []DocumentRouteCell
}

type DocumentRouteCell struct {
	Name string
	Fare string
}

// DocumentTempDate groups the temporary routes of one date; the template
// spans the date cell across the group's rows.
type DocumentTempDate struct {
	Day  string
	Date string
	Rows []DocumentTempRow
}

type DocumentTempRow struct {
	Route     string
	TimeOfDay string
	Fare      string
}

type DocumentService struct {
	Day     string
	Date    string
	RouteNo string
	Label   string
	Time    string
	Notes   string
	Charge  string
}

type DocumentExtraJob struct {
	Date        string
	Description string
	Fare        string
}

const displayDate = "02/01/2006"

// formatDate prints a loosely typed date as DD/MM/YYYY, or the raw value when
// it carries no calendar day.
func formatDate(v any) string {
	t, ok := dateutil.Parse(v)
	if !ok {
		if v == nil {
			return ""
		}
		return fmt.Sprint(v)
	}
	return t.Format(displayDate)
}

func weekdayName(day string, date any) string {
	if day != "" {
		return day
	}
	if t, ok := dateutil.Parse(date); ok {
		return t.Weekday().String()
	}
	return ""
}

func routeHeaders(n int) []string {
	headers := make([]string, n)
	for i := range headers {
		headers[i] = fmt.Sprintf("Route %d", i+1)
	}
	return headers
}

func routeCell(r *models.RouteFare) DocumentRouteCell {
	if r == nil || (strings.TrimSpace(r.Name) == "" && Coerce(r.Fare).IsZero()) {
		return DocumentRouteCell{Name: "-", Fare: "-"}
	}
	return DocumentRouteCell{Name: r.Name, Fare: FormatMoney(Coerce(r.Fare))}
}

// GeneratedDocument builds the view model of a server-generated invoice.
// Section subtotals and the grand total are printed as supplied; only absent
// figures are derived from the line items.
func GeneratedDocument(gen *models.GeneratedInvoice, generatedAt time.Time) Document {
	doc := Document{
		Title: "Driver Invoice",
		Identity: Identity{
			Name:    gen.Driver.Name,
			Phone:   gen.Driver.PhoneNumber,
			Email:   gen.Driver.Email,
			Address: gen.Driver.Address,
		},
		PeriodFrom:  formatDate(gen.OriginalDateRange.StartDate),
		PeriodTo:    formatDate(gen.OriginalDateRange.EndDate),
		Signer:      gen.Driver.Name,
		GeneratedOn: generatedAt.Format(displayDate),
	}
	if !gen.ID.IsZero() {
		doc.Reference = gen.ID.Hex()
	}

	columns := 1
	if HasSecondRoute(gen.RegularAssignments.Weeks) {
		columns = 2
	}
	doc.RouteHeaders = routeHeaders(columns)
	doc.Weeks = regularWeeks(gen, columns)

	regular := RegularTotal(gen.RegularAssignments.Weeks)
	temporary := TemporaryTotal(gen.TemporaryAssignments.Days)
	special := SpecialTotal(gen.SpecialServices.Services)

	doc.RegularSubtotal = FormatMoney(supplied(gen.RegularAssignments.TotalPay, regular))
	doc.Temporary = temporaryDates(gen.TemporaryAssignments.Days)
	doc.TemporarySubtotal = FormatMoney(supplied(gen.TemporaryAssignments.TotalPay, temporary))
	doc.Services = serviceLines(gen.SpecialServices.Services)
	doc.ServicesSubtotal = FormatMoney(supplied(gen.SpecialServices.TotalPay, special))
	doc.TotalPay = FormatMoney(supplied(gen.TotalPay, regular.Add(temporary).Add(special)))
	return doc
}

// regularWeeks materializes the full date range when it is known, otherwise
// prints the supplied weeks as they are.
func regularWeeks(gen *models.GeneratedInvoice, columns int) []DocumentWeek {
	var weeks []DocumentWeek

	materialized, err := MaterializeRange(gen.OriginalDateRange.StartDate, gen.OriginalDateRange.EndDate, gen.RegularAssignments.Weeks)
	if err == nil {
		for _, w := range materialized {
			week := DocumentWeek{Number: w.WeekNumber}
			subtotal := decimal.Zero
			for _, d := range w.Days {
				week.Rows = append(week.Rows, regularRow(d.Day, d.Date, d.Route1, d.Route2, columns))
				subtotal = subtotal.Add(optionalFare(d.Route1)).Add(optionalFare(d.Route2))
			}
			week.Subtotal = FormatMoney(subtotal)
			weeks = append(weeks, week)
		}
		return weeks
	}

	for i, w := range gen.RegularAssignments.Weeks {
		number := w.WeekNumber
		if number == 0 {
			number = i + 1
		}
		week := DocumentWeek{Number: number}
		subtotal := decimal.Zero
		for _, d := range w.Days {
			week.Rows = append(week.Rows, regularRow(d.Day, d.Date, d.Route1, d.Route2, columns))
			subtotal = subtotal.Add(optionalFare(d.Route1)).Add(optionalFare(d.Route2))
		}
		week.Subtotal = FormatMoney(subtotal)
		weeks = append(weeks, week)
	}
	return weeks
}

func regularRow(day string, date any, route1, route2 *models.RouteFare, columns int) DocumentRow {
	row := DocumentRow{Day: weekdayName(day, date), Date: formatDate(date)}
	row.Routes = append(row.Routes, routeCell(route1))
	if columns > 1 {
		row.Routes = append(row.Routes, routeCell(route2))
	}
	return row
}

// temporaryDates groups temporary routes by calendar day in date order.
func temporaryDates(days []models.TemporaryDay) []DocumentTempDate {
	groups := make(map[string]*DocumentTempDate)
	var keys []string
	for _, d := range days {
		key, ok := dateutil.Normalize(d.Date)
		if !ok {
			key = fmt.Sprint(d.Date)
		}
		g, seen := groups[key]
		if !seen {
			g = &DocumentTempDate{Day: weekdayName(d.Day, d.Date), Date: formatDate(d.Date)}
			groups[key] = g
			keys = append(keys, key)
		}
		for _, r := range d.Routes {
			g.Rows = append(g.Rows, DocumentTempRow{
				Route:     r.Name,
				TimeOfDay: string(r.TimeOfDay),
				Fare:      FormatMoney(Coerce(r.Fare)),
			})
		}
	}
	sort.Strings(keys)

	out := make([]DocumentTempDate, 0, len(keys))
	for _, k := range keys {
		if len(groups[k].Rows) > 0 {
			out = append(out, *groups[k])
		}
	}
	return out
}

func serviceLines(lines []models.SpecialServiceLine) []DocumentService {
	out := make([]DocumentService, 0, len(lines))
	for _, l := range lines {
		out = append(out, DocumentService{
			Day:     weekdayName(l.Day, l.Date),
			Date:    formatDate(l.Date),
			RouteNo: l.RouteNo,
			Label:   models.ServiceTypeLabel(l.ServiceType),
			Time:    l.SpecialTime,
			Notes:   l.Notes,
			Charge:  FormatMoney(Coerce(l.AdditionalCharge)),
		})
	}
	return out
}

// DraftDocument builds the view model of a submitted draft. Drafts carry no
// trusted totals, so every figure is derived from the fares.
func DraftDocument(d *models.InvoiceDraft, generatedAt time.Time) Document {
	title := "Driver Invoice"
	reference := "Driver No. " + d.Identifier()
	if d.UserType == models.UserTypePA {
		title = "Passenger Assistant Invoice"
		reference = "PA No. " + d.Identifier()
	}

	signer := d.Signature
	if signer == "" {
		signer = d.Name
	}

	doc := Document{
		Title:     title,
		Reference: reference,
		Identity: Identity{
			Name:    d.Name,
			Phone:   d.Mobile,
			Email:   d.Email,
			Address: d.Address,
		},
		ShowExtraJobs:     true,
		Services:          []DocumentService{},
		TemporarySubtotal: FormatMoney(decimal.Zero),
		ServicesSubtotal:  FormatMoney(decimal.Zero),
		PeriodFrom:        formatDate(d.PeriodFrom),
		PeriodTo:          formatDate(d.PeriodTo),
		Signer:            signer,
		GeneratedOn:       generatedAt.Format(displayDate),
	}

	columns := DraftRouteColumns(d.Weeks)
	doc.RouteHeaders = routeHeaders(columns)

	regular := decimal.Zero
	for i, w := range d.Weeks {
		number := w.WeekNumber
		if number == 0 {
			number = i + 1
		}
		week := DocumentWeek{Number: number, Subtotal: FormatMoney(WeekTotal(w))}
		for _, day := range w.Days {
			row := DocumentRow{Day: weekdayName(day.Day, day.Date), Date: formatDate(day.Date)}
			for c := 0; c < columns; c++ {
				var r *models.RouteFare
				if c < len(day.Routes) {
					r = &day.Routes[c]
				}
				row.Routes = append(row.Routes, routeCell(r))
			}
			week.Rows = append(week.Rows, row)
		}
		regular = regular.Add(WeekTotal(w))
		doc.Weeks = append(doc.Weeks, week)
	}
	doc.RegularSubtotal = FormatMoney(regular)

	for _, j := range d.ExtraJobs {
		doc.ExtraJobs = append(doc.ExtraJobs, DocumentExtraJob{
			Date:        formatDate(j.Date),
			Description: j.Description,
			Fare:        FormatMoney(Coerce(j.Fare)),
		})
	}
	doc.ExtraJobsSubtotal = FormatMoney(ExtraJobsTotal(d.ExtraJobs))
	doc.TotalPay = FormatMoney(DraftTotal(d))
	return doc
}
