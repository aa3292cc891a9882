// Package export writes schedule views as spreadsheets.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"school-transport-backend/models"
)

const scheduleSheet = "Schedule"

// ScheduleFilename is the download name of a month's route matrix.
func ScheduleFilename(s models.RouteSchedule) string {
	return fmt.Sprintf("route-schedule-%04d-%02d.xlsx", s.Year, s.Month)
}

// WriteSchedule writes the date x route matrix as an XLSX workbook: one row
// per date, one column per route, each cell listing that day's event labels.
func WriteSchedule(w io.Writer, s models.RouteSchedule) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), scheduleSheet); err != nil {
		return fmt.Errorf("failed to name schedule sheet: %w", err)
	}

	header := make([]any, 0, len(s.AvailableRoutes)+1)
	header = append(header, "Date")
	for _, r := range s.AvailableRoutes {
		header = append(header, "Route "+r)
	}
	if err := f.SetSheetRow(scheduleSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write schedule header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create cell style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return fmt.Errorf("failed to resolve last column: %w", err)
	}
	if err := f.SetCellStyle(scheduleSheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("failed to style schedule header: %w", err)
	}

	for i, date := range s.Dates {
		row := make([]any, 0, len(header))
		row = append(row, date)
		for _, r := range s.AvailableRoutes {
			row = append(row, cellText(s.RouteEvents[r][date]))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(scheduleSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write schedule row for %s: %w", date, err)
		}
	}

	if len(s.Dates) > 0 {
		end := fmt.Sprintf("%s%d", lastCol, len(s.Dates)+1)
		if err := f.SetCellStyle(scheduleSheet, "B2", end, wrap); err != nil {
			return fmt.Errorf("failed to style schedule cells: %w", err)
		}
	}
	if err := f.SetColWidth(scheduleSheet, "A", "A", 12); err != nil {
		return fmt.Errorf("failed to size date column: %w", err)
	}
	if len(header) > 1 {
		if err := f.SetColWidth(scheduleSheet, "B", lastCol, 28); err != nil {
			return fmt.Errorf("failed to size route columns: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write schedule workbook: %w", err)
	}
	return nil
}

func cellText(events []models.Event) string {
	labels := make([]string, 0, len(events))
	for _, e := range events {
		labels = append(labels, e.Label)
	}
	return strings.Join(labels, "\n")
}
