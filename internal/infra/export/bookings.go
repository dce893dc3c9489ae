package export

import (
	"fmt"
	"io"

	"padel-club/internal/domain/reservation"
	"padel-club/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Reservas"

var headers = []string{"ID", "Fecha", "Hora inicio", "Hora fin", "Cancha", "Usuario", "DNI", "Estado", "Recurrente"}

var statusFill = map[string]string{
	string(reservation.StatusConfirmed): "#C6EFCE",
	string(reservation.StatusPending):   "#FFEB9C",
	string(reservation.StatusCanceled):  "#FFC7CE",
}

// BookingWorkbook renders a booking listing as an xlsx spreadsheet.
type BookingWorkbook struct{}

func NewBookingWorkbook() *BookingWorkbook {
	return &BookingWorkbook{}
}

// Write emits the workbook for the period title and rows to w.
func (b *BookingWorkbook) Write(w io.Writer, period string, rows []*queries.ReservationView) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	if err := f.SetCellValue(SheetName, "A1", "Período: "+period); err != nil {
		return fmt.Errorf("error writing title: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	_ = f.MergeCell(SheetName, "A1", lastCol+"1")
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(SheetName, "A1", "A1", titleStyle)

	if err := b.writeHeaders(f); err != nil {
		return err
	}

	styles, err := b.statusStyles(f)
	if err != nil {
		return err
	}

	for i, r := range rows {
		row := i + 3
		cell, _ := excelize.CoordinatesToCellName(1, row)
		recurring := ""
		if r.RecurringRuleID != nil {
			recurring = fmt.Sprintf("%d", *r.RecurringRuleID)
		}
		values := []any{r.ID, r.Date, r.Start, r.End, r.CourtNumber, r.UserName, r.UserDNI, r.Status, recurring}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("error writing row %d: %w", row, err)
		}
		if style, ok := styles[r.Status]; ok {
			statusCell, _ := excelize.CoordinatesToCellName(8, row)
			_ = f.SetCellStyle(SheetName, statusCell, statusCell, style)
		}
	}

	_ = f.SetColWidth(SheetName, "A", "A", 8)
	_ = f.SetColWidth(SheetName, "B", "E", 12)
	_ = f.SetColWidth(SheetName, "F", "F", 28)
	_ = f.SetColWidth(SheetName, "G", "I", 12)

	// Remove the default sheet
	_ = f.DeleteSheet("Sheet1")

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}

func (b *BookingWorkbook) writeHeaders(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("error writing header: %w", err)
		}
		_ = f.SetCellStyle(SheetName, cell, cell, style)
	}
	return nil
}

func (b *BookingWorkbook) statusStyles(f *excelize.File) (map[string]int, error) {
	styles := make(map[string]int, len(statusFill))
	for status, color := range statusFill {
		style, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return nil, fmt.Errorf("error creating status style: %w", err)
		}
		styles[status] = style
	}
	return styles, nil
}
