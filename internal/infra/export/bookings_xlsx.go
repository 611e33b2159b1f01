package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const bookingsSheet = "Agendamentos"

// ErrWrite ошибка формирования файла выгрузки
var ErrWrite = errors.New("export: failed to write xlsx")

// BookingRow одна строка выгрузки записей с уже подставленными названиями
type BookingRow struct {
	ID       int64
	Date     string
	Time     string
	Customer string
	Phone    string
	Pet      string
	Service  string
	Prize    string
	Status   string
	Notes    string
}

var bookingHeader = []string{"ID", "Data", "Hora", "Cliente", "Telefone", "Pet", "Serviço", "Mimo", "Status", "Observações"}

// BookingsXLSX пишет выгрузку записей в формате XLSX
type BookingsXLSX struct{}

// NewBookingsXLSX создает писатель выгрузки
func NewBookingsXLSX() *BookingsXLSX {
	return &BookingsXLSX{}
}

// ContentType returns the MIME type of the produced file
func (BookingsXLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Write renders rows into a single-sheet workbook
func (BookingsXLSX) Write(w io.Writer, rows []BookingRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", bookingsSheet); err != nil {
		return fmt.Errorf("%w: rename sheet: %v", ErrWrite, err)
	}

	if err := writeRow(f, 1, toCells(bookingHeader)); err != nil {
		return err
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(bookingHeader), 1)
		_ = f.SetCellStyle(bookingsSheet, "A1", endCell, style)
	}

	for i, r := range rows {
		cells := []interface{}{r.ID, r.Date, r.Time, r.Customer, r.Phone, r.Pet, r.Service, r.Prize, r.Status, r.Notes}
		if err := writeRow(f, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.SetPanes(bookingsSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return fmt.Errorf("%w: freeze header: %v", ErrWrite, err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, cells []interface{}) error {
	for col, val := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
		if err := f.SetCellValue(bookingsSheet, cell, val); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}
	return nil
}

func toCells(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
