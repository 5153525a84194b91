package scheduling

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
)

const exportSheet = "Shifts"

var exportHeader = []string{"Date", "Employee", "Start", "End", "Status"}

// ExportWeek renders the week's shifts as an xlsx workbook, one row per
// shift in the same order the week listing returns them.
func (s *service) ExportWeek(ctx context.Context, from time.Time) ([]byte, error) {
	shifts, err := s.weekShifts(ctx, from)
	if err != nil {
		return nil, err
	}
	return buildWorkbook(shifts)
}

func buildWorkbook(shifts []models.Shift) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "drop default sheet")
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "header cell")
		}
		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write header")
		}
	}

	for i, shift := range shifts {
		employee := shift.EmployeeID.String()
		if shift.Employee != nil {
			employee = fmt.Sprintf("%s %s", shift.Employee.FirstName, shift.Employee.LastName)
		}
		row := []any{
			shift.Date.UTC().Format(DateLayout),
			employee,
			shift.StartTime,
			shift.EndTime,
			shift.Status,
		}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "row cell")
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write row")
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode workbook")
	}
	return buf.Bytes(), nil
}
