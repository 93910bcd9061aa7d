package record

import (
	"github.com/xuri/excelize/v2"
)

const (
	ExportSheetName   = "Records"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Columns shown in the table and written to exports, in display order.
var Columns = []string{"Empcode", "First Name", "Last Name", "Dept", "Region", "Branch", "Hiredate", "Salary"}

// BuildWorkbook writes records to a single-sheet XLSX file.
func BuildWorkbook(records []Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return nil, err
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(ExportSheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			r.Empcode.String(),
			r.FirstName,
			r.LastName,
			r.Dept,
			r.Region,
			r.Branch,
			r.Hiredate.Display(),
			salaryCell(r.Salary),
		}
		if err := f.SetSheetRow(ExportSheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func salaryCell(s Salary) any {
	if !s.Valid {
		return ""
	}
	return s.Value
}
