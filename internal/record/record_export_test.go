package record_test

import (
	"bytes"
	"testing"

	"record-viewer/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestBuildWorkbook(t *testing.T) {
	records := []record.Record{
		{Empcode: "E1", FirstName: "Ann", Salary: record.Salary{Value: 1200, Valid: true}},
	}

	blob, err := record.BuildWorkbook(records)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if !assert.NoError(t, err) {
		return
	}
	defer f.Close()

	header, err := f.GetRows(record.ExportSheetName)
	assert.NoError(t, err)
	assert.Equal(t, record.Columns, header[0])

	salary, err := f.GetCellValue(record.ExportSheetName, "H2")
	assert.NoError(t, err)
	assert.Equal(t, "1200", salary)
}
