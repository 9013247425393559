package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/artem13815/smarthire-admin/pkg/application"
)

const applicationsSheet = "Applications"

var applicationColumns = []string{"Applicant", "Email", "Job Position", "Job Type", "CV", "Feedback"}

// Applications renders the application list as an XLSX workbook.
func Applications(rows []application.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", applicationsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	f.SetColWidth(applicationsSheet, "A", "B", 28)
	f.SetColWidth(applicationsSheet, "C", "D", 22)
	f.SetColWidth(applicationsSheet, "E", "E", 40)
	f.SetColWidth(applicationsSheet, "F", "F", 80)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F46E5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	for i, title := range applicationColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(applicationsSheet, cell, title)
	}
	last, _ := excelize.CoordinatesToCellName(len(applicationColumns), 1)
	f.SetCellStyle(applicationsSheet, "A1", last, headerStyle)

	for i, a := range rows {
		row := i + 2
		values := []string{a.Name, a.Email, a.JobPosition, a.JobType, a.CVURL, a.Feedback}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(applicationsSheet, cell, v)
		}
		if a.CVURL != "" {
			cell := fmt.Sprintf("E%d", row)
			if err := f.SetCellHyperLink(applicationsSheet, cell, a.CVURL, "External"); err != nil {
				return nil, fmt.Errorf("cv link row %d: %w", row, err)
			}
		}
	}
	f.SetPanes(applicationsSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
