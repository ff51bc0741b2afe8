// Package export renders fetched collections as .xlsx workbooks.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/analytics"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

const dateLayout = "2006-01-02 15:04"

// LeadHeader is the column order of the leads export.
var LeadHeader = []string{
	"Visitor Name",
	"Email",
	"Phone",
	"Organization",
	"Designation",
	"City",
	"Country",
	"Company",
	"Source",
	"Interest",
	"Follow Up",
	"Notes",
	"Created At",
}

// VisitorHeader is the column order of the visitors export.
var VisitorHeader = []string{
	"Full Name",
	"Email",
	"Phone",
	"Organization",
	"Designation",
	"City",
	"Country",
	"Profile Completeness (%)",
	"Created At",
}

// XLSXRenderer implements the export service's renderer.
type XLSXRenderer struct{}

func NewXLSXRenderer() *XLSXRenderer { return &XLSXRenderer{} }

// Leads renders leads, one row each.
func (XLSXRenderer) Leads(leads []domain.Lead) ([]byte, error) {
	rows := make([][]any, 0, len(leads))
	for _, l := range leads {
		followUp := ""
		if l.FollowUpDate != nil {
			followUp = l.FollowUpDate.Format("2006-01-02")
		}
		rows = append(rows, []any{
			domain.OrNA(l.VisitorName),
			domain.OrNA(l.VisitorEmail),
			domain.OrNA(l.VisitorPhone),
			domain.OrNA(l.VisitorOrganization),
			domain.OrNA(l.VisitorDesignation),
			domain.OrNA(l.VisitorCity),
			domain.OrNA(l.VisitorCountry),
			domain.OrNA(l.CompanyName),
			analytics.SourceKey(l),
			domain.OrNA(string(l.Interests)),
			followUp,
			l.Notes,
			formatTime(l.CreatedAt),
		})
	}
	return render("Leads", LeadHeader, rows)
}

// Visitors renders visitors, one row each.
func (XLSXRenderer) Visitors(visitors []domain.Visitor) ([]byte, error) {
	rows := make([][]any, 0, len(visitors))
	for _, v := range visitors {
		rows = append(rows, []any{
			domain.OrNA(v.FullName),
			domain.OrNA(v.Email),
			domain.OrNA(v.Phone),
			domain.OrNA(v.Organization),
			domain.OrNA(v.Designation),
			domain.OrNA(v.City),
			domain.OrNA(v.Country),
			analytics.ProfileCompleteness(v),
			formatTime(v.CreatedAt),
		})
	}
	return render("Visitors", VisitorHeader, rows)
}

func render(sheet string, header []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, fmt.Errorf("header range: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
