// Package report assembles the per-employee closest-facility rows and writes
// them as a single-sheet XLSX workbook.
package report

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"

	"github.com/taimone/closest-facilities-lookup/internal/model"
	"github.com/taimone/closest-facilities-lookup/internal/ranking"
)

// DefaultSheet is the name of the only sheet in the workbook.
const DefaultSheet = "Results"

// Header is the fixed first row of the sheet.
var Header = buildHeader()

func buildHeader() []string {
	h := []string{"Employee Name", "Employee Zip"}
	for i := 1; i <= ranking.TopN; i++ {
		h = append(h, fmt.Sprintf("Closest Facility %d", i))
	}
	for i := 1; i <= ranking.TopN; i++ {
		h = append(h, fmt.Sprintf("Distance %d (miles)", i))
	}
	for i := 1; i <= ranking.TopN; i++ {
		h = append(h, fmt.Sprintf("Facility %d Airport Code", i))
	}
	return h
}

// BuildRow resolves an employee's ranked facilities to airport codes. Every
// ranked zip must exist in idx; a miss is reported as an error.
func BuildRow(emp model.Employee, ranked []model.RankedFacility, idx *model.FacilityIndex) (model.ReportRow, error) {
	if len(ranked) > ranking.TopN {
		ranked = ranked[:ranking.TopN]
	}

	row := model.ReportRow{
		EmployeeName: emp.Name,
		EmployeeZip:  emp.Zip,
		Nearest:      make([]model.ReportFacility, 0, len(ranked)),
	}
	for _, r := range ranked {
		code, ok := idx.AirportCode(r.FacilityZip)
		if !ok {
			return model.ReportRow{}, eris.Errorf("report: no airport code for facility %q (employee %q)", r.FacilityZip, emp.Name)
		}
		row.Nearest = append(row.Nearest, model.ReportFacility{
			Zip:         r.FacilityZip,
			Miles:       r.Miles,
			AirportCode: code,
		})
	}
	return row, nil
}

// Report is the assembled sheet content.
type Report struct {
	Sheet string
	rows  []model.ReportRow
}

// Assemble builds a report with one line per row, in the given order.
func Assemble(rows []model.ReportRow) *Report {
	out := make([]model.ReportRow, len(rows))
	copy(out, rows)
	return &Report{Sheet: DefaultSheet, rows: out}
}

// Rows returns the assembled employee rows.
func (r *Report) Rows() []model.ReportRow {
	return r.rows
}

// Cells returns the sheet as a grid: the header followed by one line per
// employee. Missing facility slots are nil so they stay blank in the sheet.
func (r *Report) Cells() [][]any {
	grid := make([][]any, 0, len(r.rows)+1)

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	grid = append(grid, header)

	for _, row := range r.rows {
		line := make([]any, len(Header))
		line[0] = row.EmployeeName
		line[1] = row.EmployeeZip
		for i, f := range row.Nearest {
			if i >= ranking.TopN {
				break
			}
			line[2+i] = f.Zip
			line[2+ranking.TopN+i] = f.Miles
			line[2+2*ranking.TopN+i] = f.AirportCode
		}
		grid = append(grid, line)
	}
	return grid
}

func (r *Report) workbook() (*excelize.File, error) {
	sheet := r.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, eris.Wrap(err, "report: new sheet")
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, eris.Wrap(err, "report: new stream writer")
	}

	for i, line := range r.Cells() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, eris.Wrap(err, "report: cell name")
		}
		if err := sw.SetRow(cell, line); err != nil {
			return nil, eris.Wrapf(err, "report: write row %d", i+1)
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, eris.Wrap(err, "report: flush")
	}

	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, eris.Wrap(err, "report: delete default sheet")
		}
	}
	index, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, eris.Wrap(err, "report: sheet index")
	}
	f.SetActiveSheet(index)
	return f, nil
}

// WriteXLSX encodes the workbook to w.
func (r *Report) WriteXLSX(w io.Writer) error {
	f, err := r.workbook()
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	if _, err := f.WriteTo(w); err != nil {
		return eris.Wrap(err, "report: write workbook")
	}
	return nil
}

// Save writes the workbook to path.
func (r *Report) Save(path string) error {
	f, err := r.workbook()
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	if err := f.SaveAs(path); err != nil {
		return eris.Wrapf(err, "report: save %s", path)
	}
	return nil
}
