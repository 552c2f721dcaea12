package input

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/taimone/closest-facilities-lookup/internal/model"
)

// Required column headers.
const (
	ColumnName        = "Name"
	ColumnEmployeeZip = "Employee Zip"
	ColumnFacilityZip = "Facility Zip"
	ColumnAirportCode = "Airport Code"
)

// LoadEmployees reads the employee source. Zips are normalised with
// model.NormalizeZip. A row missing a name or zip aborts the load with the
// row number.
func LoadEmployees(path string) ([]model.Employee, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}

	nameCol, err := t.Column(ColumnName)
	if err != nil {
		return nil, err
	}
	zipCol, err := t.Column(ColumnEmployeeZip)
	if err != nil {
		return nil, err
	}

	employees := make([]model.Employee, 0, len(t.Rows))
	for i, row := range t.Rows {
		if blank(row) {
			continue
		}
		rowNum := i + 2 // header is row 1

		name := cell(row, nameCol)
		if name == "" {
			return nil, eris.Errorf("input: %s row %d: %q is empty", path, rowNum, ColumnName)
		}
		zip := model.NormalizeZip(cell(row, zipCol))
		if zip == "" {
			return nil, eris.Errorf("input: %s row %d: %q is empty", path, rowNum, ColumnEmployeeZip)
		}

		employees = append(employees, model.Employee{Name: name, Zip: zip, Row: rowNum})
	}

	zap.L().Info("loaded employees", zap.String("path", path), zap.Int("count", len(employees)))
	return employees, nil
}

// LoadFacilities reads the facility source. Facility zips are kept exactly as
// written; a missing zip or airport code aborts the load with the row number.
func LoadFacilities(path string) ([]model.Facility, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}

	zipCol, err := t.Column(ColumnFacilityZip)
	if err != nil {
		return nil, err
	}
	codeCol, err := t.Column(ColumnAirportCode)
	if err != nil {
		return nil, err
	}

	facilities := make([]model.Facility, 0, len(t.Rows))
	for i, row := range t.Rows {
		if blank(row) {
			continue
		}
		rowNum := i + 2

		zip := cell(row, zipCol)
		if zip == "" {
			return nil, eris.Errorf("input: %s row %d: %q is empty", path, rowNum, ColumnFacilityZip)
		}
		code := cell(row, codeCol)
		if code == "" {
			return nil, eris.Errorf("input: %s row %d: %q is empty", path, rowNum, ColumnAirportCode)
		}

		facilities = append(facilities, model.Facility{Zip: zip, AirportCode: code})
	}

	if len(facilities) == 0 {
		return nil, eris.Errorf("input: %s has no facilities", path)
	}

	zap.L().Info("loaded facilities", zap.String("path", path), zap.Int("count", len(facilities)))
	return facilities, nil
}
