package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taimone/closest-facilities-lookup/internal/model"
)

func TestLoadEmployees_CSV(t *testing.T) {
	path := writeTestFile(t, "input.csv", "Name,Employee Zip\nJane Doe,10001\nJohn Roe,00501.0\n\nAnn Poe, 60601 \n")

	got, err := LoadEmployees(path)
	require.NoError(t, err)
	assert.Equal(t, []model.Employee{
		{Name: "Jane Doe", Zip: "10001", Row: 2},
		{Name: "John Roe", Zip: "00501", Row: 3},
		{Name: "Ann Poe", Zip: "60601", Row: 4},
	}, got)
}

func TestLoadEmployees_ExtraColumnsAndOrder(t *testing.T) {
	path := writeTestFile(t, "input.csv", "Department,employee zip,NAME\nOps,10001,Jane Doe\n")

	got, err := LoadEmployees(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane Doe", got[0].Name)
	assert.Equal(t, "10001", got[0].Zip)
}

func TestLoadEmployees_SharedZip(t *testing.T) {
	path := writeTestFile(t, "input.csv", "Name,Employee Zip\nA,10001\nB,10001\n")

	got, err := LoadEmployees(path)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLoadEmployees_MissingColumn(t *testing.T) {
	path := writeTestFile(t, "input.csv", "Name,Zip\nJane Doe,10001\n")

	_, err := LoadEmployees(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required column "Employee Zip"`)
}

func TestLoadEmployees_EmptyField(t *testing.T) {
	path := writeTestFile(t, "input.csv", "Name,Employee Zip\nJane Doe,10001\nJohn Roe,\n")

	_, err := LoadEmployees(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	assert.Contains(t, err.Error(), "Employee Zip")
}

func TestLoadEmployees_ShortRow(t *testing.T) {
	path := writeTestFile(t, "input.csv", "Name,Employee Zip\nJane Doe\n")

	_, err := LoadEmployees(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoadEmployees_XLSX(t *testing.T) {
	path := createTestXLSX(t, [][]string{
		{"Name", "Employee Zip"},
		{"Jane Doe", "10001"},
		{"John Roe", "02108"},
	})

	got, err := LoadEmployees(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "02108", got[1].Zip)
}

func TestLoadFacilities_PreservesLeadingZeros(t *testing.T) {
	path := writeTestFile(t, "facilities.csv", "Facility Zip,Airport Code\n00501,ISP\n60601,ORD\n")

	got, err := LoadFacilities(path)
	require.NoError(t, err)
	assert.Equal(t, []model.Facility{
		{Zip: "00501", AirportCode: "ISP"},
		{Zip: "60601", AirportCode: "ORD"},
	}, got)
}

func TestLoadFacilities_MissingAirportCode(t *testing.T) {
	path := writeTestFile(t, "facilities.csv", "Facility Zip,Airport Code\n00501,\n")

	_, err := LoadFacilities(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "Airport Code")
}

func TestLoadFacilities_Empty(t *testing.T) {
	path := writeTestFile(t, "facilities.csv", "Facility Zip,Airport Code\n")

	_, err := LoadFacilities(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no facilities")
}

func TestReadTable_UnsupportedExtension(t *testing.T) {
	path := writeTestFile(t, "facilities.json", "[]")

	_, err := ReadTable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestReadTable_EmptyFile(t *testing.T) {
	path := writeTestFile(t, "input.csv", "")

	_, err := ReadTable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is empty")
}
