package model

// ReportFacility is one of an employee's closest facilities, resolved to its
// airport code.
type ReportFacility struct {
	Zip         string `json:"zip"`
	Miles       int    `json:"miles"`
	AirportCode string `json:"airport_code"`
}

// ReportRow is one employee line of the output sheet. Nearest holds at most
// three facilities, closest first.
type ReportRow struct {
	EmployeeName string           `json:"employee_name"`
	EmployeeZip  string           `json:"employee_zip"`
	Nearest      []ReportFacility `json:"nearest"`
}
