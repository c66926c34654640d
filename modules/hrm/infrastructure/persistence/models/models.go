package models

import "time"

type Employee struct {
	ID           uint
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	HireDate     time.Time
	JobTitle     string
	DepartmentID uint
	CreatedBy    string
	UpdatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Department struct {
	ID   uint
	Name string
}

// DepartmentRosterRow is one row of the departments/employees/leaders join.
// Employee columns are null for departments without anyone in them, the
// leadership columns for employees without an active leadership record.
type DepartmentRosterRow struct {
	DepartmentID   uint
	DepartmentName string
	EmployeeID     *uint
	FirstName      *string
	LastName       *string
	JobTitle       *string
	StartDate      *time.Time
	EndDate        *time.Time
}
