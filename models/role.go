package models

type Role string

const (
	HRRole       Role = "hr"
	EmployeeRole Role = "employee"
)
