package models

// Department is an academic unit headed by a staff member.
type Department struct {
	Document
	DepartmentID   int64  `db:"department_id" json:"Department_ID" validate:"required"`
	DepartmentName string `db:"department_name" json:"Department_Name" validate:"required,max=100"`
	DepartmentHead string `db:"department_head" json:"Department_Head" validate:"required,max=50"`
}

var DepartmentMessages = Messages{
	"Department_ID.required":   "Department ID is required",
	"Department_Name.max":      "Department name cannot exceed 100 characters",
	"Department_Name.required": "Department name is required",
	"Department_Head.max":      "Department head name cannot exceed 50 characters",
	"Department_Head.required": "Department head is required",
}
