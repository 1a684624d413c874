package models

// Gender values shared by faculty and student records.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Faculty is a teaching or administrative staff member.
type Faculty struct {
	Document
	FacultyID    int64  `db:"faculty_id" json:"Faculty_ID" validate:"required"`
	FirstName    string `db:"first_name" json:"First_Name" validate:"required,max=50"`
	LastName     string `db:"last_name" json:"Last_Name" validate:"required,max=50"`
	Gender       Gender `db:"gender" json:"Gender" validate:"required,oneof=Male Female Other"`
	Age          int64  `db:"age" json:"Age" validate:"required,gt=0"`
	Email        string `db:"email" json:"Email" validate:"required,email"`
	Contact      string `db:"contact" json:"Contact" validate:"required"`
	FacultyRole  string `db:"faculty_role" json:"Faculty_Role" validate:"required"`
	DepartmentID int64  `db:"department_id" json:"Department_ID" validate:"required"`
	LeaveID      int64  `db:"leave_id" json:"Leave_ID" validate:"required"`
	AttendanceID int64  `db:"attendance_id" json:"Attendance_ID" validate:"required"`
	StudentGrade string `db:"student_grade" json:"Student_Grade" validate:"required"`
}

var FacultyMessages = Messages{
	"Faculty_ID.required":    "Faculty ID is required",
	"First_Name.max":         "First name cannot exceed 50 characters",
	"First_Name.required":    "First name is required",
	"Last_Name.max":          "Last name cannot exceed 50 characters",
	"Last_Name.required":     "Last name is required",
	"Gender.oneof":           "Gender must be Male, Female, or Other",
	"Gender.required":        "Gender is required",
	"Age.type":               "Age must be a number",
	"Age.integer":            "Age must be an integer",
	"Age.gt":                 "Age must be a positive number",
	"Age.required":           "Age is required",
	"Email.email":            "Please provide a valid email address",
	"Email.required":         "Email is required",
	"Contact.required":       "Contact is required",
	"Faculty_Role.required":  "Faculty role is required",
	"Department_ID.required": "Department ID is required",
	"Leave_ID.required":      "Leave ID is required",
	"Attendance_ID.required": "Attendance ID is required",
	"Student_Grade.required": "Student Grade is required",
}
