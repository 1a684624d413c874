package models

import "time"

// Enrollment links a student to a course.
type Enrollment struct {
	Document
	EnrollmentID   int64     `db:"enrollment_id" json:"Enrollment_ID" validate:"required"`
	StudentID      int64     `db:"student_id" json:"Student_ID" validate:"required"`
	CourseID       int64     `db:"course_id" json:"Course_ID" validate:"required"`
	EnrollmentDate time.Time `db:"enrollment_date" json:"EnrollmentDate" validate:"required"`
}

var EnrollmentMessages = Messages{
	"Course_ID.required":      "Course_ID is required",
	"Course_ID.type":          "Course_ID must be a number",
	"Student_ID.required":     "Student_ID is required",
	"Student_ID.type":         "Student_ID must be a number",
	"Enrollment_ID.required":  "Enrollment_ID is required",
	"Enrollment_ID.type":      "Enrollment_ID must be a number",
	"EnrollmentDate.required": "EnrollmentDate is required",
	"EnrollmentDate.type":     "EnrollmentDate must be a valid date",
}
