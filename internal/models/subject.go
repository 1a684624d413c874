package models

// Subject represents an academic subject under a course.
type Subject struct {
	Document
	SubjectID          int64  `db:"subject_id" json:"Subject_ID" validate:"required"`
	SubjectName        string `db:"subject_name" json:"SubjectName" validate:"required,max=100"`
	SubjectDescription string `db:"subject_description" json:"SubjectDescription" validate:"required,max=500"`
	CourseID           int64  `db:"course_id" json:"Course_ID" validate:"required"`
}

var SubjectMessages = Messages{
	"Subject_ID.type":             "Subject ID must be a number",
	"Subject_ID.required":         "Subject ID is required",
	"SubjectName.max":             "Subject Name cannot exceed 100 characters",
	"SubjectName.required":        "Subject Name is required",
	"SubjectDescription.max":      "Subject Description cannot exceed 500 characters",
	"SubjectDescription.required": "Subject Description is required",
	"Course_ID.type":              "Course ID must be a number",
	"Course_ID.required":          "Course ID is required",
}
