package models

// Grade is a student's result for a subject.
type Grade struct {
	Document
	GradeID   int64  `db:"grade_id" json:"Grade_ID" validate:"required"`
	StudentID int64  `db:"student_id" json:"Student_ID" validate:"required"`
	SubjDesc  string `db:"subj_desc" json:"Subj_desc" validate:"required"`
	Units     int64  `db:"units" json:"Units" validate:"required,gt=0"`
	Credits   int64  `db:"credits" json:"Credits" validate:"required,gt=0"`
	Remarks   string `db:"remarks" json:"Remarks,omitempty" validate:"omitempty,max=500"`
}

var GradeMessages = Messages{
	"Grade_ID.type":       "Grade_ID must be a number",
	"Grade_ID.required":   "Grade_ID is required",
	"Student_ID.type":     "Student_ID must be a number",
	"Student_ID.required": "Student_ID is required",
	"Subj_desc.type":      "Subj_desc must be a string",
	"Subj_desc.required":  "Subject description is required",
	"Units.type":          "Units must be a number",
	"Units.gt":            "Units must be a positive number",
	"Units.required":      "Units are required",
	"Credits.type":        "Credits must be a number",
	"Credits.gt":          "Credits must be a positive number",
	"Credits.required":    "Credits are required",
	"Remarks.type":        "Remarks must be a string",
	"Remarks.max":         "Remarks cannot exceed 500 characters",
}
