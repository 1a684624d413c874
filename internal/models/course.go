package models

// Course represents a catalogued course offering.
type Course struct {
	Document
	CourseID   int64  `db:"course_id" json:"Course_ID" validate:"required"`
	CourseName string `db:"course_name" json:"Course_name" validate:"required,max=100"`
	Credits    int64  `db:"credits" json:"Credits" validate:"required,gt=0"`
	CatalogNo  string `db:"catalog_no" json:"Catalog_no" validate:"required,max=50"`
	AcademicYr int64  `db:"academic_yr" json:"Academic_yr" validate:"required,gt=0"`
}

var CourseMessages = Messages{
	"Course_ID.type":       "Course_ID must be a number",
	"Course_ID.required":   "Course_ID is required",
	"Course_name.max":      "Course name cannot exceed 100 characters",
	"Course_name.required": "Course name is required",
	"Credits.type":         "Credits must be a number",
	"Credits.gt":           "Credits must be a positive number",
	"Credits.required":     "Credits are required",
	"Catalog_no.max":       "Catalog number cannot exceed 50 characters",
	"Catalog_no.required":  "Catalog number is required",
	"Academic_yr.type":     "Academic year must be a number",
	"Academic_yr.gt":       "Academic year must be a positive number",
	"Academic_yr.required": "Academic year is required",
}
