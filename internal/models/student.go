package models

import "time"

// StudentStatus enumerates enrolment standing.
type StudentStatus string

const (
	StudentActive    StudentStatus = "Active"
	StudentInactive  StudentStatus = "Inactive"
	StudentGraduated StudentStatus = "Graduated"
	StudentDropped   StudentStatus = "Dropped"
)

// CivilStatus enumerates marital standing.
type CivilStatus string

const (
	CivilSingle   CivilStatus = "Single"
	CivilMarried  CivilStatus = "Married"
	CivilDivorced CivilStatus = "Divorced"
	CivilWidowed  CivilStatus = "Widowed"
)

// Student represents a learner registered in the institution.
type Student struct {
	Document
	StudentID     int64         `db:"student_id" json:"Student_ID" validate:"required"`
	StudentStatus StudentStatus `db:"student_status" json:"StudentStatus" validate:"required,oneof=Active Inactive Graduated Dropped"`
	YearLevel     int64         `db:"year_level" json:"YearLevel" validate:"required,min=1,max=6"`
	FirstName     string        `db:"first_name" json:"FirstName" validate:"required,max=50"`
	LastName      string        `db:"last_name" json:"LastName" validate:"required,max=50"`
	MiddleName    string        `db:"middle_name" json:"MiddleName,omitempty" validate:"omitempty,max=50"`
	Address       string        `db:"address" json:"Address" validate:"required,max=255"`
	Email         string        `db:"email" json:"Email" validate:"required,email"`
	Phone         string        `db:"phone" json:"Phone" validate:"required,numeric"`
	DateOfBirth   time.Time     `db:"date_of_birth" json:"DateOfBirth" validate:"required"`
	PlaceOfBirth  string        `db:"place_of_birth" json:"PlaceOfBirth" validate:"required,max=100"`
	Sex           Gender        `db:"sex" json:"Sex" validate:"required,oneof=Male Female Other"`
	Religion      string        `db:"religion" json:"Religion" validate:"required,max=50"`
	Nationality   string        `db:"nationality" json:"Nationality" validate:"required,max=50"`
	CivilStatus   CivilStatus   `db:"civil_status" json:"CivilStatus" validate:"required,oneof=Single Married Divorced Widowed"`
	Occupation    string        `db:"occupation" json:"Occupation,omitempty" validate:"omitempty,max=100"`
	WorkAddress   string        `db:"work_address" json:"WorkAddress,omitempty" validate:"omitempty,max=255"`
	CourseID      int64         `db:"course_id" json:"Course_ID" validate:"required"`
	SubjectID     int64         `db:"subject_id" json:"Subject_ID" validate:"required"`
	EnrollmentID  int64         `db:"enrollment_id" json:"Enrollment_ID" validate:"required"`
}

var StudentMessages = Messages{
	"Student_ID.type":        "Student ID must be a number",
	"Student_ID.required":    "Student ID is required",
	"StudentStatus.required": "Student Status is required",
	"StudentStatus.type":     "Student Status must be a string",
	"StudentStatus.oneof":    "Student Status must be one of the following: Active, Inactive, Graduated, Dropped",
	"YearLevel.type":         "Year Level must be a number",
	"YearLevel.required":     "Year Level is required",
	"YearLevel.min":          "Year Level must be between 1 and 6",
	"YearLevel.max":          "Year Level must be between 1 and 6",
	"FirstName.max":          "First name cannot exceed 50 characters",
	"FirstName.required":     "First name is required",
	"LastName.max":           "Last name cannot exceed 50 characters",
	"LastName.required":      "Last name is required",
	"MiddleName.max":         "Middle name cannot exceed 50 characters",
	"Address.max":            "Address cannot exceed 255 characters",
	"Address.required":       "Address is required",
	"Email.email":            "Please provide a valid email address",
	"Email.required":         "Email is required",
	"Phone.type":             "Phone number must be a valid number",
	"Phone.numeric":          "Phone number must be a valid number",
	"Phone.required":         "Phone number is required",
	"DateOfBirth.type":       "Date of Birth must be a valid date",
	"DateOfBirth.required":   "Date of Birth is required",
	"PlaceOfBirth.max":       "Place of Birth cannot exceed 100 characters",
	"PlaceOfBirth.required":  "Place of Birth is required",
	"Sex.required":           "Sex is required",
	"Sex.type":               "Sex must be a string",
	"Sex.oneof":              "Sex must be one of the following: Male, Female, Other",
	"Religion.max":           "Religion cannot exceed 50 characters",
	"Religion.required":      "Religion is required",
	"Nationality.max":        "Nationality cannot exceed 50 characters",
	"Nationality.required":   "Nationality is required",
	"CivilStatus.required":   "Civil Status is required",
	"CivilStatus.type":       "Civil Status must be a string",
	"CivilStatus.oneof":      "Civil Status must be one of the following: Single, Married, Divorced, Widowed",
	"Occupation.max":         "Occupation cannot exceed 100 characters",
	"WorkAddress.max":        "Work Address cannot exceed 255 characters",
	"Course_ID.type":         "Course ID must be a number",
	"Course_ID.required":     "Course ID is required",
	"Subject_ID.type":        "Subject ID must be a number",
	"Subject_ID.required":    "Subject ID is required",
	"Enrollment_ID.type":     "Enrollment ID must be a number",
	"Enrollment_ID.required": "Enrollment ID is required",
}
