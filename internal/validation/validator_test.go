package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmichaelmontiza/Campus-Information-System/internal/models"
)

func decodeErrors(t *testing.T, err error) Errors {
	t.Helper()
	require.Error(t, err)
	errs, ok := err.(Errors)
	require.True(t, ok, "expected validation.Errors, got %T", err)
	return errs
}

func TestDecodeAttendanceValid(t *testing.T) {
	v := New()
	record, err := Decode[models.Attendance](v, []byte(`{"Attendance_ID":1,"Date":"2024-01-15","Status":"Present"}`), models.AttendanceMessages)
	require.NoError(t, err)

	assert.Equal(t, int64(1), record.AttendanceID)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), record.Date)
	assert.Equal(t, models.AttendancePresent, record.Status)
	assert.Empty(t, record.ID)
}

func TestDecodeCollectsEveryMissingField(t *testing.T) {
	v := New()
	_, err := Decode[models.Course](v, []byte(`{}`), models.CourseMessages)

	errs := decodeErrors(t, err)
	assert.Equal(t, []string{
		"Course_ID is required",
		"Course name is required",
		"Credits are required",
		"Catalog number is required",
		"Academic year is required",
	}, errs.Messages())
}

func TestDecodeRejectsUnknownStatus(t *testing.T) {
	v := New()
	_, err := Decode[models.Attendance](v, []byte(`{"Attendance_ID":1,"Date":"2024-01-15","Status":"Cancelled"}`), models.AttendanceMessages)

	errs := decodeErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "Status", errs[0].Field)
	assert.Equal(t, "oneof", errs[0].Rule)
	assert.Equal(t, "Status must be either Present, Absent, Late or Excused", errs[0].Message)
}

func TestDecodeMixesTypeRuleAndUnknownKeyErrors(t *testing.T) {
	v := New()
	body := `{"Course_ID":"abc","Course_name":"` + strings.Repeat("x", 101) + `","Credits":0,"Catalog_no":"CS101","Academic_yr":2024,"password":"secret"}`
	_, err := Decode[models.Course](v, []byte(body), models.CourseMessages)

	errs := decodeErrors(t, err)
	assert.Equal(t, []string{
		"Course_ID must be a number",
		"Course name cannot exceed 100 characters",
		"Credits must be a positive number",
		`"password" is not allowed`,
	}, errs.Messages())
	assert.True(t, errs.Has("password"))
}

func TestDecodeRejectsStoreManagedKeys(t *testing.T) {
	v := New()
	_, err := Decode[models.Department](v, []byte(`{"_id":"x","Department_ID":1,"Department_Name":"Math","Department_Head":"Ada"}`), models.DepartmentMessages)

	errs := decodeErrors(t, err)
	assert.Equal(t, []string{`"_id" is not allowed`}, errs.Messages())
}

func TestDecodeIntegerFields(t *testing.T) {
	v := New()
	body := `{"Faculty_ID":1,"First_Name":"Ada","Last_Name":"Lovelace","Gender":"Female","Age":30.5,"Email":"ada@example.com","Contact":"123","Faculty_Role":"Lecturer","Department_ID":2,"Leave_ID":3,"Attendance_ID":4,"Student_Grade":"A"}`
	_, err := Decode[models.Faculty](v, []byte(body), models.FacultyMessages)

	errs := decodeErrors(t, err)
	assert.Equal(t, []string{"Age must be an integer"}, errs.Messages())

	record, err := Decode[models.Faculty](v, []byte(strings.Replace(body, "30.5", `"30"`, 1)), models.FacultyMessages)
	require.NoError(t, err)
	assert.Equal(t, int64(30), record.Age)
}

func TestDecodeDateFormats(t *testing.T) {
	v := New()
	cases := map[string]time.Time{
		`"2024-03-01T10:30:00Z"`:      time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		`"2024-03-01T10:30:00+02:00"`: time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC),
		`1709289000000`:               time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
	}
	for raw, want := range cases {
		record, err := Decode[models.Leave](v, []byte(`{"Leave_ID":1,"Leave_Type":"Sick","Faculty_ID":2,"Date":`+raw+`,"Status":"Pending"}`), models.LeaveMessages)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(record.Date), raw)
	}

	_, err := Decode[models.Leave](v, []byte(`{"Leave_ID":1,"Leave_Type":"Sick","Faculty_ID":2,"Date":"yesterday","Status":"Pending"}`), models.LeaveMessages)
	errs := decodeErrors(t, err)
	assert.Equal(t, []string{"Date must be a valid ISO date"}, errs.Messages())
}

func TestDecodeStudentAcceptsNumericPhone(t *testing.T) {
	v := New()
	body := `{"Student_ID":10,"StudentStatus":"Active","YearLevel":2,"FirstName":"Juan","LastName":"Cruz","Address":"Manila","Email":"juan@example.com","Phone":9171234567,"DateOfBirth":"2004-05-06","PlaceOfBirth":"Cebu","Sex":"Male","Religion":"None","Nationality":"Filipino","CivilStatus":"Single","Course_ID":1,"Subject_ID":2,"Enrollment_ID":3}`
	record, err := Decode[models.Student](v, []byte(body), models.StudentMessages)
	require.NoError(t, err)
	assert.Equal(t, "9171234567", record.Phone)
	assert.Empty(t, record.MiddleName)

	_, err = Decode[models.Student](v, []byte(strings.Replace(body, `"YearLevel":2`, `"YearLevel":7`, 1)), models.StudentMessages)
	errs := decodeErrors(t, err)
	assert.Equal(t, []string{"Year Level must be between 1 and 6"}, errs.Messages())

	_, err = Decode[models.Student](v, []byte(strings.Replace(body, `"juan@example.com"`, `"juan"`, 1)), models.StudentMessages)
	errs = decodeErrors(t, err)
	assert.Equal(t, []string{"Please provide a valid email address"}, errs.Messages())
}

func TestDecodeOptionalFields(t *testing.T) {
	v := New()
	body := `{"Grade_ID":1,"Student_ID":2,"Subj_desc":"Algebra","Units":3,"Credits":3}`
	record, err := Decode[models.Grade](v, []byte(body), models.GradeMessages)
	require.NoError(t, err)
	assert.Empty(t, record.Remarks)

	long := `{"Grade_ID":1,"Student_ID":2,"Subj_desc":"Algebra","Units":3,"Credits":3,"Remarks":"` + strings.Repeat("r", 501) + `"}`
	_, err = Decode[models.Grade](v, []byte(long), models.GradeMessages)
	errs := decodeErrors(t, err)
	assert.Equal(t, []string{"Remarks cannot exceed 500 characters"}, errs.Messages())
}

func TestDecodeTreatsEmptyAndNullAsMissing(t *testing.T) {
	v := New()
	_, err := Decode[models.Department](v, []byte(`{"Department_ID":null,"Department_Name":"","Department_Head":"Ada"}`), models.DepartmentMessages)

	errs := decodeErrors(t, err)
	assert.Equal(t, []string{"Department ID is required", "Department name is required"}, errs.Messages())
}

func TestDecodeRequiresObject(t *testing.T) {
	v := New()
	for _, body := range []string{``, `[]`, `"text"`, `{"broken"`} {
		_, err := Decode[models.Subject](v, []byte(body), models.SubjectMessages)
		errs := decodeErrors(t, err)
		assert.Equal(t, []string{`"value" must be of type object`}, errs.Messages(), body)
	}
}

func TestDecodeFallsBackToTranslations(t *testing.T) {
	v := New()
	_, err := Decode[models.Schedule](v, []byte(`{"Schedule_ID":1,"Course_ID":1,"Teacher":"T","Days":"MWF","Class_time":"9-10","Room":"R1","Lecture":1,"Laboratory":1,"Units":1,"Extra":true}`), nil)

	errs := decodeErrors(t, err)
	assert.Equal(t, []string{`"Extra" is not allowed`}, errs.Messages())

	_, err = Decode[models.Schedule](v, []byte(`{}`), nil)
	errs = decodeErrors(t, err)
	assert.Contains(t, errs.Messages(), `"Schedule_ID" is required`)
}
