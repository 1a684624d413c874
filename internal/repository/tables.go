package repository

// Tables for the campus entities; columns follow the db tags in internal/models.
var (
	AttendanceTable = Table{Name: "attendance", Columns: []string{"attendance_id", "date", "status"}}
	CourseTable     = Table{Name: "courses", Columns: []string{"course_id", "course_name", "credits", "catalog_no", "academic_yr"}}
	DepartmentTable = Table{Name: "departments", Columns: []string{"department_id", "department_name", "department_head"}}
	EnrollmentTable = Table{Name: "enrollments", Columns: []string{"enrollment_id", "student_id", "course_id", "enrollment_date"}}
	FacultyTable    = Table{Name: "faculty", Columns: []string{
		"faculty_id", "first_name", "last_name", "gender", "age", "email", "contact",
		"faculty_role", "department_id", "leave_id", "attendance_id", "student_grade",
	}}
	GradeTable    = Table{Name: "grades", Columns: []string{"grade_id", "student_id", "subj_desc", "units", "credits", "remarks"}}
	LeaveTable    = Table{Name: "leaves", Columns: []string{"leave_id", "leave_type", "faculty_id", "date", "status"}}
	ScheduleTable = Table{Name: "schedules", Columns: []string{
		"schedule_id", "course_id", "teacher", "days", "class_time", "room", "lecture", "laboratory", "units",
	}}
	StudentTable = Table{Name: "students", Columns: []string{
		"student_id", "student_status", "year_level", "first_name", "last_name", "middle_name",
		"address", "email", "phone", "date_of_birth", "place_of_birth", "sex", "religion",
		"nationality", "civil_status", "occupation", "work_address", "course_id", "subject_id", "enrollment_id",
	}}
	SubjectTable = Table{Name: "subjects", Columns: []string{"subject_id", "subject_name", "subject_description", "course_id"}}
)
