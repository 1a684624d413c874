package service

import "github.com/davidmichaelmontiza/Campus-Information-System/internal/models"

// Resource carries the metadata that differs between campus entities.
type Resource struct {
	// Name is the lowercase key used in cache keys, metrics labels and export filenames.
	Name            string
	Entity          string
	Path            string
	NotFoundMessage string
	DeletedMessage  string
	Messages        models.Messages
}

func newResource(name, entity, path string, messages models.Messages) Resource {
	return Resource{
		Name:            name,
		Entity:          entity,
		Path:            path,
		NotFoundMessage: entity + " not found",
		DeletedMessage:  entity + " deleted successfully",
		Messages:        messages,
	}
}

var (
	AttendanceResource = Resource{
		Name:            "attendance",
		Entity:          "Attendance",
		Path:            "/attendance",
		NotFoundMessage: "Attendance record not found",
		DeletedMessage:  "Attendance record deleted successfully",
		Messages:        models.AttendanceMessages,
	}
	CourseResource     = newResource("course", "Course", "/course", models.CourseMessages)
	DepartmentResource = newResource("department", "Department", "/department", models.DepartmentMessages)
	EnrollmentResource = newResource("enrollment", "Enrollment", "/enrollment", models.EnrollmentMessages)
	FacultyResource    = newResource("faculty", "Faculty", "/faculty", models.FacultyMessages)
	GradeResource      = newResource("grade", "Grade", "/grade", models.GradeMessages)
	LeaveResource      = newResource("leave", "Leave", "/leaves", models.LeaveMessages)
	ScheduleResource   = newResource("schedule", "Schedule", "/schedule", models.ScheduleMessages)
	StudentResource    = newResource("student", "Student", "/student", models.StudentMessages)
	SubjectResource    = newResource("subject", "Subject", "/subject", models.SubjectMessages)
)
