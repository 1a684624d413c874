package models

// Schedule is a timetable slot for a course.
type Schedule struct {
	Document
	ScheduleID int64  `db:"schedule_id" json:"Schedule_ID" validate:"required"`
	CourseID   int64  `db:"course_id" json:"Course_ID" validate:"required"`
	Teacher    string `db:"teacher" json:"Teacher" validate:"required,max=100"`
	Days       string `db:"days" json:"Days" validate:"required,max=50"`
	ClassTime  string `db:"class_time" json:"Class_time" validate:"required"`
	Room       string `db:"room" json:"Room" validate:"required,max=100"`
	Lecture    int64  `db:"lecture" json:"Lecture" validate:"required,gt=0"`
	Laboratory int64  `db:"laboratory" json:"Laboratory" validate:"required,gt=0"`
	Units      int64  `db:"units" json:"Units" validate:"required,gt=0"`
}

var ScheduleMessages = Messages{
	"Schedule_ID.type":     "Schedule_ID must be a number",
	"Schedule_ID.required": "Schedule_ID is required",
	"Course_ID.type":       "Course_ID must be a number",
	"Course_ID.required":   "Course_ID is required",
	"Teacher.type":         "Teacher must be a string",
	"Teacher.max":          "Teacher cannot exceed 100 characters",
	"Teacher.required":     "Teacher is required",
	"Days.type":            "Days must be a string",
	"Days.max":             "Days cannot exceed 50 characters",
	"Days.required":        "Days are required",
	"Class_time.type":      "Class_time must be a string",
	"Class_time.required":  "Class_time is required",
	"Room.type":            "Room must be a string",
	"Room.max":             "Room cannot exceed 100 characters",
	"Room.required":        "Room is required",
	"Lecture.type":         "Lecture hours must be a number",
	"Lecture.gt":           "Lecture hours must be a positive number",
	"Lecture.required":     "Lecture hours are required",
	"Laboratory.type":      "Laboratory hours must be a number",
	"Laboratory.gt":        "Laboratory hours must be a positive number",
	"Laboratory.required":  "Laboratory hours are required",
	"Units.type":           "Units must be a number",
	"Units.gt":             "Units must be a positive number",
	"Units.required":       "Units are required",
}
