package models

import "time"

// AttendanceStatus enumerates attendance outcomes.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
	AttendanceExcused AttendanceStatus = "Excused"
)

// Attendance records a single presence entry.
type Attendance struct {
	Document
	AttendanceID int64            `db:"attendance_id" json:"Attendance_ID" validate:"required"`
	Date         time.Time        `db:"date" json:"Date" validate:"required"`
	Status       AttendanceStatus `db:"status" json:"Status" validate:"required,oneof=Present Absent Late Excused"`
}

var AttendanceMessages = Messages{
	"Attendance_ID.required": "Attendance ID is required",
	"Date.type":              "Please provide a valid date",
	"Date.required":          "Date is required",
	"Status.oneof":           "Status must be either Present, Absent, Late or Excused",
	"Status.required":        "Status is required",
}
