package models

import "time"

// LeaveType enumerates reasons for a leave request.
type LeaveType string

const (
	LeaveSick      LeaveType = "Sick"
	LeaveVacation  LeaveType = "Vacation"
	LeaveEmergency LeaveType = "Emergency"
	LeaveOther     LeaveType = "Other"
)

// LeaveStatus tracks the approval state of a leave request.
type LeaveStatus string

const (
	LeaveApproved LeaveStatus = "Approved"
	LeavePending  LeaveStatus = "Pending"
	LeaveRejected LeaveStatus = "Rejected"
)

// Leave is a faculty leave request.
type Leave struct {
	Document
	LeaveID   int64       `db:"leave_id" json:"Leave_ID" validate:"required"`
	LeaveType LeaveType   `db:"leave_type" json:"Leave_Type" validate:"required,oneof=Sick Vacation Emergency Other"`
	FacultyID int64       `db:"faculty_id" json:"Faculty_ID" validate:"required"`
	Date      time.Time   `db:"date" json:"Date" validate:"required"`
	Status    LeaveStatus `db:"status" json:"Status" validate:"required,oneof=Approved Pending Rejected"`
}

var LeaveMessages = Messages{
	"Leave_ID.required":   "Leave ID is required",
	"Leave_Type.oneof":    "Leave type must be Sick, Vacation, Emergency, or Other",
	"Leave_Type.required": "Leave type is required",
	"Faculty_ID.required": "Faculty ID is required",
	"Date.type":           "Date must be a valid ISO date",
	"Date.required":       "Date is required",
	"Status.oneof":        "Status must be Approved, Pending, or Rejected",
	"Status.required":     "Status is required",
}
