package models

// AttendanceStatus defines the possible status values for a day's attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "Present"
	Absent  AttendanceStatus = "Absent"
	HalfDay AttendanceStatus = "Half-day"
)

// RentStatus defines the possible status values for a rent payment.
type RentStatus string

const (
	RentPending RentStatus = "Pending"
	RentPaid    RentStatus = "Paid"
)
