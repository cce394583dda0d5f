package attendance

import (
	"time"

	"hris/internal/platform/optional"
)

type Record struct {
	ID           int64      `json:"id"`
	EmployeeID   string     `json:"employeeId"`
	CheckInTime  time.Time  `json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type CheckInInput struct {
	EmployeeID   string
	CheckInTime  time.Time
	CheckOutTime *time.Time
}

type UpdateInput struct {
	CheckInTime  optional.Value[time.Time]
	CheckOutTime optional.Value[time.Time]
}
