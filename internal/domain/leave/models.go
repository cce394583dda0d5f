package leave

import "time"

type Request struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employeeId"`
	LeaveType  Type      `json:"leaveType"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Reason     string    `json:"reason"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateRequestInput struct {
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
}

type Balance struct {
	ID                   int64     `json:"id"`
	EmployeeID           string    `json:"employeeId"`
	AnnualLeaveBalance   int       `json:"annualLeaveBalance"`
	SickLeaveBalance     int       `json:"sickLeaveBalance"`
	PersonalLeaveBalance int       `json:"personalLeaveBalance"`
	CreatedAt            time.Time `json:"createdAt"`
}

type CreateBalanceInput struct {
	EmployeeID           string
	AnnualLeaveBalance   int
	SickLeaveBalance     int
	PersonalLeaveBalance int
}
