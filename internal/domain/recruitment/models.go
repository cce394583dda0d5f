package recruitment

import (
	"time"

	"hris/internal/platform/optional"
)

type Vacancy struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	DepartmentID *int64        `json:"departmentId"`
	Status       VacancyStatus `json:"status"`
	PostedDate   time.Time     `json:"postedDate"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type CreateVacancyInput struct {
	Title        string
	Description  string
	DepartmentID *int64
	Status       VacancyStatus
	PostedDate   time.Time
}

type UpdateVacancyInput struct {
	Title        optional.Value[string]
	Description  optional.Value[string]
	DepartmentID optional.Value[int64]
	Status       optional.Value[VacancyStatus]
	PostedDate   optional.Value[time.Time]
}

type Applicant struct {
	ID              int64           `json:"id"`
	FullName        string          `json:"fullName"`
	Email           string          `json:"email"`
	PhoneNumber     *string         `json:"phoneNumber"`
	ResumeURL       *string         `json:"resumeUrl"`
	JobVacancyID    int64           `json:"jobVacancyId"`
	ApplicationDate time.Time       `json:"applicationDate"`
	Status          ApplicantStatus `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type CreateApplicantInput struct {
	FullName        string
	Email           string
	PhoneNumber     *string
	ResumeURL       *string
	JobVacancyID    int64
	ApplicationDate time.Time
	Status          ApplicantStatus
}

type Stats struct {
	TotalVacancies     int            `json:"totalVacancies"`
	OpenVacancies      int            `json:"openVacancies"`
	TotalApplicants    int            `json:"totalApplicants"`
	ApplicantsByStatus map[string]int `json:"applicantsByStatus"`
}
