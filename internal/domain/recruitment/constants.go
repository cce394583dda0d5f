package recruitment

type VacancyStatus string

const (
	VacancyOpen   VacancyStatus = "Open"
	VacancyClosed VacancyStatus = "Closed"
)

func (s VacancyStatus) Valid() bool {
	return s == VacancyOpen || s == VacancyClosed
}

type ApplicantStatus string

const (
	ApplicantApplied   ApplicantStatus = "Applied"
	ApplicantScreening ApplicantStatus = "Screening"
	ApplicantInterview ApplicantStatus = "Interview"
	ApplicantOffer     ApplicantStatus = "Offer"
	ApplicantHired     ApplicantStatus = "Hired"
	ApplicantRejected  ApplicantStatus = "Rejected"
)

// ApplicantStatusOrder is also the key order of the stats breakdown.
var ApplicantStatusOrder = []ApplicantStatus{
	ApplicantApplied, ApplicantScreening, ApplicantInterview, ApplicantOffer, ApplicantHired, ApplicantRejected,
}

func (s ApplicantStatus) Valid() bool {
	for _, known := range ApplicantStatusOrder {
		if s == known {
			return true
		}
	}
	return false
}

var (
	VacancyStatuses   = []string{string(VacancyOpen), string(VacancyClosed)}
	ApplicantStatuses = []string{"Applied", "Screening", "Interview", "Offer", "Hired", "Rejected"}
)
