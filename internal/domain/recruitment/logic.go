package recruitment

// BuildStats reduces vacancy statuses and applicant statuses into the recruitment summary.
// Every applicant status appears in the breakdown, zero when unused.
func BuildStats(vacancies []VacancyStatus, applicants []ApplicantStatus) Stats {
	stats := Stats{
		TotalVacancies:     len(vacancies),
		TotalApplicants:    len(applicants),
		ApplicantsByStatus: make(map[string]int, len(ApplicantStatusOrder)),
	}
	for _, status := range ApplicantStatusOrder {
		stats.ApplicantsByStatus[string(status)] = 0
	}
	for _, status := range vacancies {
		if status == VacancyOpen {
			stats.OpenVacancies++
		}
	}
	for _, status := range applicants {
		stats.ApplicantsByStatus[string(status)]++
	}
	return stats
}
