package performance

type GoalStatus string

const (
	GoalNotStarted GoalStatus = "Not Started"
	GoalInProgress GoalStatus = "In Progress"
	GoalCompleted  GoalStatus = "Completed"
	GoalCanceled   GoalStatus = "Canceled"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalNotStarted, GoalInProgress, GoalCompleted, GoalCanceled:
		return true
	}
	return false
}

var GoalStatuses = []string{string(GoalNotStarted), string(GoalInProgress), string(GoalCompleted), string(GoalCanceled)}

const (
	MinRating = 1
	MaxRating = 5
)
