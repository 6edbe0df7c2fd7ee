package wellbeing

// Mood is the overall team mood.
type Mood string

const (
	MoodPositive Mood = "positive"
	MoodNeutral  Mood = "neutral"
	MoodStressed Mood = "stressed"
)

// StressLevel is the overall team stress level.
type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

// Signals are the counts a Scorer reads from the current snapshot.
type Signals struct {
	TotalMessages   int `json:"total_messages"`
	OpenIssueCount  int `json:"open_issue_count"`
	InProgressCount int `json:"in_progress_count"`
}

// Summary is the wellbeing snapshot handed to orchestrators.
type Summary struct {
	OverallMood        Mood              `json:"overall_mood"`
	OverallStressLevel StressLevel       `json:"overall_stress_level"`
	OverloadedMembers  []string          `json:"overloaded_members"`
	MemberFeelings     map[string]string `json:"member_feelings"`
}
