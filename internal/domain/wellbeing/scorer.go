package wellbeing

// Member identifiers used by the threshold scorer's placeholder workload view.
const (
	memberAlice   = "alice.dev"
	memberBob     = "bob.eng"
	memberCharlie = "charlie.tech"
)

type moodRule struct {
	when func(Signals) bool
	mood Mood
}

type stressRule struct {
	when  func(Signals) bool
	level StressLevel
}

// Rules are evaluated in order; the first match wins.
var moodRules = []moodRule{
	{when: func(s Signals) bool { return s.TotalMessages > 5 && s.OpenIssueCount < 3 }, mood: MoodPositive},
	{when: func(s Signals) bool { return s.OpenIssueCount > 5 || s.InProgressCount > 2 }, mood: MoodStressed},
}

var stressRules = []stressRule{
	{when: func(s Signals) bool { return s.OpenIssueCount > 3 || s.InProgressCount > 1 }, level: StressHigh},
	{when: func(s Signals) bool { return s.OpenIssueCount > 1 }, level: StressMedium},
}

// ThresholdScorer is a deterministic scorer built from fixed count thresholds.
type ThresholdScorer struct{}

// NewThresholdScorer creates the default scorer.
func NewThresholdScorer() ThresholdScorer {
	return ThresholdScorer{}
}

// Score evaluates the mood and stress tables and the placeholder workload view.
func (ThresholdScorer) Score(s Signals) Summary {
	return Summary{
		OverallMood:        moodFor(s),
		OverallStressLevel: stressFor(s),
		OverloadedMembers:  overloadedFor(s),
		MemberFeelings:     feelingsFor(s),
	}
}

func moodFor(s Signals) Mood {
	for _, rule := range moodRules {
		if rule.when(s) {
			return rule.mood
		}
	}
	return MoodNeutral
}

func stressFor(s Signals) StressLevel {
	for _, rule := range stressRules {
		if rule.when(s) {
			return rule.level
		}
	}
	return StressLow
}

func overloaded(s Signals) bool {
	return s.InProgressCount > 1
}

func overloadedFor(s Signals) []string {
	if overloaded(s) {
		return []string{memberAlice, memberCharlie}
	}
	return []string{}
}

func feelingsFor(s Signals) map[string]string {
	charlie := "focused"
	if overloaded(s) {
		charlie = "overwhelmed"
	}
	return map[string]string{
		memberAlice:   "motivated",
		memberBob:     "satisfied",
		memberCharlie: charlie,
	}
}
