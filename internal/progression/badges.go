package progression

// Badge IDs and the milestones that unlock them. Milestones are exact-count
// triggers computed from the post-update set size, so replays and reorderings
// can never fire one twice.
const (
	// BadgeFirstFive unlocks on the 5th distinct completed lesson.
	BadgeFirstFive = "first-five"
	FirstFiveCount = 5

	// BadgeChallengeMaster unlocks on the 3rd distinct completed challenge.
	BadgeChallengeMaster = "challenge-master"
	ChallengeMasterCount = 3

	// BadgeWeekStreak unlocks when the practice streak reaches 7 days.
	BadgeWeekStreak = "week-streak"
	WeekStreakDays  = 7
)

// BadgeName returns a human-readable label for a badge ID.
func BadgeName(id string) string {
	switch id {
	case BadgeFirstFive:
		return "Quick Learner"
	case BadgeChallengeMaster:
		return "Challenge Master"
	case BadgeWeekStreak:
		return "Week Warrior"
	default:
		return id
	}
}
