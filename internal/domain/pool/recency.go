package pool

import "time"

// Recency windows for the admin-pools-by-email queries. They are tuned
// independently: manage-link recovery only cares about parties that have not
// passed yet, reuse looks back over previous seasons.
const (
	ManageLinkRecoveryWindow = 7 * 24 * time.Hour
	ReuseWindowYears         = 2
)

// ManageLinkCutoff is the oldest event date still offered in a forgot-link mail.
func ManageLinkCutoff(now time.Time) time.Time {
	return now.Add(-ManageLinkRecoveryWindow)
}

// ReuseCutoff is the oldest event date still offered for reuse.
func ReuseCutoff(now time.Time) time.Time {
	return now.AddDate(-ReuseWindowYears, 0, 0)
}

// AdminPoolSummary is the read-only projection returned by the admin queries.
type AdminPoolSummary struct {
	ListURL   string
	EventDate *time.Time
	Locale    string
	Location  string
}
