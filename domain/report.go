package domain

import "time"

//----------------------------------------------------------------------------------------------------
// Aggregated Metrics and Report Document
//----------------------------------------------------------------------------------------------------

// LeaderboardEntry is one ranked participant with a resolved display name.
type LeaderboardEntry struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// MetricsBundle holds every derived metric for one resolved scope and window.
// Invariants: SelfCount+OtherCount == TotalCount; the 12 month buckets and
// the 7 weekday buckets each sum to TotalCount.
type MetricsBundle struct {
	TotalCount   int64   `json:"totalCount"`
	SelfCount    int64   `json:"selfCount"`
	OtherCount   int64   `json:"otherCount"`
	SelfPercent  float64 `json:"selfPercent"`  // One decimal place
	OtherPercent float64 `json:"otherPercent"` // One decimal place
	DailyAverage float64 `json:"dailyAverage"` // Total/365, fixed denominator

	PeakHour      int   `json:"peakHour"` // 0-23 local hour
	PeakHourCount int64 `json:"peakHourCount"`

	ReactionCounts map[ReactionKind]int64 `json:"reactionCounts"`
	TotalReactions int64                  `json:"totalReactions"`

	LateNightSelf  int64 `json:"lateNightSelf"`  // Local hour in [1,5], sent by self
	LateNightOther int64 `json:"lateNightOther"` // Local hour in [1,5], sent by others

	BusiestDay      string `json:"busiestDay"` // Formatted local month/day
	BusiestDayCount int64  `json:"busiestDayCount"`

	MonthHistogram [12]int64  `json:"monthHistogram"` // Index 0 = January
	PeakMonth      time.Month `json:"peakMonth"`
	PeakMonthCount int64      `json:"peakMonthCount"`

	WeekdayHistogram    [7]int64     `json:"weekdayHistogram"` // Index 0 = Sunday
	BusiestWeekday      time.Weekday `json:"busiestWeekday"`
	BusiestWeekdayCount int64        `json:"busiestWeekdayCount"`

	TopTalkers   []LeaderboardEntry `json:"topTalkers,omitempty"`   // Group/all modes, top 10
	LaughLeaders []LeaderboardEntry `json:"laughLeaders,omitempty"` // Group mode, top 5 laugh receivers

	SweetMessages  []string `json:"sweetMessages"`  // <=3 sampled affectionate texts
	RandomMessages []string `json:"randomMessages"` // <=3 sampled ordinary texts

	WordCount       int64 `json:"wordCount"` // spaces+1 per non-empty text, summed
	AttachmentCount int64 `json:"attachmentCount"`
}

// SectionKind identifies one slide of the report deck.
type SectionKind string

const (
	SectionIntro            SectionKind = "intro"
	SectionTotal            SectionKind = "total"
	SectionLeaderboard      SectionKind = "leaderboard"
	SectionLaughLeaderboard SectionKind = "laugh_leaderboard"
	SectionBalance          SectionKind = "balance"
	SectionDaily            SectionKind = "daily"
	SectionPeak             SectionKind = "peak"
	SectionReactions        SectionKind = "reactions"
	SectionLateNight        SectionKind = "late_night"
	SectionSweet            SectionKind = "sweet"
	SectionRandom           SectionKind = "random"
	SectionBusiest          SectionKind = "busiest"
	SectionMonths           SectionKind = "months"
	SectionDayOfWeek        SectionKind = "day_of_week"
	SectionFunStats         SectionKind = "fun_stats"
	SectionFinale           SectionKind = "finale"
)

// Section is one slide handed to the external renderer. Orders are compact
// and consecutive: a skipped conditional slide leaves no gap.
type Section struct {
	Kind    SectionKind `json:"kind"`
	Order   int         `json:"order"`
	Payload any         `json:"payload"`
}

// Report is the structured document the whole run produces. Rendering it
// (HTML, terminal, anything else) is an external concern.
type Report struct {
	RunID       string    `json:"runId"`
	Year        int       `json:"year"`
	Mode        Mode      `json:"mode"`
	Title       string    `json:"title"`
	SelfName    string    `json:"selfName"`
	ContactName string    `json:"contactName,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
	Sections    []Section `json:"sections"`
}
