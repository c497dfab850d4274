package deck_service

import (
	"time"

	"github.com/vuciv/imessage-wrapped/domain"
	commentary_service "github.com/vuciv/imessage-wrapped/service/commentary"
)

//----------------------------------------------------------------------------------------------------
// Slide Deck Assembly
//----------------------------------------------------------------------------------------------------

// Payload structs carry the metrics subset each slide renders. They are the
// handoff contract to the external renderer and marshal to plain JSON.

type IntroPayload struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
}

type TotalPayload struct {
	Total   int64  `json:"total"`
	Comment string `json:"comment"`
}

type LeaderboardPayload struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
}

type BalancePayload struct {
	SelfName     string  `json:"selfName"`
	ContactName  string  `json:"contactName,omitempty"`
	SelfPercent  float64 `json:"selfPercent"`
	OtherPercent float64 `json:"otherPercent"`
	Comment      string  `json:"comment"`
}

type DailyPayload struct {
	Average float64 `json:"average"`
	Comment string  `json:"comment"`
}

type PeakPayload struct {
	Hour    int    `json:"hour"`
	Count   int64  `json:"count"`
	Comment string `json:"comment"`
}

type ReactionsPayload struct {
	Counts  map[domain.ReactionKind]int64 `json:"counts"`
	Total   int64                         `json:"total"`
	Comment string                        `json:"comment"`
}

type LateNightPayload struct {
	SelfCount  int64  `json:"selfCount"`
	OtherCount int64  `json:"otherCount"`
	Comment    string `json:"comment"`
}

type MessagesPayload struct {
	Messages []string `json:"messages"`
}

type BusiestPayload struct {
	Day     string `json:"day"`
	Count   int64  `json:"count"`
	Comment string `json:"comment"`
}

type MonthsPayload struct {
	Histogram [12]int64  `json:"histogram"`
	PeakMonth time.Month `json:"peakMonth"`
	PeakCount int64      `json:"peakCount"`
}

type DayOfWeekPayload struct {
	Histogram [7]int64     `json:"histogram"`
	Busiest   time.Weekday `json:"busiest"`
	Count     int64        `json:"count"`
	Comment   string       `json:"comment"`
}

type FunStatsPayload struct {
	WordCount       int64 `json:"wordCount"`
	AttachmentCount int64 `json:"attachmentCount"`
}

type FinalePayload struct {
	Title string `json:"title"`
	Total int64  `json:"total"`
	Year  int    `json:"year"`
}

// Assemble builds the ordered slide list for one run. Inclusion is
// conditional on mode and data presence, and skipped slides leave no gap:
// orders are always compact and consecutive.
func Assemble(mode domain.Mode, title, selfName, contactName string, year int, m *domain.MetricsBundle) []domain.Section {
	var sections []domain.Section
	add := func(kind domain.SectionKind, payload any) {
		sections = append(sections, domain.Section{
			Kind:    kind,
			Order:   len(sections),
			Payload: payload,
		})
	}

	add(domain.SectionIntro, IntroPayload{Title: title, Year: year})
	add(domain.SectionTotal, TotalPayload{
		Total:   m.TotalCount,
		Comment: commentary_service.TotalComment(m.TotalCount),
	})

	if mode == domain.ModeGroup || mode == domain.ModeAll {
		add(domain.SectionLeaderboard, LeaderboardPayload{Entries: m.TopTalkers})
	}
	if mode == domain.ModeGroup && m.ReactionCounts[domain.ReactionLaughed] > 0 && len(m.LaughLeaders) > 0 {
		add(domain.SectionLaughLeaderboard, LeaderboardPayload{Entries: m.LaughLeaders})
	}

	// Balance is meaningless across many participants.
	if mode != domain.ModeAll {
		add(domain.SectionBalance, BalancePayload{
			SelfName:     selfName,
			ContactName:  contactName,
			SelfPercent:  m.SelfPercent,
			OtherPercent: m.OtherPercent,
			Comment:      commentary_service.BalanceComment(m.SelfPercent, m.OtherPercent),
		})
	}

	add(domain.SectionDaily, DailyPayload{
		Average: m.DailyAverage,
		Comment: commentary_service.DailyComment(m.DailyAverage),
	})
	add(domain.SectionPeak, PeakPayload{
		Hour:    m.PeakHour,
		Count:   m.PeakHourCount,
		Comment: commentary_service.PeakHourComment(m.PeakHour),
	})
	add(domain.SectionReactions, ReactionsPayload{
		Counts:  m.ReactionCounts,
		Total:   m.TotalReactions,
		Comment: commentary_service.ReactionComment(m.TotalReactions),
	})
	add(domain.SectionLateNight, LateNightPayload{
		SelfCount:  m.LateNightSelf,
		OtherCount: m.LateNightOther,
		Comment:    commentary_service.LateNightComment(m.LateNightSelf + m.LateNightOther),
	})

	if len(m.SweetMessages) > 0 {
		add(domain.SectionSweet, MessagesPayload{Messages: m.SweetMessages})
	}
	if len(m.RandomMessages) > 0 {
		add(domain.SectionRandom, MessagesPayload{Messages: m.RandomMessages})
	}

	add(domain.SectionBusiest, BusiestPayload{
		Day:     m.BusiestDay,
		Count:   m.BusiestDayCount,
		Comment: commentary_service.BusiestDayComment(m.BusiestDayCount),
	})
	add(domain.SectionMonths, MonthsPayload{
		Histogram: m.MonthHistogram,
		PeakMonth: m.PeakMonth,
		PeakCount: m.PeakMonthCount,
	})
	add(domain.SectionDayOfWeek, DayOfWeekPayload{
		Histogram: m.WeekdayHistogram,
		Busiest:   m.BusiestWeekday,
		Count:     m.BusiestWeekdayCount,
		Comment:   commentary_service.WeekdayComment(m.BusiestWeekday),
	})
	add(domain.SectionFunStats, FunStatsPayload{
		WordCount:       m.WordCount,
		AttachmentCount: m.AttachmentCount,
	})
	add(domain.SectionFinale, FinalePayload{Title: title, Total: m.TotalCount, Year: year})

	return sections
}
