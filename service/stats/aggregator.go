package stats_service

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/vuciv/imessage-wrapped/domain"
	names_service "github.com/vuciv/imessage-wrapped/service/names"
	"github.com/vuciv/imessage-wrapped/util"
)

//----------------------------------------------------------------------------------------------------
// Statistics Aggregation
//----------------------------------------------------------------------------------------------------

// MessageStore is the read interface the aggregator needs from the archive.
type MessageStore interface {
	FetchMessages(scope domain.Scope, window domain.TimeWindow) ([]domain.MessageRecord, error)
	ParticipantCounts(scope domain.Scope, window domain.TimeWindow) ([]domain.ParticipantCount, error)
	AttachmentCount(scope domain.Scope, window domain.TimeWindow) (int64, error)
	OriginalSender(ref domain.TapbackRef) (participantID string, isFromMe bool, found bool, err error)
}

const (
	topTalkerLimit   = 10
	laughLeaderLimit = 5
	sampleLimit      = 3
)

// sweetPhrases marks a text as a "sweet" sample candidate.
var sweetPhrases = []string{"love you", "miss you", "thank you"}

// Aggregator computes the full metric battery for one resolved scope.
type Aggregator struct {
	store    MessageStore
	resolver *names_service.Resolver
	loc      *time.Location
	rng      *rand.Rand
	selfName string
}

// NewAggregator wires the aggregator for one run. The rand source is injected
// so tests can pin the sample draws.
func NewAggregator(store MessageStore, resolver *names_service.Resolver, loc *time.Location, rng *rand.Rand, selfName string) *Aggregator {
	return &Aggregator{store: store, resolver: resolver, loc: loc, rng: rng, selfName: selfName}
}

// round1 keeps one decimal place, matching the display precision.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Aggregate runs every derived-metric computation over the scope and window.
// A scope with zero messages aborts with ErrNoMessagesInRange before any
// metric is produced, since most of them divide by the total.
func (a *Aggregator) Aggregate(mode domain.Mode, scope domain.Scope, window domain.TimeWindow) (*domain.MetricsBundle, error) {
	msgs, err := a.store.FetchMessages(scope, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch in-scope messages: %w", err)
	}
	if len(msgs) == 0 {
		return nil, fmt.Errorf("%w: scope holds no messages for this window", domain.ErrNoMessagesInRange)
	}

	m := &domain.MetricsBundle{
		TotalCount:     int64(len(msgs)),
		ReactionCounts: make(map[domain.ReactionKind]int64, len(domain.ReactionKinds)),
	}
	for _, kind := range domain.ReactionKinds {
		m.ReactionCounts[kind] = 0
	}

	var hourBuckets [24]int64
	dayBuckets := make(map[string]int64)
	dayLabels := make(map[string]string)

	for _, rec := range msgs {
		if rec.IsFromMe {
			m.SelfCount++
		} else {
			m.OtherCount++
		}

		local := domain.TimeFromNative(rec.DateNative, a.loc)
		hour := local.Hour()
		hourBuckets[hour]++
		if hour >= 1 && hour <= 5 {
			if rec.IsFromMe {
				m.LateNightSelf++
			} else {
				m.LateNightOther++
			}
		}

		dayKey := local.Format("2006-01-02")
		dayBuckets[dayKey]++
		if _, ok := dayLabels[dayKey]; !ok {
			dayLabels[dayKey] = local.Format("January 2")
		}

		m.MonthHistogram[int(local.Month())-1]++
		m.WeekdayHistogram[int(local.Weekday())]++

		if rec.Reaction != "" {
			m.ReactionCounts[rec.Reaction]++
			m.TotalReactions++
		}

		if text := util.ValueOrDefault(rec.Text); text != "" {
			m.WordCount += int64(strings.Count(text, " ") + 1)
		}
	}

	m.SelfPercent = round1(float64(m.SelfCount) / float64(m.TotalCount) * 100)
	m.OtherPercent = round1(float64(m.OtherCount) / float64(m.TotalCount) * 100)
	// Every target year is treated as 365 days, leap years and partial data
	// included; the commentary thresholds are calibrated to this denominator.
	m.DailyAverage = round1(float64(m.TotalCount) / 365.0)

	// Histogram ties break toward the lowest bucket index.
	for hour, count := range hourBuckets {
		if count > m.PeakHourCount {
			m.PeakHour = hour
			m.PeakHourCount = count
		}
	}
	for i, count := range m.MonthHistogram {
		if count > m.PeakMonthCount {
			m.PeakMonth = time.Month(i + 1)
			m.PeakMonthCount = count
		}
	}
	for i, count := range m.WeekdayHistogram {
		if count > m.BusiestWeekdayCount {
			m.BusiestWeekday = time.Weekday(i)
			m.BusiestWeekdayCount = count
		}
	}

	// Calendar dates sort lexicographically, so iterating sorted keys with a
	// strict comparison breaks ties toward the earliest day.
	dayKeys := make([]string, 0, len(dayBuckets))
	for key := range dayBuckets {
		dayKeys = append(dayKeys, key)
	}
	sort.Strings(dayKeys)
	var busiestKey string
	for _, key := range dayKeys {
		if dayBuckets[key] > m.BusiestDayCount {
			busiestKey = key
			m.BusiestDayCount = dayBuckets[key]
		}
	}
	m.BusiestDay = dayLabels[busiestKey]

	if mode == domain.ModeGroup || mode == domain.ModeAll {
		if m.TopTalkers, err = a.topTalkers(scope, window); err != nil {
			return nil, err
		}
	}
	if mode == domain.ModeGroup && m.ReactionCounts[domain.ReactionLaughed] > 0 {
		if m.LaughLeaders, err = a.laughLeaders(msgs); err != nil {
			return nil, err
		}
	}

	m.SweetMessages = a.sampleSweet(msgs)
	m.RandomMessages = a.sampleRandom(msgs)

	if m.AttachmentCount, err = a.store.AttachmentCount(scope, window); err != nil {
		return nil, fmt.Errorf("failed to count attachments: %w", err)
	}

	return m, nil
}

// topTalkers resolves the count-descending participant rows into the top-10
// display-name leaderboard. Self collapses to the configured self name.
func (a *Aggregator) topTalkers(scope domain.Scope, window domain.TimeWindow) ([]domain.LeaderboardEntry, error) {
	counts, err := a.store.ParticipantCounts(scope, window)
	if err != nil {
		return nil, fmt.Errorf("failed to query participant counts: %w", err)
	}

	var entries []domain.LeaderboardEntry
	for _, pc := range counts {
		if len(entries) == topTalkerLimit {
			break
		}
		name := a.selfName
		if !pc.IsFromMe {
			name = a.resolver.Resolve(pc.ParticipantID)
		}
		entries = append(entries, domain.LeaderboardEntry{Name: name, Count: pc.Count})
	}
	return entries, nil
}

// laughLeaders attributes each laugh tapback to the sender of the message it
// reacted to and ranks the top receivers. Tapbacks whose original message
// cannot be located are skipped rather than misattributed.
func (a *Aggregator) laughLeaders(msgs []domain.MessageRecord) ([]domain.LeaderboardEntry, error) {
	counts := make(map[string]int64)
	var order []string // first-seen order keeps ties stable

	for _, rec := range msgs {
		if rec.Reaction != domain.ReactionLaughed {
			continue
		}
		ref := domain.ParseTapbackRef(rec.TapbackRef)
		participantID, isFromMe, found, err := a.store.OriginalSender(ref)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve laugh tapback target: %w", err)
		}
		if !found {
			continue
		}
		key := participantID
		if isFromMe {
			key = ""
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	var entries []domain.LeaderboardEntry
	for _, key := range order {
		if len(entries) == laughLeaderLimit {
			break
		}
		name := a.selfName
		if key != "" {
			name = a.resolver.Resolve(key)
		}
		entries = append(entries, domain.LeaderboardEntry{Name: name, Count: counts[key]})
	}
	return entries, nil
}
