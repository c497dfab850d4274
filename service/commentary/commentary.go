package commentary_service

import (
	"math"
	"time"
)

//----------------------------------------------------------------------------------------------------
// Threshold-Ladder Commentary
//----------------------------------------------------------------------------------------------------

// Rule is one rung of a ladder: the first rule whose predicate accepts the
// value supplies the text. Every ladder ends in a catch-all rung, so
// evaluation always lands somewhere.
type Rule struct {
	Applies func(v float64) bool
	Text    string
}

// evaluate walks a ladder top to bottom, first match wins.
func evaluate(rules []Rule, v float64) string {
	for _, rule := range rules {
		if rule.Applies(v) {
			return rule.Text
		}
	}
	return ""
}

// above returns a predicate for "value strictly greater than n".
func above(n float64) func(float64) bool {
	return func(v float64) bool { return v > n }
}

// always is the catch-all bottom rung.
func always(float64) bool { return true }

var totalRules = []Rule{
	{above(50000), "You two basically share a brain at this point. That is a WILD number of messages."},
	{above(20000), "That's an entire novel's worth of texting. Tolstoy would be proud."},
	{above(10000), "A serious texting habit. Your thumbs deserve a vacation."},
	{above(5000), "A steady stream of conversation all year long."},
	{above(1000), "A respectable showing. You kept in touch."},
	{always, "Quality over quantity. Every message counted."},
}

var dailyRules = []Rule{
	{above(100), "That's not texting, that's a full-time job."},
	{above(50), "Barely an hour went by without a message."},
	{above(20), "A conversation that never really stopped."},
	{above(5), "A few check-ins a day keeps the silence away."},
	{always, "Slow and steady. No notification fatigue here."},
}

var lateNightRules = []Rule{
	{above(500), "The 3am conversations were doing some heavy lifting this year."},
	{above(100), "More than a few nights ended well after they should have."},
	{above(0), "The occasional late-night chat. Nothing a coffee couldn't fix."},
	{always, "In bed by midnight. Your sleep schedule thanks you."},
}

var reactionRules = []Rule{
	{above(1000), "You react to everything. The tapback menu fears you."},
	{above(100), "A healthy tapback habit. Why type when a heart will do?"},
	{above(0), "Tapbacks used sparingly, for maximum effect."},
	{always, "Not a single tapback. Words only. Respect."},
}

var busiestDayRules = []Rule{
	{above(500), "Something BIG happened that day. The phones were on fire."},
	{above(200), "That was a day of serious conversation."},
	{always, "Even your biggest day kept things civilized."},
}

// peakHourRules bucket the day into named stretches rather than thresholds;
// the value is the hour itself.
var peakHourRules = []Rule{
	{func(h float64) bool { return h >= 5 && h < 12 }, "A morning texter. Messages with the first coffee of the day."},
	{func(h float64) bool { return h >= 12 && h < 17 }, "Peak chatter in the afternoon. The workday never stood a chance."},
	{func(h float64) bool { return h >= 17 && h < 22 }, "An evening talker. The day isn't over until it's been discussed."},
	{always, "A night owl through and through."},
}

// weekdayComments is a direct lookup by weekday rather than a ladder.
var weekdayComments = map[time.Weekday]string{
	time.Sunday:    "Sunday scaries, shared. Nothing resets a week like a long chat.",
	time.Monday:    "Monday talkers. Misery loves company.",
	time.Tuesday:   "Tuesday, the sleeper hit of your week.",
	time.Wednesday: "Hump day heroes. Midweek is peak week.",
	time.Thursday:  "Thursday: close enough to the weekend to start planning it.",
	time.Friday:    "Friday energy. The weekend starts in the group chat.",
	time.Saturday:  "Saturday socialites. Weekends were made for this.",
}

// TotalComment maps the year's total message count to its tier text.
func TotalComment(total int64) string {
	return evaluate(totalRules, float64(total))
}

// BalanceComment maps the self/other split to its tier text. A split within
// five percentage points is a near-tie and is checked before the asymmetric
// branches.
func BalanceComment(selfPercent, otherPercent float64) string {
	diff := math.Abs(selfPercent - otherPercent)
	switch {
	case diff < 5:
		return "Nearly a perfect 50/50 split. This is what balance looks like."
	case selfPercent > otherPercent && diff >= 30:
		return "You carry this conversation. Like, REALLY carry it."
	case selfPercent > otherPercent:
		return "You do a bit more of the talking. Someone has to."
	case diff >= 30:
		return "They do most of the talking. You're a world-class listener."
	default:
		return "They talk a little more than you do. A comfortable rhythm."
	}
}

// DailyComment maps the fixed-365-denominator daily average to its tier text.
func DailyComment(avg float64) string {
	return evaluate(dailyRules, avg)
}

// PeakHourComment maps the peak local hour to its time-of-day text.
func PeakHourComment(hour int) string {
	return evaluate(peakHourRules, float64(hour))
}

// LateNightComment maps the 1am-5am message count to its tier text.
func LateNightComment(count int64) string {
	return evaluate(lateNightRules, float64(count))
}

// ReactionComment maps the total tapback count to its tier text.
func ReactionComment(total int64) string {
	return evaluate(reactionRules, float64(total))
}

// BusiestDayComment maps the busiest day's message count to its tier text.
func BusiestDayComment(count int64) string {
	return evaluate(busiestDayRules, float64(count))
}

// WeekdayComment looks up the flavor text for the busiest weekday.
func WeekdayComment(day time.Weekday) string {
	return weekdayComments[day]
}
