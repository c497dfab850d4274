package commentary_service

import (
	"strings"
	"testing"
	"time"
)

func TestTotalComment_Tiers(t *testing.T) {
	if got := TotalComment(75000); !strings.Contains(got, "WILD") {
		t.Errorf("75000: got %q, want the top 'share a brain' tier", got)
	}
	if got := TotalComment(800); !strings.Contains(got, "Quality over quantity") {
		t.Errorf("800: got %q, want the bottom tier", got)
	}
	// First match wins: 25000 clears the 20000 rung, not the 50000 one.
	if got := TotalComment(25000); got != totalRules[1].Text {
		t.Errorf("25000: got %q, want %q", got, totalRules[1].Text)
	}
}

func TestTotalComment_BoundaryIsExclusive(t *testing.T) {
	// Exactly 50000 does not clear the >50000 rung.
	if got := TotalComment(50000); got == totalRules[0].Text {
		t.Errorf("50000 landed on the >50000 tier: %q", got)
	}
}

func TestBalanceComment_NearTie(t *testing.T) {
	got := BalanceComment(52, 48)
	if !strings.Contains(got, "50/50") {
		t.Errorf("52/48: got %q, want the near-tie text", got)
	}
	// The near-tie rule is evaluated before the asymmetric branches.
	if other := BalanceComment(48, 52); other != got {
		t.Errorf("near-tie should be symmetric: %q vs %q", got, other)
	}
}

func TestBalanceComment_Asymmetric(t *testing.T) {
	heavy := BalanceComment(80, 20)
	if !strings.Contains(heavy, "You carry") {
		t.Errorf("80/20: got %q, want the heavy self tier", heavy)
	}
	light := BalanceComment(20, 80)
	if !strings.Contains(light, "listener") {
		t.Errorf("20/80: got %q, want the heavy other tier", light)
	}
}

func TestPeakHourComment_Buckets(t *testing.T) {
	cases := map[int]string{
		8:  "morning",
		14: "afternoon",
		19: "evening",
		2:  "night owl",
	}
	for hour, want := range cases {
		if got := PeakHourComment(hour); !strings.Contains(strings.ToLower(got), want) {
			t.Errorf("hour %d: got %q, want a %q bucket", hour, got, want)
		}
	}
}

func TestLateNightComment_ZeroTier(t *testing.T) {
	if got := LateNightComment(0); !strings.Contains(got, "midnight") {
		t.Errorf("0: got %q, want the bottom tier", got)
	}
	if got := LateNightComment(1); got == LateNightComment(0) {
		t.Error("a single late-night message should clear the >0 rung")
	}
}

func TestWeekdayComment_CoversAllDays(t *testing.T) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if WeekdayComment(d) == "" {
			t.Errorf("no comment for %v", d)
		}
	}
}

func TestLaddersEndInCatchAll(t *testing.T) {
	for name, rules := range map[string][]Rule{
		"total":      totalRules,
		"daily":      dailyRules,
		"lateNight":  lateNightRules,
		"reactions":  reactionRules,
		"busiestDay": busiestDayRules,
		"peakHour":   peakHourRules,
	} {
		if got := evaluate(rules, -1); got == "" {
			t.Errorf("%s ladder has no catch-all", name)
		}
	}
}
