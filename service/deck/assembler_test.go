package deck_service

import (
	"testing"

	"github.com/vuciv/imessage-wrapped/domain"
)

func testMetrics() *domain.MetricsBundle {
	return &domain.MetricsBundle{
		TotalCount:   100,
		SelfCount:    60,
		OtherCount:   40,
		SelfPercent:  60,
		OtherPercent: 40,
		ReactionCounts: map[domain.ReactionKind]int64{
			domain.ReactionLaughed: 0,
		},
		SweetMessages:  []string{"love you"},
		RandomMessages: []string{"an ordinary message"},
	}
}

func kinds(sections []domain.Section) []domain.SectionKind {
	out := make([]domain.SectionKind, len(sections))
	for i, s := range sections {
		out[i] = s.Kind
	}
	return out
}

func assertCompactOrders(t *testing.T, sections []domain.Section) {
	t.Helper()
	for i, s := range sections {
		if s.Order != i {
			t.Errorf("section %s at position %d has order %d", s.Kind, i, s.Order)
		}
	}
}

func TestAssemble_AllModeOmitsBalanceWithoutGaps(t *testing.T) {
	sections := Assemble(domain.ModeAll, "Your Year in Messages", "YOU", "", 2023, testMetrics())

	for _, s := range sections {
		if s.Kind == domain.SectionBalance {
			t.Error("balance section present in all mode")
		}
	}
	assertCompactOrders(t, sections)
}

func TestAssemble_IndividualMode(t *testing.T) {
	sections := Assemble(domain.ModeIndividual, "YOU & Alice", "YOU", "Alice", 2023, testMetrics())

	var sawBalance, sawLeaderboard bool
	for _, s := range sections {
		switch s.Kind {
		case domain.SectionBalance:
			sawBalance = true
		case domain.SectionLeaderboard:
			sawLeaderboard = true
		}
	}
	if !sawBalance {
		t.Error("individual mode should include the balance section")
	}
	if sawLeaderboard {
		t.Error("individual mode should not include a leaderboard")
	}
	assertCompactOrders(t, sections)
}

func TestAssemble_LaughLeaderboardConditions(t *testing.T) {
	m := testMetrics()
	m.ReactionCounts[domain.ReactionLaughed] = 10
	m.LaughLeaders = []domain.LeaderboardEntry{{Name: "Alice", Count: 10}}

	group := Assemble(domain.ModeGroup, "Movie Club", "YOU", "", 2023, m)
	var found bool
	for _, s := range group {
		if s.Kind == domain.SectionLaughLeaderboard {
			found = true
		}
	}
	if !found {
		t.Error("group mode with laughs should include the laugh leaderboard")
	}

	// All mode never shows it, even with laughs present.
	all := Assemble(domain.ModeAll, "Your Year in Messages", "YOU", "", 2023, m)
	for _, s := range all {
		if s.Kind == domain.SectionLaughLeaderboard {
			t.Error("all mode should not include the laugh leaderboard")
		}
	}
	assertCompactOrders(t, group)
}

func TestAssemble_EmptySamplesSkipped(t *testing.T) {
	m := testMetrics()
	m.SweetMessages = nil
	m.RandomMessages = nil

	sections := Assemble(domain.ModeIndividual, "YOU & Alice", "YOU", "Alice", 2023, m)
	for _, s := range sections {
		if s.Kind == domain.SectionSweet || s.Kind == domain.SectionRandom {
			t.Errorf("empty sample section %s should be skipped", s.Kind)
		}
	}
	assertCompactOrders(t, sections)
}

func TestAssemble_FixedSlidesAlwaysPresent(t *testing.T) {
	sections := Assemble(domain.ModeIndividual, "YOU & Alice", "YOU", "Alice", 2023, testMetrics())
	got := kinds(sections)

	wantAlways := []domain.SectionKind{
		domain.SectionIntro, domain.SectionTotal, domain.SectionDaily,
		domain.SectionPeak, domain.SectionReactions, domain.SectionLateNight,
		domain.SectionBusiest, domain.SectionMonths, domain.SectionDayOfWeek,
		domain.SectionFunStats, domain.SectionFinale,
	}
	for _, want := range wantAlways {
		var found bool
		for _, k := range got {
			if k == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing always-on section %s", want)
		}
	}

	if got[0] != domain.SectionIntro {
		t.Errorf("first section: got %s, want intro", got[0])
	}
	if got[len(got)-1] != domain.SectionFinale {
		t.Errorf("last section: got %s, want finale", got[len(got)-1])
	}
}
