package stats_service

import (
	"strings"

	"github.com/vuciv/imessage-wrapped/domain"
	"github.com/vuciv/imessage-wrapped/util"
)

//----------------------------------------------------------------------------------------------------
// Sample Message Selection
//----------------------------------------------------------------------------------------------------

var quoteStripper = strings.NewReplacer(`"`, "", "“", "", "”", "")

// isSweet marks short texts containing one of the affectionate phrases.
func isSweet(text string) bool {
	if len(text) == 0 || len(text) >= 100 {
		return false
	}
	lowered := strings.ToLower(text)
	for _, phrase := range sweetPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}

// isRandomCandidate marks ordinary mid-length texts, excluding URLs and the
// "Loved ..."/"Liked ..."/"Laughed ..." echo artifacts tapback sync embeds
// as plain text.
func isRandomCandidate(text string) bool {
	if len(text) < 15 || len(text) >= 100 {
		return false
	}
	if strings.Contains(text, "http") {
		return false
	}
	for _, prefix := range []string{"Loved", "Liked", "Laughed"} {
		if strings.HasPrefix(text, prefix) {
			return false
		}
	}
	return true
}

// draw takes up to limit elements of pool in a random order. The draw is a
// true random sample across runs unless the run seed is pinned.
func (a *Aggregator) draw(pool []string, limit int) []string {
	a.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > limit {
		pool = pool[:limit]
	}
	return pool
}

// sampleSweet draws up to three affectionate texts, quote characters stripped.
func (a *Aggregator) sampleSweet(msgs []domain.MessageRecord) []string {
	var pool []string
	for _, rec := range msgs {
		if text := util.ValueOrDefault(rec.Text); isSweet(text) {
			pool = append(pool, quoteStripper.Replace(text))
		}
	}
	return a.draw(pool, sampleLimit)
}

// sampleRandom draws up to three ordinary texts.
func (a *Aggregator) sampleRandom(msgs []domain.MessageRecord) []string {
	var pool []string
	for _, rec := range msgs {
		if text := util.ValueOrDefault(rec.Text); isRandomCandidate(text) {
			pool = append(pool, text)
		}
	}
	return a.draw(pool, sampleLimit)
}
