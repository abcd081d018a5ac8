// Package match scores job postings against a candidate profile using plain
// lexical overlap. The base score measures how much of the job's own text the
// profile covers, deliberately not a symmetric Jaccard: a long posting with a
// small honest overlap should score low.
package match

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/hatchling-dev/jobscout/internal/domain"
)

// ErrEmptyProfile rejects a scoring request with no usable profile text.
// Checked before any network call is made.
var ErrEmptyProfile = errors.New("profile text is required for matching")

const (
	// titleWeight scales the title-only overlap bonus.
	titleWeight = 15.0

	// maxOverlapKeywords caps the keyword list returned per job.
	maxOverlapKeywords = 25
)

// Tokenize lower-cases the text and splits it into alphanumeric runs,
// dropping single-character tokens. Unicode-naive on purpose.
func Tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})

	var b strings.Builder
	flush := func() {
		if b.Len() > 1 {
			tokens[b.String()] = struct{}{}
		}
		b.Reset()
	}

	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// Matcher ranks jobs against a profile
type Matcher struct{}

func New() *Matcher {
	return &Matcher{}
}

// Score computes the 0..100 match score for one job plus the overlapping
// keywords. Jobs with no scorable text score zero.
func (m *Matcher) Score(profileTokens map[string]struct{}, j domain.Job) (float64, []string) {
	jobTokens := Tokenize(j.Title + " " + j.Company + " " + j.Location + " " + j.Description)
	if len(jobTokens) == 0 {
		return 0, nil
	}

	overlap := make([]string, 0, len(profileTokens))
	for tok := range jobTokens {
		if _, ok := profileTokens[tok]; ok {
			overlap = append(overlap, tok)
		}
	}

	score := float64(len(overlap)) / float64(len(jobTokens)) * 100.0

	titleTokens := Tokenize(j.Title)
	if len(titleTokens) > 0 {
		titleHits := 0
		for tok := range titleTokens {
			if _, ok := profileTokens[tok]; ok {
				titleHits++
			}
		}
		score += float64(titleHits) / float64(len(titleTokens)) * titleWeight
	}

	score = math.Max(0, math.Min(100, score))
	score = math.Round(score*100) / 100

	sort.Strings(overlap)
	if len(overlap) > maxOverlapKeywords {
		overlap = overlap[:maxOverlapKeywords]
	}

	return score, overlap
}

// Rank scores every job and sorts descending by score. Ties keep the incoming
// order, so scores depend only on content, never on position.
func (m *Matcher) Rank(profileText string, jobs []domain.Job) ([]domain.MatchedJob, error) {
	if strings.TrimSpace(profileText) == "" {
		return nil, ErrEmptyProfile
	}

	profileTokens := Tokenize(profileText)

	matched := make([]domain.MatchedJob, 0, len(jobs))
	for _, j := range jobs {
		score, overlap := m.Score(profileTokens, j)
		matched = append(matched, domain.MatchedJob{
			Job:             j,
			MatchScore:      score,
			OverlapKeywords: overlap,
		})
	}

	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].MatchScore > matched[b].MatchScore
	})

	return matched, nil
}
