package job

import (
	"strings"
	"unicode"

	"github.com/hatchling-dev/jobscout/internal/domain"
)

// DedupKey builds the cross-source duplicate key: lower-cased,
// punctuation-stripped title|company|location. This is the primary dedup
// signal; apply_url equality is a secondary signal checked separately, never
// mixed into this key.
func DedupKey(title, company, location string) string {
	return normalizeField(title) + "|" + normalizeField(company) + "|" + normalizeField(location)
}

func normalizeField(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Canonicalize trims and collapses whitespace in the text fields the dedup
// key and the matcher depend on.
func Canonicalize(j domain.Job) domain.Job {
	j.Title = CleanText(j.Title)
	j.Company = CleanText(j.Company)
	j.Location = CleanText(j.Location)
	j.ApplyURL = strings.TrimSpace(j.ApplyURL)
	return j
}

// Deduplicate collapses records that represent the same posting across
// sources in a single linear pass, keeping first-seen order. The merge order
// handed in by the orchestrator is deterministic (registry order), so the
// survivor for a given key is stable across runs.
func Deduplicate(jobs []domain.Job) []domain.Job {
	if len(jobs) == 0 {
		return jobs
	}

	seenKey := make(map[string]struct{}, len(jobs))
	seenURL := make(map[string]struct{}, len(jobs))
	out := make([]domain.Job, 0, len(jobs))

	for _, j := range jobs {
		j = Canonicalize(j)

		key := DedupKey(j.Title, j.Company, j.Location)
		if _, dup := seenKey[key]; dup {
			continue
		}

		if j.ApplyURL != "" {
			if _, dup := seenURL[j.ApplyURL]; dup {
				continue
			}
			seenURL[j.ApplyURL] = struct{}{}
		}

		seenKey[key] = struct{}{}
		out = append(out, j)
	}

	return out
}
