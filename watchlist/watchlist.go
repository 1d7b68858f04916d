package watchlist

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"

	"reg-sentinel/errors"
)

// Watchlist flags usernames that contain configured patterns. Matching is
// advisory: a hit only enriches the registration alert, it never turns a
// registration away.
type Watchlist struct {
	matcher *goahocorasick.Machine
}

// New builds the Aho-Corasick automaton over a normalized version of the
// configured patterns. An empty pattern list is a configuration mistake.
func New(words []string) (*Watchlist, error) {
	if len(words) == 0 {
		return nil, errors.ErrEmptyWatchWords
	}

	patterns := make([][]rune, len(words))
	for i, word := range words {
		patterns[i] = normalizeRunes([]rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Watchlist{matcher: m}, nil
}

// Hits reports which patterns occur in the username, after normalization.
// Registration usernames routinely lean on leet speak and separator noise
// to dodge naive matching, so both sides are normalized the same way.
func (w *Watchlist) Hits(username string) []string {
	normalized := normalizeRunes([]rune(username))
	if len(normalized) == 0 {
		return nil
	}

	spans := w.matcher.MultiPatternSearch(normalized, false)
	if len(spans) == 0 {
		return nil
	}

	found := make([]string, 0, len(spans))
	for _, span := range spans {
		found = append(found, string(span.Word))
	}
	return lo.Uniq(found)
}

// normalizeRunes lowercases, maps leet-speak characters back to their
// standard counterparts, and drops separator noise.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common leet speak characters back to their standard
// alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
