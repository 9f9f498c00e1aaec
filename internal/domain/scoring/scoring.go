// Package scoring computes the love percentage for a pair of names.
package scoring

import (
	"strconv"
	"strings"
	"unicode"
)

// Normalization constants.
const (
	MaxScore   = 100
	foldBase   = 10
	lowCutoff  = 10
	boostBelow = 30
	boost      = 15
)

// Breakdown records every intermediate step of a score computation.
type Breakdown struct {
	// Combined is the lowercased, whitespace-free concatenation of both names.
	Combined string
	// Counts holds per-rune occurrence counts in first-occurrence order.
	Counts []int
	// Passes holds the sequence produced by each folding pass.
	Passes [][]int
	// Digits is the decimal text of the final sequence.
	Digits string
	// Raw is Digits parsed as an integer, before normalization. Digit strings
	// longer than three characters are reduced first (see parseDigits).
	Raw int
	// Score is the normalized percentage.
	Score int
}

// Score returns the love percentage for two names, in [0, 100].
//
// The result is case-insensitive and ignores whitespace. Name order matters
// only through the first-occurrence order of distinct characters.
func Score(name1, name2 string) int {
	return Explain(name1, name2).Score
}

// Explain computes the score and returns all intermediate values.
func Explain(name1, name2 string) Breakdown {
	combined := strip(strings.ToLower(name1) + strings.ToLower(name2))
	counts := countRunes(combined)

	b := Breakdown{
		Combined: combined,
		Counts:   counts,
	}

	seq := counts
	for len(seq) > 2 {
		seq = fold(seq)
		b.Passes = append(b.Passes, seq)
	}

	b.Digits = join(seq)
	b.Raw = parseDigits(b.Digits)
	b.Score = normalize(b.Raw)
	return b
}

// strip drops every Unicode whitespace rune.
func strip(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// countRunes counts occurrences of each rune, ordered by first occurrence.
func countRunes(s string) []int {
	index := make(map[rune]int)
	var counts []int
	for _, r := range s {
		if i, ok := index[r]; ok {
			counts[i]++
			continue
		}
		index[r] = len(counts)
		counts = append(counts, 1)
	}
	return counts
}

// fold sums each value with its mirror, mod 10. An odd middle element is
// paired with itself and ends the pass.
func fold(seq []int) []int {
	n := len(seq)
	out := make([]int, 0, (n+1)/2)
	for i := 0; i < (n+1)/2; i++ {
		j := n - 1 - i
		out = append(out, (seq[i]+seq[j])%foldBase)
		if i == j {
			break
		}
	}
	return out
}

func join(seq []int) string {
	var sb strings.Builder
	for _, v := range seq {
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// parseDigits parses the joined digits. An empty string yields 0.
//
// Digit strings longer than three characters never start with zero and are
// therefore above MaxScore; only their value mod 100 survives normalization,
// so they are mapped to 1000 plus their last two digits to stay in range.
func parseDigits(digits string) int {
	if digits == "" {
		return 0
	}
	if len(digits) > 3 {
		tail, _ := strconv.Atoi(digits[len(digits)-2:])
		return 1000 + tail
	}
	n, _ := strconv.Atoi(digits)
	return n
}

func normalize(p int) int {
	if p > MaxScore {
		p %= MaxScore
	}
	if p < lowCutoff {
		p *= foldBase
	}
	if p < boostBelow {
		p += boost
	}
	return min(MaxScore, p)
}
