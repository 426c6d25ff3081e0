package fuzz

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ratio returns the similarity of a and b. Either side empty scores 0.
func Ratio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	total := len([]rune(a)) + len([]rune(b))
	return percent(2*edlib.LCS(a, b), total)
}

// PartialRatio returns the best Ratio between the shorter string and the
// windows of the longer string starting at each position. A window is as long
// as the shorter string, cut short at the end of the longer one, so a query
// running past the end of a title still scores on its overlap.
func PartialRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	needle := string(shorter)
	if strings.Contains(string(longer), needle) {
		return 100
	}

	best := 0
	for start := range longer {
		end := min(start+len(shorter), len(longer))
		if r := Ratio(needle, string(longer[start:end])); r > best {
			best = r
		}
	}
	return best
}

// TokenSortRatio returns the Ratio of the processed, token-sorted forms of a and b.
func TokenSortRatio(a, b string) int {
	return Ratio(sortTokens(Process(a)), sortTokens(Process(b)))
}

// Process drops non-ASCII characters from s, replaces everything but
// letters, digits and '_' with spaces, lower-cases and trims the result.
// "Amélie" becomes "amlie".
func Process(s string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= utf8.RuneSelf:
			return -1
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			return r
		}
		return ' '
	}, s)
	return strings.TrimSpace(Lower(mapped))
}

// Lower lower-cases s using Dutch casing rules.
func Lower(s string) string {
	// A Caser keeps state, so one is built per call.
	return cases.Lower(language.Dutch).String(s)
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// percent rounds 100*num/den half to even.
func percent(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(math.RoundToEven(100 * (float64(num) / float64(den))))
}
