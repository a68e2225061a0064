package classifier

import (
	"regexp"
	"strings"
)

// typeRule pairs a pattern with the type label it assigns. Rules are
// evaluated in table order and the first match wins, so specific
// patterns (mortgage) must precede generic ones (loan).
type typeRule struct {
	re    *regexp.Regexp
	label string
}

// matchType runs an ordered rule table over the utterance.
func matchType(rules []typeRule, text string) string {
	for _, rule := range rules {
		if rule.re.MatchString(text) {
			return rule.label
		}
	}
	return "Other"
}

// titleRule captures a descriptive noun phrase following a trigger verb.
// Each pattern has exactly one capture group.
type titleRule struct {
	re *regexp.Regexp
}

// extractTitle tries the ordered trigger patterns first, then falls back
// to scanning for known vocabulary keywords. Returns "" when nothing
// usable is found; callers derive a default title from the type instead.
func extractTitle(rules []titleRule, vocabulary []string, text string) string {
	for _, rule := range rules {
		if m := rule.re.FindStringSubmatch(text); m != nil {
			if title := cleanTitle(m[1]); title != "" {
				return title
			}
		}
	}

	for _, word := range vocabulary {
		if strings.Contains(text, word) {
			return word
		}
	}
	return ""
}

var (
	titleNoiseRe   = regexp.MustCompile(`\b(?:a|an|the|my|some|about|around|worth|valued|value|of|rs|inr|rupees|dollars|that|which|is|are)\b`)
	titleDigitsRe  = regexp.MustCompile(`[0-9][0-9.,]*`)
	titleSpacesRe  = regexp.MustCompile(`\s+`)
	titleSymbolsRe = regexp.MustCompile(`[₹$%]`)
)

// cleanTitle strips numbers, currency markers and filler words from a
// captured phrase.
func cleanTitle(s string) string {
	s = titleDigitsRe.ReplaceAllString(s, " ")
	s = titleSymbolsRe.ReplaceAllString(s, " ")
	s = titleNoiseRe.ReplaceAllString(s, " ")
	s = titleSpacesRe.ReplaceAllString(strings.TrimSpace(s), " ")
	return s
}

// titleCase upper-cases the first letter of every word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// normalize lower-cases the utterance and strips terminal punctuation
// before any rule runs.
func normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.TrimRight(text, ".!?")
	return strings.TrimSpace(text)
}
