package classifier

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Spoken-number vocabulary. Voice transcripts routinely spell amounts
// out ("ten thousand rupees"), so utterances are rewritten to digits
// before any numeric rule runs.
var unitWords = map[string]int64{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19, "twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var scaleWords = map[string]int64{
	"hundred":  100,
	"thousand": 1_000,
	"k":        1_000,
	"lakh":     100_000,
	"lac":      100_000,
	"lakhs":    100_000,
	"million":  1_000_000,
	"crore":    10_000_000,
	"crores":   10_000_000,
}

var digitsToken = regexp.MustCompile(`^\d+(?:\.\d+)?$`)

// normalizeNumbers rewrites spelled-out amounts to digit tokens and
// removes grouping commas, e.g. "ten thousand rupees" -> "10000 rupees"
// and "1,00,000" -> "100000". Scales also apply to digit tokens
// ("10 thousand", "1.5 lakh").
func normalizeNumbers(text string) string {
	tokens := strings.Fields(text)
	var out []string

	var cur, total float64
	inNumber := false

	flush := func() {
		if !inNumber {
			return
		}
		out = append(out, decimal.NewFromFloat(total+cur).String())
		cur, total = 0, 0
		inNumber = false
	}

	for i := 0; i < len(tokens); i++ {
		token := strings.Trim(tokens[i], ",;:")
		token = strings.ReplaceAll(token, ",", "")

		// "twenty-five" -> twenty five
		if parts := strings.Split(token, "-"); len(parts) == 2 {
			if _, ok := unitWords[parts[0]]; ok {
				if _, ok := unitWords[parts[1]]; ok {
					tokens = append(tokens[:i], append(parts, tokens[i+1:]...)...)
					token = tokens[i]
				}
			}
		}

		switch {
		case digitsToken.MatchString(token):
			// A digit token continues into a following scale word.
			if i+1 < len(tokens) {
				next := strings.Trim(tokens[i+1], ",;:")
				if scale, ok := scaleWords[next]; ok {
					v, _ := strconv.ParseFloat(token, 64)
					flush()
					out = append(out, decimal.NewFromFloat(v*float64(scale)).String())
					i++
					continue
				}
			}
			flush()
			out = append(out, token)

		case isUnitWord(token, tokens, i):
			cur += float64(unitWords[token])
			inNumber = true

		case scaleWords[token] != 0 && inNumber:
			scale := float64(scaleWords[token])
			if scale == 100 {
				if cur == 0 {
					cur = 1
				}
				cur *= 100
			} else {
				if cur == 0 {
					cur = 1
				}
				total += cur * scale
				cur = 0
			}

		case token == "and" && inNumber && i+1 < len(tokens) && isNumberWord(strings.Trim(tokens[i+1], ",;:")):
			// "one hundred and fifty" stays one number.

		default:
			flush()
			out = append(out, tokens[i])
		}
	}
	flush()

	return strings.Join(out, " ")
}

// isUnitWord treats "a"/"an" as one only when a scale follows ("a
// thousand"); elsewhere they are articles.
func isUnitWord(token string, tokens []string, i int) bool {
	v, ok := unitWords[token]
	if !ok {
		return false
	}
	if v == 1 && (token == "a" || token == "an") {
		if i+1 >= len(tokens) {
			return false
		}
		_, scaled := scaleWords[strings.Trim(tokens[i+1], ",;:")]
		return scaled
	}
	return true
}

func isNumberWord(token string) bool {
	if _, ok := unitWords[token]; ok {
		return true
	}
	_, ok := scaleWords[token]
	return ok
}

var (
	numberRe  = regexp.MustCompile(`\d+(?:\.\d+)?`)
	percentRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:%|percent|per cent)`)
)

// findAmounts returns every plain number in the normalized utterance,
// excluding percentages, which are rates and never amounts.
func findAmounts(text string) []decimal.Decimal {
	percentSpans := percentRe.FindAllStringIndex(text, -1)

	var out []decimal.Decimal
	for _, span := range numberRe.FindAllStringIndex(text, -1) {
		if insideAny(span, percentSpans) {
			continue
		}
		d, err := decimal.NewFromString(text[span[0]:span[1]])
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}

func insideAny(span []int, outer [][]int) bool {
	for _, o := range outer {
		if span[0] >= o[0] && span[1] <= o[1] {
			return true
		}
	}
	return false
}

// contextAmount tries a keyword-anchored pattern whose first capture
// group is the number, e.g. "worth ₹50000". Preferred over the bare
// number scan because it disambiguates between multiple amounts.
func contextAmount(re *regexp.Regexp, text string) (decimal.Decimal, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// largest and smallest implement the numeric tie-break heuristic: when
// context anchors fail, the larger of two numbers is the principal or
// budgeted amount and the smaller is what was spent or paid.
func largest(amounts []decimal.Decimal) (decimal.Decimal, bool) {
	if len(amounts) == 0 {
		return decimal.Zero, false
	}
	max := amounts[0]
	for _, a := range amounts[1:] {
		if a.GreaterThan(max) {
			max = a
		}
	}
	return max, true
}

func smallest(amounts []decimal.Decimal) (decimal.Decimal, bool) {
	if len(amounts) == 0 {
		return decimal.Zero, false
	}
	min := amounts[0]
	for _, a := range amounts[1:] {
		if a.LessThan(min) {
			min = a
		}
	}
	return min, true
}
