package classifier

import (
	"regexp"

	"github.com/finance-dashboard/agent/internal/domain/entity"
)

// Liability type rules. Order is load-bearing: "mortgage"/"home loan"
// must be tested before the generic loan pattern or every mortgage
// utterance would come out as a personal loan.
var liabilityTypeRules = []typeRule{
	{regexp.MustCompile(`\b(?:mortgage|home loan|housing loan|house loan)\b`), "Mortgage"},
	{regexp.MustCompile(`\b(?:car loan|auto loan|vehicle loan|bike loan)\b`), "Car Loan"},
	{regexp.MustCompile(`\b(?:student loan|education loan|college loan)\b`), "Student Loan"},
	{regexp.MustCompile(`\b(?:credit card|card balance|card debt)\b`), "Credit Card"},
	{regexp.MustCompile(`\b(?:medical|hospital|doctor)\b`), "Medical Debt"},
	{regexp.MustCompile(`\bpersonal loan\b`), "Personal Loan"},
	{regexp.MustCompile(`\bloan\b`), "Personal Loan"},
}

var liabilityTitleRules = []titleRule{
	{regexp.MustCompile(`(?:i\s+(?:have|owe|took|got)|my)\s+(?:a\s+|an\s+)?([a-z ]+?)(?:\s+(?:with|of|at|worth|that|which|and)\b|$)`)},
	{regexp.MustCompile(`(?:paying off|repaying)\s+(?:a\s+|an\s+|my\s+)?([a-z ]+?)(?:\s+(?:with|of|at)\b|$)`)},
}

var liabilityVocabulary = []string{
	"mortgage", "home loan", "car loan", "student loan", "credit card",
	"personal loan", "loan",
}

var liabilityDefaultTitles = map[string]string{
	"Mortgage":      "Home Loan",
	"Car Loan":      "Car Loan",
	"Student Loan":  "Student Loan",
	"Credit Card":   "Credit Card Balance",
	"Medical Debt":  "Medical Bill",
	"Personal Loan": "Personal Loan",
	"Other":         "Liability",
}

var (
	liabilityAmountRe   = regexp.MustCompile(`(?:owe|debt of|loan of|balance of|amount of|principal of|borrowed)\s+(?:about\s+|around\s+)?(?:rs\.?\s*|inr\s*|₹\s*|\$\s*)?(\d+(?:\.\d+)?)`)
	liabilityInterestRe = regexp.MustCompile(`(?:interest(?:\s+rate)?|rate)\s*(?:of|is|at)?\s*(\d+(?:\.\d+)?)\s*(?:%|percent|per cent)?`)
	// "at 7.5% interest" puts the number before the keyword.
	liabilityInterestPreRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:%|percent|per cent)\s*(?:interest|apr|rate)`)
	liabilityPaymentRe  = regexp.MustCompile(`(?:payment|emi|installment|instalment|paying|pay)\s*(?:of|is)?\s*(?:about\s+)?(?:rs\.?\s*|inr\s*|₹\s*|\$\s*)?(\d+(?:\.\d+)?)`)
	liabilityLateRe     = regexp.MustCompile(`\b(?:late|overdue|missed|defaulted)\b`)
	liabilityWarningRe  = regexp.MustCompile(`\b(?:due soon|almost due|behind)\b`)
)

func (c *RuleBased) classifyLiability(text string) entity.Record {
	candidates := findAmounts(text)

	amount, ok := contextAmount(liabilityAmountRe, text)
	if !ok {
		amount, ok = largest(candidates)
	}
	if !ok {
		return nil
	}

	liabilityType := matchType(liabilityTypeRules, text)

	title := extractTitle(liabilityTitleRules, liabilityVocabulary, text)
	if title == "" {
		title = liabilityDefaultTitles[liabilityType]
	}

	interest := "0%"
	if rate, ok := contextAmount(liabilityInterestRe, text); ok {
		interest = c.formatter.Percent(rate)
	} else if rate, ok := contextAmount(liabilityInterestPreRe, text); ok {
		interest = c.formatter.Percent(rate)
	}

	payment, ok := contextAmount(liabilityPaymentRe, text)
	if !ok {
		// The smaller of two amounts is the monthly payment, the larger
		// the principal.
		if len(candidates) >= 2 {
			payment, _ = smallest(candidates)
			ok = true
		}
	}
	paymentStr := ""
	if ok {
		paymentStr = c.formatter.Currency(payment)
	}

	status := entity.LiabilityStatusCurrent
	switch {
	case liabilityLateRe.MatchString(text):
		status = entity.LiabilityStatusLate
	case liabilityWarningRe.MatchString(text):
		status = entity.LiabilityStatusWarning
	}

	return entity.NewLiability(
		titleCase(title),
		c.formatter.Currency(amount),
		liabilityType,
		interest,
		paymentStr,
		c.relativeDate(text),
		status,
	)
}
