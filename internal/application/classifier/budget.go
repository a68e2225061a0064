package classifier

import (
	"regexp"

	"github.com/finance-dashboard/agent/internal/domain/entity"
	"github.com/finance-dashboard/agent/internal/domain/valueobject"
)

// Budget category rules, most specific first.
var budgetCategoryRules = []typeRule{
	{regexp.MustCompile(`\b(?:dining|restaurants?|eating out|takeout|food delivery)\b`), "Dining"},
	{regexp.MustCompile(`\b(?:grocer(?:y|ies)|vegetables|supermarket)\b`), "Groceries"},
	{regexp.MustCompile(`\b(?:transport(?:ation)?|fuel|petrol|diesel|commute|uber|taxi|cab)\b`), "Transportation"},
	{regexp.MustCompile(`\b(?:entertainment|movies?|netflix|streaming|concerts?|games)\b`), "Entertainment"},
	{regexp.MustCompile(`\b(?:utilit(?:y|ies)|electricity|water bill|internet|broadband|phone bill)\b`), "Utilities"},
	{regexp.MustCompile(`\b(?:rent|housing)\b`), "Rent"},
	{regexp.MustCompile(`\b(?:shopping|clothes|clothing|apparel|amazon)\b`), "Shopping"},
	{regexp.MustCompile(`\b(?:health|medical|medicines?|pharmacy|gym|fitness)\b`), "Health"},
	{regexp.MustCompile(`\b(?:education|school|tuition|courses?|books)\b`), "Education"},
	{regexp.MustCompile(`\b(?:travel|vacation|trips?|flights?|hotels?)\b`), "Travel"},
	{regexp.MustCompile(`\b(?:subscriptions?|memberships?)\b`), "Subscriptions"},
}

var budgetTitleRules = []titleRule{
	{regexp.MustCompile(`budget(?:ed)?\s+(?:of\s+)?(?:[₹$]?\d+(?:\.\d+)?\s+)?(?:rupees\s+|dollars\s+)?for\s+([a-z ]+?)(?:\s+(?:and|but|this|per)\b|$)`)},
	{regexp.MustCompile(`(?:spent|spending)\s+on\s+([a-z ]+?)(?:\s+(?:and|but|this)\b|$)`)},
	{regexp.MustCompile(`([a-z ]+?)\s+budget\b`)},
}

var (
	budgetedRe = regexp.MustCompile(`budget(?:ed)?\s*(?:of|is|at)?\s*(?:about\s+)?(?:rs\.?\s*|inr\s*|₹\s*|\$\s*)?(\d+(?:\.\d+)?)`)
	spentRe    = regexp.MustCompile(`(?:spent|used|used up|paid)\s+(?:about\s+|around\s+)?(?:rs\.?\s*|inr\s*|₹\s*|\$\s*)?(\d+(?:\.\d+)?)`)
)

func (c *RuleBased) classifyBudget(text string) entity.Record {
	candidates := findAmounts(text)

	budgeted, haveBudgeted := contextAmount(budgetedRe, text)
	spent, haveSpent := contextAmount(spentRe, text)

	// Heuristic tie-break when context anchors fail: the larger number
	// is the budget, the smaller what was already spent.
	if !haveBudgeted {
		if haveSpent && len(candidates) >= 2 {
			budgeted, haveBudgeted = largest(candidates)
		} else if !haveSpent {
			budgeted, haveBudgeted = largest(candidates)
		}
	}
	if !haveBudgeted {
		return nil
	}
	if !haveSpent {
		if len(candidates) >= 2 {
			spent, _ = smallest(candidates)
		}
	}

	category := matchType(budgetCategoryRules, text)

	title := extractTitle(budgetTitleRules, nil, text)
	if title == "" {
		title = category
	}
	if title == "Other" {
		title = "Budget"
	}

	return entity.NewExpense(
		titleCase(title),
		c.formatter.Currency(budgeted),
		c.formatter.Currency(spent),
		valueobject.ParseAmount,
	)
}
