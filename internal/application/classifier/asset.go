package classifier

import (
	"regexp"

	"github.com/finance-dashboard/agent/internal/domain/entity"
)

// Asset type rules, most specific first.
var assetTypeRules = []typeRule{
	{regexp.MustCompile(`\b(?:house|home|apartment|flat|property|real estate|land|plot)\b`), "Real Estate"},
	{regexp.MustCompile(`\b(?:mutual funds?|sip|index funds?)\b`), "Mutual Funds"},
	{regexp.MustCompile(`\b(?:stocks?|shares?|equity|equities|portfolio)\b`), "Stocks"},
	{regexp.MustCompile(`\b(?:fixed deposit|fd|term deposit|recurring deposit)\b`), "Fixed Deposit"},
	{regexp.MustCompile(`\b(?:gold|silver|jewell?ery)\b`), "Gold"},
	{regexp.MustCompile(`\b(?:bitcoin|ethereum|crypto(?:currency)?)\b`), "Crypto"},
	{regexp.MustCompile(`\b(?:car|bike|motorcycle|scooter|vehicle)\b`), "Vehicle"},
	{regexp.MustCompile(`\b(?:savings|bank balance|cash|deposit)\b`), "Savings"},
}

var assetTitleRules = []titleRule{
	{regexp.MustCompile(`(?:i\s+(?:have|own|hold|bought|purchased)|my)\s+(?:a\s+|an\s+|some\s+)?([a-z ]+?)\s+(?:worth|valued|that|which|at|currently)\b`)},
	{regexp.MustCompile(`(?:i\s+(?:have|own|hold))\s+(?:a\s+|an\s+|some\s+)?([a-z ]+?)(?:\s+(?:and|with)\b|$)`)},
}

var assetVocabulary = []string{
	"house", "apartment", "property", "stocks", "shares", "mutual fund",
	"fixed deposit", "gold", "bitcoin", "car", "savings",
}

var assetDefaultTitles = map[string]string{
	"Real Estate":   "Property",
	"Mutual Funds":  "Mutual Fund Portfolio",
	"Stocks":        "Stock Portfolio",
	"Fixed Deposit": "Fixed Deposit",
	"Gold":          "Gold Holdings",
	"Crypto":        "Crypto Holdings",
	"Vehicle":       "Vehicle",
	"Savings":       "Savings Account",
	"Other":         "Asset",
}

var (
	assetValueRe  = regexp.MustCompile(`(?:worth|valued at|value of|valued|at|for)\s+(?:about\s+|around\s+)?(?:rs\.?\s*|inr\s*|₹\s*|\$\s*)?(\d+(?:\.\d+)?)`)
	assetChangeRe = regexp.MustCompile(`(?:up|down|grew|gained|increased|decreased|dropped|fell|lost)(?:\s+by)?\s+(\d+(?:\.\d+)?)\s*(?:%|percent|per cent)`)
	assetDownRe   = regexp.MustCompile(`\b(?:down|dropped|fell|lost|decreased|declined)\b`)
)

func (c *RuleBased) classifyAsset(text string) entity.Record {
	value, ok := contextAmount(assetValueRe, text)
	if !ok {
		value, ok = largest(findAmounts(text))
	}
	if !ok {
		return nil
	}

	assetType := matchType(assetTypeRules, text)

	title := extractTitle(assetTitleRules, assetVocabulary, text)
	if title == "" {
		title = assetDefaultTitles[assetType]
	}

	change := "0%"
	if pct, ok := contextAmount(assetChangeRe, text); ok {
		change = c.formatter.Percent(pct)
	}

	trend := entity.TrendUp
	if assetDownRe.MatchString(text) {
		trend = entity.TrendDown
	}

	return entity.NewAsset(
		titleCase(title),
		c.formatter.Currency(value),
		assetType,
		c.relativeDate(text),
		change,
		trend,
	)
}
