package entity

// Kind names a classification target accepted by the utterance classifier.
type Kind string

const (
	KindAsset        Kind = "asset"
	KindLiability    Kind = "liability"
	KindBudget       Kind = "budget"
	KindDailyExpense Kind = "daily-expense"
)

// ParseKind validates a kind string coming from an external caller.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindAsset, KindLiability, KindBudget, KindDailyExpense:
		return Kind(s), true
	}
	return "", false
}

// Collection returns the collection that records of this kind are stored in.
func (k Kind) Collection() Collection {
	switch k {
	case KindAsset:
		return CollectionAssets
	case KindLiability:
		return CollectionLiabilities
	case KindBudget:
		return CollectionExpenses
	case KindDailyExpense:
		return CollectionDailyExpenses
	}
	return ""
}
