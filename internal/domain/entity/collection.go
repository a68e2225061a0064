// Package entity defines the core business entities for the domain layer.
package entity

// Collection identifies one locally persisted set of financial records.
type Collection string

const (
	CollectionAssets        Collection = "assets"
	CollectionLiabilities   Collection = "liabilities"
	CollectionExpenses      Collection = "expenses"
	CollectionDailyExpenses Collection = "dailyExpenses"
	CollectionIncome        Collection = "income"
	CollectionTransactions  Collection = "transactions"
)

// singularNames maps collections to the singular noun used in event names.
var singularNames = map[Collection]string{
	CollectionAssets:        "asset",
	CollectionLiabilities:   "liability",
	CollectionExpenses:      "expense",
	CollectionDailyExpenses: "dailyExpense",
	CollectionIncome:        "income",
	CollectionTransactions:  "transaction",
}

// Collections returns every known collection in a stable order.
func Collections() []Collection {
	return []Collection{
		CollectionAssets,
		CollectionLiabilities,
		CollectionExpenses,
		CollectionDailyExpenses,
		CollectionIncome,
		CollectionTransactions,
	}
}

// Valid reports whether c names a known collection.
func (c Collection) Valid() bool {
	_, ok := singularNames[c]
	return ok
}

// AddedEvent returns the event name emitted when a record joins c,
// e.g. "assetAdded" for the assets collection.
func (c Collection) AddedEvent() string {
	return singularNames[c] + "Added"
}

// UpdatedEvent returns the event name emitted when a record in c changes.
func (c Collection) UpdatedEvent() string {
	return singularNames[c] + "Updated"
}

// DeletedEvent returns the event name emitted when a record leaves c.
func (c Collection) DeletedEvent() string {
	return singularNames[c] + "Deleted"
}

// Record is implemented by every financial record that the store can hold.
type Record interface {
	// RecordID returns the client-generated identifier, unique within the
	// record's collection.
	RecordID() string

	// RecordCollection returns the collection the record belongs to.
	RecordCollection() Collection
}
