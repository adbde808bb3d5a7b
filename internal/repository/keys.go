package repository

// Stable document keys. One serialized collection per entity kind, plus
// the singleton settings record and the bootstrap marker.
const (
	KeyTransactions = "transactions"
	KeyCategories   = "categories"
	KeyNotes        = "notes"
	KeyBudgets      = "budgets"
	KeySettings     = "settings"
	KeyInitialized  = "initialized"
)

// AllKeys lists every document key the repository layer owns.
func AllKeys() []string {
	return []string{
		KeyTransactions,
		KeyCategories,
		KeyNotes,
		KeyBudgets,
		KeySettings,
		KeyInitialized,
	}
}
