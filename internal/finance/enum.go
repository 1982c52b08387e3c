package finance

type EntryType string

const (
	EntryIncome  EntryType = "Income"
	EntryExpense EntryType = "Expense"
)

func (t EntryType) IsValid() bool {
	return t == EntryIncome || t == EntryExpense
}
