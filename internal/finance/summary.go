package finance

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Summarize totals income and expenses. Entries whose amount does not parse
// are skipped and reported through log.
func Summarize(entries []Entry, log logrus.FieldLogger) Breakdown {
	b := Breakdown{
		Summary: Summary{
			TotalIncome:   decimal.Zero,
			TotalExpenses: decimal.Zero,
		},
		IncomeByCategory:  map[string]decimal.Decimal{},
		ExpenseByCategory: map[string]decimal.Decimal{},
	}

	for _, e := range entries {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			log.WithError(err).WithField("entry_id", e.ID).Warn("Skipping entry with unreadable amount")
			continue
		}

		switch e.Type {
		case EntryIncome:
			b.Summary.TotalIncome = b.Summary.TotalIncome.Add(amount)
			b.IncomeByCategory[e.Category] = b.IncomeByCategory[e.Category].Add(amount)
		case EntryExpense:
			b.Summary.TotalExpenses = b.Summary.TotalExpenses.Add(amount)
			b.ExpenseByCategory[e.Category] = b.ExpenseByCategory[e.Category].Add(amount)
		}
	}

	b.Summary.Balance = b.Summary.TotalIncome.Sub(b.Summary.TotalExpenses)
	return b
}
