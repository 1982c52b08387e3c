package finance

import (
	"github.com/shopspring/decimal"

	"github.com/saulo-duarte/clubhouse/internal/recordstore"
)

const (
	colDate        = "Date"
	colType        = "Type"
	colCategory    = "Category"
	colAmount      = "Amount"
	colDescription = "Description"
)

var Schema = recordstore.MustSchema("finances", colDate, colType, colCategory, colAmount, colDescription)

type Entry struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Type        EntryType `json:"type"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Description string    `json:"description,omitempty"`
}

func (e *Entry) toRecord() recordstore.Record {
	return recordstore.Record{
		colDate:        e.Date,
		colType:        string(e.Type),
		colCategory:    e.Category,
		colAmount:      e.Amount,
		colDescription: e.Description,
	}
}

func fromRecord(r recordstore.Record) Entry {
	return Entry{
		ID:          r.ID(),
		Date:        r[colDate],
		Type:        EntryType(r[colType]),
		Category:    r[colCategory],
		Amount:      r[colAmount],
		Description: r[colDescription],
	}
}

// Summary is derived from the stored entries and never persisted.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"`
}

type Breakdown struct {
	Summary           Summary                    `json:"summary"`
	IncomeByCategory  map[string]decimal.Decimal `json:"income_by_category"`
	ExpenseByCategory map[string]decimal.Decimal `json:"expense_by_category"`
}
