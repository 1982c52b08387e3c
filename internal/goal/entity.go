package goal

import "github.com/saulo-duarte/clubhouse/internal/recordstore"

const (
	colTitle       = "Title"
	colDueDate     = "Due Date"
	colCompleted   = "Completed"
	colCreatedDate = "Created Date"
)

var Schema = recordstore.MustSchema("goals", colTitle, colDueDate, colCompleted, colCreatedDate)

type Goal struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	DueDate     string        `json:"due_date,omitempty"`
	Completed   CompletedFlag `json:"completed"`
	CreatedDate string        `json:"created_date"`
}

func (g *Goal) toRecord() recordstore.Record {
	return recordstore.Record{
		colTitle:       g.Title,
		colDueDate:     g.DueDate,
		colCompleted:   string(g.Completed),
		colCreatedDate: g.CreatedDate,
	}
}

func fromRecord(r recordstore.Record) Goal {
	return Goal{
		ID:          r.ID(),
		Title:       r[colTitle],
		DueDate:     r[colDueDate],
		Completed:   CompletedFlag(r[colCompleted]),
		CreatedDate: r[colCreatedDate],
	}
}
