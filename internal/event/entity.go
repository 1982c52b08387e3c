package event

import "github.com/saulo-duarte/clubhouse/internal/recordstore"

const (
	colName        = "Event Name"
	colDate        = "Date"
	colTime        = "Time"
	colLocation    = "Location"
	colDescription = "Description"
)

var Schema = recordstore.MustSchema("events", colName, colDate, colTime, colLocation, colDescription)

type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

func (e *Event) toRecord() recordstore.Record {
	return recordstore.Record{
		colName:        e.Name,
		colDate:        e.Date,
		colTime:        e.Time,
		colLocation:    e.Location,
		colDescription: e.Description,
	}
}

func fromRecord(r recordstore.Record) Event {
	return Event{
		ID:          r.ID(),
		Name:        r[colName],
		Date:        r[colDate],
		Time:        r[colTime],
		Location:    r[colLocation],
		Description: r[colDescription],
	}
}

// CalendarEntry is the shape the calendar widget consumes.
type CalendarEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

func (e Event) CalendarEntry() CalendarEntry {
	start := e.Date
	if e.Time != "" {
		start += "T" + e.Time
	}
	return CalendarEntry{
		ID:          e.ID,
		Title:       e.Name,
		Start:       start,
		Description: e.Description,
		Location:    e.Location,
	}
}
