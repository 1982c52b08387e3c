package attendance

import "github.com/saulo-duarte/clubhouse/internal/recordstore"

const (
	colDate        = "Date"
	colMemberName  = "Member Name"
	colSessionName = "Session Name"
	colHours       = "Hours"
	colStatus      = "Status"
	colNotes       = "Notes"
)

var Schema = recordstore.MustSchema("attendance",
	colDate, colMemberName, colSessionName, colHours, colStatus, colNotes)

type Record struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	MemberName  string `json:"member_name"`
	SessionName string `json:"session_name"`
	Hours       string `json:"hours"`
	Status      Status `json:"status"`
	Notes       string `json:"notes,omitempty"`
}

func (a *Record) toRecord() recordstore.Record {
	return recordstore.Record{
		colDate:        a.Date,
		colMemberName:  a.MemberName,
		colSessionName: a.SessionName,
		colHours:       a.Hours,
		colStatus:      string(a.Status),
		colNotes:       a.Notes,
	}
}

func fromRecord(r recordstore.Record) Record {
	return Record{
		ID:          r.ID(),
		Date:        r[colDate],
		MemberName:  r[colMemberName],
		SessionName: r[colSessionName],
		Hours:       r[colHours],
		Status:      Status(r[colStatus]),
		Notes:       r[colNotes],
	}
}
