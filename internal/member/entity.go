package member

import "github.com/saulo-duarte/clubhouse/internal/recordstore"

const (
	colName     = "Member Name"
	colEmail    = "Email"
	colJoinDate = "Join Date"
)

var Schema = recordstore.MustSchema("members", colName, colEmail, colJoinDate)

type Member struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	JoinDate string `json:"join_date"`
}

func (m *Member) toRecord() recordstore.Record {
	return recordstore.Record{
		colName:     m.Name,
		colEmail:    m.Email,
		colJoinDate: m.JoinDate,
	}
}

func fromRecord(r recordstore.Record) Member {
	return Member{
		ID:       r.ID(),
		Name:     r[colName],
		Email:    r[colEmail],
		JoinDate: r[colJoinDate],
	}
}
