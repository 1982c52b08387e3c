package attendance

type CreateAttendanceDTO struct {
	Date        string `json:"date"`
	MemberName  string `json:"member_name"`
	SessionName string `json:"session_name"`
	Hours       string `json:"hours"`
	Status      Status `json:"status"`
	Notes       string `json:"notes"`
}

// AttendancePageResponse pairs the records with the member roster used to
// fill the member picker.
type AttendancePageResponse struct {
	Records []Record `json:"records"`
	Members []string `json:"members"`
}
