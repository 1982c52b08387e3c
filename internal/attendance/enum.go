package attendance

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

var AllStatuses = []Status{
	StatusPresent,
	StatusAbsent,
}

func (s Status) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
