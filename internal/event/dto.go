package event

type CreateEventDTO struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type UpdateEventDTO struct {
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}
