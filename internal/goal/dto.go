package goal

type CreateGoalDTO struct {
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
}

type GoalResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DueDate     string `json:"due_date,omitempty"`
	Completed   bool   `json:"completed"`
	CreatedDate string `json:"created_date"`
}

type ClearCompletedResponse struct {
	Removed int `json:"removed"`
}
