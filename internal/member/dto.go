package member

type CreateMemberDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	JoinDate string `json:"join_date"`
}

type UpdateMemberDTO struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	JoinDate *string `json:"join_date"`
}
