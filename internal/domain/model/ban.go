package model

// Ban rows carry a caller-chosen id. Nothing stops two rows from sharing
// one; DeleteByID removes every row with that id.
type Ban struct {
	ID     int    `json:"id"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

func NewBan(id int, email, reason string) *Ban {
	return &Ban{
		ID:     id,
		Email:  email,
		Reason: reason,
	}
}
