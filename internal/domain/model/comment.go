package model

type Comment struct {
	ID       int    `json:"id"`
	TicketID int    `json:"ticketid"`
	UserID   int    `json:"userid"`
	Data     string `json:"data"`
	Likes    int    `json:"likes"`
	Dislikes int    `json:"dislikes"`
}

func NewComment(ticketID, userID int, data string) *Comment {
	return &Comment{
		TicketID: ticketID,
		UserID:   userID,
		Data:     data,
		Likes:    0,
		Dislikes: 0,
	}
}
