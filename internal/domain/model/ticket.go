package model

import "time"

const TicketStatusOpen = "open"

type Ticket struct {
	ID       int       `json:"id"`
	UserID   int       `json:"userid"`
	Title    string    `json:"title"`
	Data     string    `json:"data"`
	Status   string    `json:"status"`
	DateTime time.Time `json:"date_time"`
}

// NewTicket builds an open ticket stamped with the current server time.
func NewTicket(userID int, title, data string) *Ticket {
	return &Ticket{
		UserID:   userID,
		Title:    title,
		Data:     data,
		Status:   TicketStatusOpen,
		DateTime: time.Now(),
	}
}
