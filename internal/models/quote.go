package models

type Quote struct {
	ID       string    `json:"id"`
	Owner    string    `json:"owner"`
	Text     string    `json:"text"`
	Author   string    `json:"author"`
	Date     string    `json:"date"`
	Public   bool      `json:"public"`
	Comments []Comment `json:"comments"`
}

// Comment is a child of exactly one quote, kept in insertion order.
type Comment struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
	Date   string `json:"date"`
	Public bool   `json:"public"`
}
