package models

// Message is a contact-form submission. Date is unix seconds.
type Message struct {
	ID      string `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
	Message string `db:"message" json:"message"`
	Date    int64  `db:"date" json:"date"`
	IPAddr  string `db:"ip_addr" json:"ip_addr"`
}
