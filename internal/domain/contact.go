package domain

// ContactMessage is a contact-form submission. It is relayed by email and not
// persisted.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
