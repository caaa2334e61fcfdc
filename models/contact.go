package models

// ContactForm holds the sanitized contact-form fields posted by the site.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Message string
}
