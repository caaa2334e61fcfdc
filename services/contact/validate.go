package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"dbsa/models"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[+()\-.\s\d]{7,}$`)
)

// FieldOrder fixes the order in which validation errors are reported back
// to the contact page.
var FieldOrder = []string{"name", "email", "phone", "message"}

// SanitizeValue trims a raw form value.
func SanitizeValue(value string) string {
	return strings.TrimSpace(value)
}

// ValidateForm checks the contact form fields and returns a message per
// failing field. Name, email and message are required; phone is optional
// but must look like a phone number when present.
func ValidateForm(form models.ContactForm) map[string]string {
	errors := make(map[string]string)

	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)
	phone := strings.TrimSpace(form.Phone)
	message := strings.TrimSpace(form.Message)

	if name == "" {
		errors["name"] = "Please enter your name."
	}

	if email == "" {
		errors["email"] = "Please enter your email address."
	} else if !emailPattern.MatchString(email) {
		errors["email"] = "Enter a valid email address."
	}

	if phone != "" && !phonePattern.MatchString(phone) {
		errors["phone"] = "Enter a valid phone number or leave it blank."
	}

	if message == "" {
		errors["message"] = "Let us know how we can help."
	} else if utf8.RuneCountInString(message) < 10 {
		errors["message"] = "Message should be at least 10 characters."
	}

	return errors
}
