package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dbsa/models"
)

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name       string
		form       models.ContactForm
		wantFields []string
	}{
		{
			"valid without phone",
			models.ContactForm{Name: "Jordan Smith", Email: "jordan@example.com", Message: "I'd like to book a class."},
			nil,
		},
		{
			"valid with phone",
			models.ContactForm{Name: "Jordan Smith", Email: "jordan@example.com", Phone: "+1 973-555-0142", Message: "I'd like to book a class."},
			nil,
		},
		{
			"everything missing",
			models.ContactForm{},
			[]string{"name", "email", "message"},
		},
		{
			"bad email",
			models.ContactForm{Name: "Jordan", Email: "nope", Message: "A long enough message."},
			[]string{"email"},
		},
		{
			"bad phone",
			models.ContactForm{Name: "Jordan", Email: "jordan@example.com", Phone: "call me", Message: "A long enough message."},
			[]string{"phone"},
		},
		{
			"short message",
			models.ContactForm{Name: "Jordan", Email: "jordan@example.com", Message: "hi"},
			[]string{"message"},
		},
		{
			"message length counts characters, not bytes",
			models.ContactForm{Name: "Jordan", Email: "jordan@example.com", Message: "体験したいです"},
			[]string{"message"},
		},
		{
			"ten multibyte characters pass",
			models.ContactForm{Name: "Jordan", Email: "jordan@example.com", Message: "ありがとうございます"},
			nil,
		},
		{
			"whitespace only counts as missing",
			models.ContactForm{Name: "   ", Email: "jordan@example.com", Message: "  A long enough message.  "},
			[]string{"name"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errors := ValidateForm(tc.form)
			assert.Len(t, errors, len(tc.wantFields))
			for _, field := range tc.wantFields {
				assert.Contains(t, errors, field)
			}
		})
	}
}

func TestSanitizeValue(t *testing.T) {
	assert.Equal(t, "Jordan", SanitizeValue("  Jordan  "))
	assert.Equal(t, "", SanitizeValue("   "))
}
