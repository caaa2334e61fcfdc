package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dbsa/models"
	"dbsa/services/contact"
	"dbsa/utils"
)

// ContactHandler relays contact-form submissions and redirects back to the
// contact page with a status query.
type ContactHandler struct {
	Service      contact.ContactService
	RedirectPath string
}

func NewContactHandler(service contact.ContactService, redirectPath string) *ContactHandler {
	return &ContactHandler{Service: service, RedirectPath: redirectPath}
}

func (h *ContactHandler) redirect(c *gin.Context, params url.Values) {
	c.Redirect(http.StatusSeeOther, h.RedirectPath+"?"+params.Encode())
}

func statusParams(status string, extras map[string]string) url.Values {
	params := url.Values{}
	params.Set("status", status)
	for key, value := range extras {
		if value != "" {
			params.Set(key, value)
		}
	}
	return params
}

// SubmitContactHandler validates the posted fields and relays them to the
// form service. Validation failures echo the submitted values back so the
// page can repopulate the form.
func (h *ContactHandler) SubmitContactHandler(c *gin.Context) {
	form := models.ContactForm{
		Name:    contact.SanitizeValue(c.PostForm("name")),
		Email:   contact.SanitizeValue(c.PostForm("email")),
		Phone:   contact.SanitizeValue(c.PostForm("phone")),
		Message: contact.SanitizeValue(c.PostForm("message")),
	}

	if fieldErrors := contact.ValidateForm(form); len(fieldErrors) > 0 {
		fields := ""
		for _, field := range contact.FieldOrder {
			if _, ok := fieldErrors[field]; ok {
				if fields != "" {
					fields += ","
				}
				fields += field
			}
		}
		h.redirect(c, statusParams("error", map[string]string{
			"reason":  "validation",
			"fields":  fields,
			"name":    form.Name,
			"email":   form.Email,
			"phone":   form.Phone,
			"message": form.Message,
		}))
		return
	}

	if err := h.Service.Submit(c.Request.Context(), form); err != nil {
		reason := "network"
		var relayErr *contact.RelayError
		switch {
		case errors.Is(err, contact.ErrNotConfigured):
			reason = "not-configured"
		case errors.As(err, &relayErr):
			reason = relayErr.Reason
		}
		if reason == contact.ReasonNetwork {
			utils.GetLogger().Error("contact form submission failed", zap.Error(err))
		}
		h.redirect(c, statusParams("error", map[string]string{"reason": reason}))
		return
	}

	h.redirect(c, statusParams("success", nil))
}

// ContactMethodNotAllowedHandler answers non-POST methods on the contact
// endpoint.
func ContactMethodNotAllowedHandler(c *gin.Context) {
	c.Header("Allow", http.MethodPost)
	c.Status(http.StatusMethodNotAllowed)
}
