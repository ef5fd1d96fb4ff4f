package service

import (
	"fmt"
	"net/url"

	"dealerapi/internal/model"
)

// InquiryLinkBuilder builds WhatsApp deep links for vehicle inquiries. This is
// a template string, not a protocol integration; the chat provider stays an
// external collaborator.
type InquiryLinkBuilder struct {
	Phone string
}

// VehicleLink returns the wa.me deep link pre-filled with an inquiry message
// for the given vehicle. Empty when no phone number is configured.
func (b InquiryLinkBuilder) VehicleLink(v model.Vehicle) string {
	if b.Phone == "" {
		return ""
	}
	msg := fmt.Sprintf("Hi, I'm interested in the %s %s (%d). Is it still available?", v.Brand, v.ModelName, v.Year)
	return "https://wa.me/" + b.Phone + "?text=" + url.QueryEscape(msg)
}
