package outreach

import (
	"strings"

	"github.com/dmitrymomot/outreachkit/pkg/templater"
)

// BuildVars assembles the raw variable map for a render: lead fields, inbox
// fields, and custom fields merged into one flat string map. All known fields
// are always set, empty or not, so a sent email never leaks a literal
// {{firstName}}; blank values fall back via {{firstName|there}} or drop whole
// sentences via {if:firstName}. Custom fields pass through only when their
// value is a string, and never shadow a built-in key.
func BuildVars(lead Lead, inbox Inbox) templater.Vars {
	fullName := strings.TrimSpace(lead.FullName)
	if fullName == "" {
		fullName = strings.TrimSpace(strings.TrimSpace(lead.FirstName) + " " + strings.TrimSpace(lead.LastName))
	}

	vars := templater.Vars{
		"email":     lead.Email,
		"firstName": lead.FirstName,
		"lastName":  lead.LastName,
		"fullName":  fullName,
		"company":   lead.Company,
		"title":     lead.Title,
		"phone":     lead.Phone,

		"fromName":        inbox.FromName,
		"fromEmail":       inbox.FromEmail,
		"senderFirstName": inbox.FirstName,
		"senderLastName":  inbox.LastName,
		"senderCompany":   inbox.Company,
		"senderTitle":     inbox.Title,
		"senderPhone":     inbox.Phone,
		"senderWebsite":   inbox.Website,
	}

	for key, value := range lead.Custom {
		s, ok := value.(string)
		if !ok {
			continue
		}
		if _, exists := vars[key]; exists {
			continue
		}
		vars[key] = s
	}
	return vars
}
