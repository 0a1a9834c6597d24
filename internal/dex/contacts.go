package dex

import (
	"context"
	"net/url"
)

// NewContact holds the fields accepted when creating a contact. FirstName
// and LastName are required; every other field is optional and left out of
// the request when empty.
type NewContact struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	PhoneLabel  string
	JobTitle    string
	Description string
	LinkedIn    string
	Twitter     string
	Instagram   string
	Website     string
}

// ContactUpdate holds the mutable contact fields for a partial update.
// Empty fields are left out of the request so the API keeps their current
// values.
type ContactUpdate struct {
	FirstName   string
	LastName    string
	JobTitle    string
	Description string
	LinkedIn    string
	Twitter     string
	Instagram   string
	Website     string
}

// ListContacts fetches a page of contacts.
func (c *Client) ListContacts(ctx context.Context, limit, offset int) ([]byte, error) {
	return c.get(ctx, "/contacts?"+pageQuery(limit, offset))
}

// GetContact fetches a single contact by ID.
func (c *Client) GetContact(ctx context.Context, contactID string) ([]byte, error) {
	return c.get(ctx, "/contacts/"+url.PathEscape(contactID))
}

// SearchContactsByEmail finds contacts matching an email address.
func (c *Client) SearchContactsByEmail(ctx context.Context, email string) ([]byte, error) {
	params := url.Values{}
	params.Set("email", email)
	return c.get(ctx, "/search/contacts?"+params.Encode())
}

// CreateContact creates a contact. Email and phone travel in the nested
// association shape the API expects; an empty phone label defaults to "Work".
func (c *Client) CreateContact(ctx context.Context, contact NewContact) ([]byte, error) {
	data := map[string]interface{}{
		"first_name": contact.FirstName,
		"last_name":  contact.LastName,
	}
	if contact.JobTitle != "" {
		data["job_title"] = contact.JobTitle
	}
	if contact.Description != "" {
		data["description"] = contact.Description
	}
	if contact.LinkedIn != "" {
		data["linkedin"] = contact.LinkedIn
	}
	if contact.Twitter != "" {
		data["twitter"] = contact.Twitter
	}
	if contact.Instagram != "" {
		data["instagram"] = contact.Instagram
	}
	if contact.Website != "" {
		data["website"] = contact.Website
	}
	if contact.Email != "" {
		data["contact_emails"] = map[string]interface{}{
			"data": map[string]string{"email": contact.Email},
		}
	}
	if contact.Phone != "" {
		label := contact.PhoneLabel
		if label == "" {
			label = "Work"
		}
		data["contact_phone_numbers"] = map[string]interface{}{
			"data": map[string]string{"phone_number": contact.Phone, "label": label},
		}
	}

	return c.post(ctx, "/contacts", map[string]interface{}{"contact": data})
}

// UpdateContact applies a partial update to a contact. Only the fields set
// in update are sent.
func (c *Client) UpdateContact(ctx context.Context, contactID string, update ContactUpdate) ([]byte, error) {
	data := map[string]interface{}{}
	if update.FirstName != "" {
		data["first_name"] = update.FirstName
	}
	if update.LastName != "" {
		data["last_name"] = update.LastName
	}
	if update.JobTitle != "" {
		data["job_title"] = update.JobTitle
	}
	if update.Description != "" {
		data["description"] = update.Description
	}
	if update.LinkedIn != "" {
		data["linkedin"] = update.LinkedIn
	}
	if update.Twitter != "" {
		data["twitter"] = update.Twitter
	}
	if update.Instagram != "" {
		data["instagram"] = update.Instagram
	}
	if update.Website != "" {
		data["website"] = update.Website
	}

	return c.put(ctx, "/contacts/"+url.PathEscape(contactID), map[string]interface{}{"contact": data})
}

// DeleteContact removes a contact.
func (c *Client) DeleteContact(ctx context.Context, contactID string) ([]byte, error) {
	return c.del(ctx, "/contacts/"+url.PathEscape(contactID))
}
