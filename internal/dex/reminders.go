package dex

import (
	"context"
	"net/url"
)

// NewReminder holds the fields for creating a reminder. Title and DueDate
// are required; DueDate uses YYYY-MM-DD format and maps to the API's
// due_at_date field.
type NewReminder struct {
	Title      string
	DueDate    string
	Text       string
	ContactIDs []string
}

// ReminderUpdate holds the mutable reminder fields for a partial update.
// IsComplete is a pointer so an explicit false is distinguishable from not
// touching the field at all.
type ReminderUpdate struct {
	Title      string
	Text       string
	DueDate    string
	IsComplete *bool
}

// ListReminders fetches a page of reminders.
func (c *Client) ListReminders(ctx context.Context, limit, offset int) ([]byte, error) {
	return c.get(ctx, "/reminders?"+pageQuery(limit, offset))
}

// CreateReminder creates a reminder, optionally linked to contacts. New
// reminders always start incomplete.
func (c *Client) CreateReminder(ctx context.Context, reminder NewReminder) ([]byte, error) {
	data := map[string]interface{}{
		"title":       reminder.Title,
		"is_complete": false,
		"due_at_date": reminder.DueDate,
	}
	if reminder.Text != "" {
		data["text"] = reminder.Text
	}
	if len(reminder.ContactIDs) > 0 {
		data["reminders_contacts"] = map[string]interface{}{
			"data": contactRefs(reminder.ContactIDs),
		}
	}

	return c.post(ctx, "/reminders", map[string]interface{}{"reminder": data})
}

// UpdateReminder applies a partial update to a reminder. Only the fields
// set in update are sent.
func (c *Client) UpdateReminder(ctx context.Context, reminderID string, update ReminderUpdate) ([]byte, error) {
	data := map[string]interface{}{}
	if update.Title != "" {
		data["title"] = update.Title
	}
	if update.Text != "" {
		data["text"] = update.Text
	}
	if update.DueDate != "" {
		data["due_at_date"] = update.DueDate
	}
	if update.IsComplete != nil {
		data["is_complete"] = *update.IsComplete
	}

	return c.put(ctx, "/reminders/"+url.PathEscape(reminderID), map[string]interface{}{"reminder": data})
}

// CompleteReminder marks a reminder as complete.
func (c *Client) CompleteReminder(ctx context.Context, reminderID string) ([]byte, error) {
	done := true
	return c.UpdateReminder(ctx, reminderID, ReminderUpdate{IsComplete: &done})
}

// DeleteReminder removes a reminder.
func (c *Client) DeleteReminder(ctx context.Context, reminderID string) ([]byte, error) {
	return c.del(ctx, "/reminders/"+url.PathEscape(reminderID))
}
