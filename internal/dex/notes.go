package dex

import (
	"context"
	"net/url"
	"time"
)

// Notes are stored as timeline items in Dex, so the API paths and request
// envelopes carry the timeline_items / timeline_event names.

// NewNote holds the fields for creating a note. EventTime is an ISO 8601
// timestamp; when empty the current UTC time is used.
type NewNote struct {
	Note       string
	ContactIDs []string
	EventTime  string
}

// ListNotes fetches a page of notes.
func (c *Client) ListNotes(ctx context.Context, limit, offset int) ([]byte, error) {
	return c.get(ctx, "/timeline_items?"+pageQuery(limit, offset))
}

// GetNotesForContact fetches all notes associated with a contact.
func (c *Client) GetNotesForContact(ctx context.Context, contactID string) ([]byte, error) {
	return c.get(ctx, "/timeline_items/contacts/"+url.PathEscape(contactID))
}

// CreateNote creates a note linked to one or more contacts.
func (c *Client) CreateNote(ctx context.Context, note NewNote) ([]byte, error) {
	eventTime := note.EventTime
	if eventTime == "" {
		eventTime = time.Now().UTC().Format(time.RFC3339)
	}

	event := map[string]interface{}{
		"note":         note.Note,
		"event_time":   eventTime,
		"meeting_type": "note",
		"timeline_items_contacts": map[string]interface{}{
			"data": contactRefs(note.ContactIDs),
		},
	}

	return c.post(ctx, "/timeline_items", map[string]interface{}{"timeline_event": event})
}

// UpdateNote replaces the content of an existing note.
func (c *Client) UpdateNote(ctx context.Context, noteID, note string) ([]byte, error) {
	body := map[string]interface{}{
		"timeline_event": map[string]string{"note": note},
	}
	return c.put(ctx, "/timeline_items/"+url.PathEscape(noteID), body)
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(ctx context.Context, noteID string) ([]byte, error) {
	return c.del(ctx, "/timeline_items/"+url.PathEscape(noteID))
}

// contactRefs shapes contact IDs into the nested association format the
// create endpoints expect.
func contactRefs(ids []string) []map[string]string {
	refs := make([]map[string]string, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, map[string]string{"contact_id": id})
	}
	return refs
}
