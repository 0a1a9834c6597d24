package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jamesbinford/mcpservers/internal/common"
	"github.com/jamesbinford/mcpservers/internal/dex"
)

// registerTools registers all Dex CRM tools on the server, wiring each to a
// handler that calls the Dex REST API via the client.
func registerTools(s *server.MCPServer, c *dex.Client, logger *common.Logger) {
	add := func(tool mcp.Tool, handler server.ToolHandlerFunc) {
		s.AddTool(tool, withToolLogging(tool.Name, logger, handler))
	}

	// Contacts
	add(createListContactsTool(), handleListContacts(c))
	add(createGetContactTool(), handleGetContact(c))
	add(createSearchContactsTool(), handleSearchContacts(c))
	add(createCreateContactTool(), handleCreateContact(c))
	add(createUpdateContactTool(), handleUpdateContact(c))
	add(createDeleteContactTool(), handleDeleteContact(c))

	// Notes
	add(createListNotesTool(), handleListNotes(c))
	add(createGetNotesForContactTool(), handleGetNotesForContact(c))
	add(createCreateNoteTool(), handleCreateNote(c))
	add(createUpdateNoteTool(), handleUpdateNote(c))
	add(createDeleteNoteTool(), handleDeleteNote(c))

	// Reminders
	add(createListRemindersTool(), handleListReminders(c))
	add(createCreateReminderTool(), handleCreateReminder(c))
	add(createUpdateReminderTool(), handleUpdateReminder(c))
	add(createCompleteReminderTool(), handleCompleteReminder(c))
	add(createDeleteReminderTool(), handleDeleteReminder(c))
}

// --- Tool definitions ---

func createListContactsTool() mcp.Tool {
	return mcp.NewTool("dex_list_contacts",
		mcp.WithDescription("List all contacts from Dex CRM with pagination. Returns contact details including name, email, phone, job title, and social profiles."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of contacts to return (default: 10, max: 100)")),
		mcp.WithNumber("offset", mcp.Description("Number of contacts to skip for pagination (default: 0)")),
	)
}

func createGetContactTool() mcp.Tool {
	return mcp.NewTool("dex_get_contact",
		mcp.WithDescription("Get detailed information about a specific contact by their ID."),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("The UUID of the contact to retrieve")),
	)
}

func createSearchContactsTool() mcp.Tool {
	return mcp.NewTool("dex_search_contacts",
		mcp.WithDescription("Search for contacts by email address."),
		mcp.WithString("email", mcp.Required(), mcp.Description("Email address to search for")),
	)
}

func createCreateContactTool() mcp.Tool {
	return mcp.NewTool("dex_create_contact",
		mcp.WithDescription("Create a new contact in Dex CRM."),
		mcp.WithString("first_name", mcp.Required(), mcp.Description("Contact's first name")),
		mcp.WithString("last_name", mcp.Required(), mcp.Description("Contact's last name")),
		mcp.WithString("email", mcp.Description("Contact's email address")),
		mcp.WithString("phone", mcp.Description("Contact's phone number")),
		mcp.WithString("phone_label", mcp.Description("Label for phone number (e.g., 'Work', 'Mobile'; default: 'Work')")),
		mcp.WithString("job_title", mcp.Description("Contact's job title")),
		mcp.WithString("description", mcp.Description("Notes about the contact")),
		mcp.WithString("linkedin", mcp.Description("LinkedIn username")),
		mcp.WithString("twitter", mcp.Description("Twitter handle")),
		mcp.WithString("instagram", mcp.Description("Instagram username")),
		mcp.WithString("website", mcp.Description("Personal website URL")),
	)
}

func createUpdateContactTool() mcp.Tool {
	return mcp.NewTool("dex_update_contact",
		mcp.WithDescription("Update an existing contact's information. Only the provided fields are changed."),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("The UUID of the contact to update")),
		mcp.WithString("first_name", mcp.Description("New first name")),
		mcp.WithString("last_name", mcp.Description("New last name")),
		mcp.WithString("job_title", mcp.Description("New job title")),
		mcp.WithString("description", mcp.Description("New description/notes")),
		mcp.WithString("linkedin", mcp.Description("New LinkedIn username")),
		mcp.WithString("twitter", mcp.Description("New Twitter handle")),
		mcp.WithString("instagram", mcp.Description("New Instagram username")),
		mcp.WithString("website", mcp.Description("New website URL")),
	)
}

func createDeleteContactTool() mcp.Tool {
	return mcp.NewTool("dex_delete_contact",
		mcp.WithDescription("Delete a contact from Dex CRM."),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("The UUID of the contact to delete")),
	)
}

func createListNotesTool() mcp.Tool {
	return mcp.NewTool("dex_list_notes",
		mcp.WithDescription("List all notes from Dex CRM with pagination. Notes are timeline items that can be associated with contacts."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of notes to return (default: 10)")),
		mcp.WithNumber("offset", mcp.Description("Number of notes to skip for pagination (default: 0)")),
	)
}

func createGetNotesForContactTool() mcp.Tool {
	return mcp.NewTool("dex_get_notes_for_contact",
		mcp.WithDescription("Get all notes associated with a specific contact."),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("The UUID of the contact to get notes for")),
	)
}

func createCreateNoteTool() mcp.Tool {
	return mcp.NewTool("dex_create_note",
		mcp.WithDescription("Create a new note and associate it with one or more contacts."),
		mcp.WithString("note", mcp.Required(), mcp.Description("The note content")),
		mcp.WithArray("contact_ids", mcp.WithStringItems(), mcp.Required(), mcp.Description("List of contact UUIDs to associate with this note")),
		mcp.WithString("event_time", mcp.Description("ISO 8601 timestamp for the note (defaults to now)")),
	)
}

func createUpdateNoteTool() mcp.Tool {
	return mcp.NewTool("dex_update_note",
		mcp.WithDescription("Update the content of an existing note."),
		mcp.WithString("note_id", mcp.Required(), mcp.Description("The UUID of the note to update")),
		mcp.WithString("note", mcp.Required(), mcp.Description("New note content")),
	)
}

func createDeleteNoteTool() mcp.Tool {
	return mcp.NewTool("dex_delete_note",
		mcp.WithDescription("Delete a note from Dex CRM."),
		mcp.WithString("note_id", mcp.Required(), mcp.Description("The UUID of the note to delete")),
	)
}

func createListRemindersTool() mcp.Tool {
	return mcp.NewTool("dex_list_reminders",
		mcp.WithDescription("List all reminders from Dex CRM with pagination. Reminders can be associated with contacts and have due dates."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of reminders to return (default: 10)")),
		mcp.WithNumber("offset", mcp.Description("Number of reminders to skip for pagination (default: 0)")),
	)
}

func createCreateReminderTool() mcp.Tool {
	return mcp.NewTool("dex_create_reminder",
		mcp.WithDescription("Create a new reminder, optionally associated with contacts."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Reminder title")),
		mcp.WithString("due_date", mcp.Required(), mcp.Description("Due date in YYYY-MM-DD format")),
		mcp.WithArray("contact_ids", mcp.WithStringItems(), mcp.Description("List of contact UUIDs to associate with this reminder")),
		mcp.WithString("text", mcp.Description("Additional reminder details")),
	)
}

func createUpdateReminderTool() mcp.Tool {
	return mcp.NewTool("dex_update_reminder",
		mcp.WithDescription("Update an existing reminder. Only the provided fields are changed."),
		mcp.WithString("reminder_id", mcp.Required(), mcp.Description("The UUID of the reminder to update")),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("text", mcp.Description("New description text")),
		mcp.WithString("due_date", mcp.Description("New due date in YYYY-MM-DD format")),
		mcp.WithBoolean("is_complete", mcp.Description("Mark as complete or incomplete")),
	)
}

func createCompleteReminderTool() mcp.Tool {
	return mcp.NewTool("dex_complete_reminder",
		mcp.WithDescription("Mark a reminder as complete."),
		mcp.WithString("reminder_id", mcp.Required(), mcp.Description("The UUID of the reminder to complete")),
	)
}

func createDeleteReminderTool() mcp.Tool {
	return mcp.NewTool("dex_delete_reminder",
		mcp.WithDescription("Delete a reminder from Dex CRM."),
		mcp.WithString("reminder_id", mcp.Required(), mcp.Description("The UUID of the reminder to delete")),
	)
}
