package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jamesbinford/mcpservers/internal/common"
	"github.com/jamesbinford/mcpservers/internal/dex"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

func getString(request mcp.CallToolRequest, key, defaultVal string) string {
	return request.GetString(key, defaultVal)
}

func getInt(request mcp.CallToolRequest, key string, defaultVal int) int {
	return request.GetInt(key, defaultVal)
}

func getBool(request mcp.CallToolRequest, key string, defaultVal bool) bool {
	return request.GetBool(key, defaultVal)
}

func getStringSlice(request mcp.CallToolRequest, key string) []string {
	return request.GetStringSlice(key, nil)
}

func requireString(request mcp.CallToolRequest, key string) (string, error) {
	return request.RequireString(key)
}

// formatJSON pretty-prints an API response body for the tool result.
// Non-JSON bodies come back unchanged.
func formatJSON(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}

// withToolLogging wraps a tool handler with a correlation-tagged log of each
// call and its duration.
func withToolLogging(name string, logger *common.Logger, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callLog := logger.WithCorrelationId(uuid.New().String())
		start := time.Now()

		result, err := next(ctx, request)

		durationMs := time.Since(start).Milliseconds()
		switch {
		case err != nil:
			callLog.Error().Str("tool", name).Int64("duration_ms", durationMs).Str("error", err.Error()).Msg("tool call failed")
		case result != nil && result.IsError:
			callLog.Warn().Str("tool", name).Int64("duration_ms", durationMs).Msg("tool call returned error")
		default:
			callLog.Debug().Str("tool", name).Int64("duration_ms", durationMs).Msg("tool call complete")
		}

		return result, err
	}
}

// --- Contact handlers ---

func handleListContacts(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := getInt(request, "limit", 10)
		offset := getInt(request, "offset", 0)

		body, err := c.ListContacts(ctx, limit, offset)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

func handleGetContact(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		contactID, err := requireString(request, "contact_id")
		if err != nil || contactID == "" {
			return errorResult("Error: contact_id parameter is required"), nil
		}

		body, err := c.GetContact(ctx, contactID)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

func handleSearchContacts(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		email, err := requireString(request, "email")
		if err != nil || email == "" {
			return errorResult("Error: email parameter is required"), nil
		}

		body, err := c.SearchContactsByEmail(ctx, email)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

func handleCreateContact(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		firstName, err := requireString(request, "first_name")
		if err != nil || firstName == "" {
			return errorResult("Error: first_name parameter is required"), nil
		}
		lastName, err := requireString(request, "last_name")
		if err != nil || lastName == "" {
			return errorResult("Error: last_name parameter is required"), nil
		}

		contact := dex.NewContact{
			FirstName:   firstName,
			LastName:    lastName,
			Email:       getString(request, "email", ""),
			Phone:       getString(request, "phone", ""),
			PhoneLabel:  getString(request, "phone_label", "Work"),
			JobTitle:    getString(request, "job_title", ""),
			Description: getString(request, "description", ""),
			LinkedIn:    getString(request, "linkedin", ""),
			Twitter:     getString(request, "twitter", ""),
			Instagram:   getString(request, "instagram", ""),
			Website:     getString(request, "website", ""),
		}

		body, err := c.CreateContact(ctx, contact)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

func handleUpdateContact(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		contactID, err := requireString(request, "contact_id")
		if err != nil || contactID == "" {
			return errorResult("Error: contact_id parameter is required"), nil
		}

		update := dex.ContactUpdate{
			FirstName:   getString(request, "first_name", ""),
			LastName:    getString(request, "last_name", ""),
			JobTitle:    getString(request, "job_title", ""),
			Description: getString(request, "description", ""),
			LinkedIn:    getString(request, "linkedin", ""),
			Twitter:     getString(request, "twitter", ""),
			Instagram:   getString(request, "instagram", ""),
			Website:     getString(request, "website", ""),
		}

		body, err := c.UpdateContact(ctx, contactID, update)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

func handleDeleteContact(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		contactID, err := requireString(request, "contact_id")
		if err != nil || contactID == "" {
			return errorResult("Error: contact_id parameter is required"), nil
		}

		body, err := c.DeleteContact(ctx, contactID)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

// --- Note handlers ---

func handleListNotes(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := getInt(request, "limit", 10)
		offset := getInt(request, "offset", 0)

		body, err := c.ListNotes(ctx, limit, offset)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

func handleGetNotesForContact(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		contactID, err := requireString(request, "contact_id")
		if err != nil || contactID == "" {
			return errorResult("Error: contact_id parameter is required"), nil
		}

		body, err := c.GetNotesForContact(ctx, contactID)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

func handleCreateNote(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		note, err := requireString(request, "note")
		if err != nil || note == "" {
			return errorResult("Error: note parameter is required"), nil
		}
		contactIDs := getStringSlice(request, "contact_ids")
		if len(contactIDs) == 0 {
			return errorResult("Error: contact_ids parameter is required"), nil
		}

		body, err := c.CreateNote(ctx, dex.NewNote{
			Note:       note,
			ContactIDs: contactIDs,
			EventTime:  getString(request, "event_time", ""),
		})
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

func handleUpdateNote(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		noteID, err := requireString(request, "note_id")
		if err != nil || noteID == "" {
			return errorResult("Error: note_id parameter is required"), nil
		}
		note, err := requireString(request, "note")
		if err != nil || note == "" {
			return errorResult("Error: note parameter is required"), nil
		}

		body, err := c.UpdateNote(ctx, noteID, note)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

func handleDeleteNote(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		noteID, err := requireString(request, "note_id")
		if err != nil || noteID == "" {
			return errorResult("Error: note_id parameter is required"), nil
		}

		body, err := c.DeleteNote(ctx, noteID)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

// --- Reminder handlers ---

func handleListReminders(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := getInt(request, "limit", 10)
		offset := getInt(request, "offset", 0)

		body, err := c.ListReminders(ctx, limit, offset)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

func handleCreateReminder(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title, err := requireString(request, "title")
		if err != nil || title == "" {
			return errorResult("Error: title parameter is required"), nil
		}
		dueDate, err := requireString(request, "due_date")
		if err != nil || dueDate == "" {
			return errorResult("Error: due_date parameter is required"), nil
		}

		body, err := c.CreateReminder(ctx, dex.NewReminder{
			Title:      title,
			DueDate:    dueDate,
			Text:       getString(request, "text", ""),
			ContactIDs: getStringSlice(request, "contact_ids"),
		})
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

func handleUpdateReminder(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reminderID, err := requireString(request, "reminder_id")
		if err != nil || reminderID == "" {
			return errorResult("Error: reminder_id parameter is required"), nil
		}

		update := dex.ReminderUpdate{
			Title:   getString(request, "title", ""),
			Text:    getString(request, "text", ""),
			DueDate: getString(request, "due_date", ""),
		}
		// Presence check: an explicit is_complete=false must still be sent
		if _, ok := request.GetArguments()["is_complete"]; ok {
			isComplete := getBool(request, "is_complete", false)
			update.IsComplete = &isComplete
		}

		body, err := c.UpdateReminder(ctx, reminderID, update)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

func handleCompleteReminder(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reminderID, err := requireString(request, "reminder_id")
		if err != nil || reminderID == "" {
			return errorResult("Error: reminder_id parameter is required"), nil
		}

		body, err := c.CompleteReminder(ctx, reminderID)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}

func handleDeleteReminder(c *dex.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reminderID, err := requireString(request, "reminder_id")
		if err != nil || reminderID == "" {
			return errorResult("Error: reminder_id parameter is required"), nil
		}

		body, err := c.DeleteReminder(ctx, reminderID)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatJSON(body)), nil
	}
}
