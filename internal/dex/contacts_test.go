package dex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decodeJSONBody(t *testing.T, r *http.Request) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode request body: %v", err)
	}
	return body
}

func envelope(t *testing.T, body map[string]interface{}, key string) map[string]interface{} {
	t.Helper()
	inner, ok := body[key].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected %q envelope in body, got %v", key, body)
	}
	return inner
}

func okResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
}

func TestListContacts_SendsPagination(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/contacts" {
			t.Errorf("Expected /contacts, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "25" {
			t.Errorf("Expected limit=25, got %q", got)
		}
		if got := r.URL.Query().Get("offset"); got != "50" {
			t.Errorf("Expected offset=50, got %q", got)
		}
		okResponse(w)
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	if _, err := client.ListContacts(context.Background(), 25, 50); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestGetContact_Path(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/contacts/abc-123" {
			t.Errorf("Expected /contacts/abc-123, got %s", r.URL.Path)
		}
		okResponse(w)
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	if _, err := client.GetContact(context.Background(), "abc-123"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestSearchContactsByEmail_Query(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/search/contacts" {
			t.Errorf("Expected /search/contacts, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("email"); got != "ada@example.com" {
			t.Errorf("Expected email=ada@example.com, got %q", got)
		}
		okResponse(w)
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	if _, err := client.SearchContactsByEmail(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestCreateContact_RequiredOnly(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/contacts" {
			t.Errorf("Expected /contacts, got %s", r.URL.Path)
		}

		contact := envelope(t, decodeJSONBody(t, r), "contact")
		if contact["first_name"] != "Ada" {
			t.Errorf("Expected first_name=Ada, got %v", contact["first_name"])
		}
		if contact["last_name"] != "Lovelace" {
			t.Errorf("Expected last_name=Lovelace, got %v", contact["last_name"])
		}
		// Optional fields must be absent, not null
		for _, key := range []string{"job_title", "description", "contact_emails", "contact_phone_numbers"} {
			if _, ok := contact[key]; ok {
				t.Errorf("Expected %s to be omitted, got %v", key, contact[key])
			}
		}
		okResponse(w)
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	_, err := client.CreateContact(context.Background(), NewContact{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestCreateContact_AllFields(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contact := envelope(t, decodeJSONBody(t, r), "contact")

		if contact["job_title"] != "Engineer" {
			t.Errorf("Expected job_title=Engineer, got %v", contact["job_title"])
		}
		if contact["linkedin"] != "ada-l" {
			t.Errorf("Expected linkedin=ada-l, got %v", contact["linkedin"])
		}

		emails := envelope(t, contact, "contact_emails")
		emailData, ok := emails["data"].(map[string]interface{})
		if !ok {
			t.Fatalf("Expected contact_emails.data object, got %v", emails["data"])
		}
		if emailData["email"] != "ada@example.com" {
			t.Errorf("Expected email=ada@example.com, got %v", emailData["email"])
		}

		phones := envelope(t, contact, "contact_phone_numbers")
		phoneData, ok := phones["data"].(map[string]interface{})
		if !ok {
			t.Fatalf("Expected contact_phone_numbers.data object, got %v", phones["data"])
		}
		if phoneData["phone_number"] != "+61 400 000 000" {
			t.Errorf("Expected phone_number=+61 400 000 000, got %v", phoneData["phone_number"])
		}
		if phoneData["label"] != "Mobile" {
			t.Errorf("Expected label=Mobile, got %v", phoneData["label"])
		}
		okResponse(w)
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	_, err := client.CreateContact(context.Background(), NewContact{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		Phone:      "+61 400 000 000",
		PhoneLabel: "Mobile",
		JobTitle:   "Engineer",
		LinkedIn:   "ada-l",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestCreateContact_DefaultPhoneLabel(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contact := envelope(t, decodeJSONBody(t, r), "contact")
		phones := envelope(t, contact, "contact_phone_numbers")
		phoneData, ok := phones["data"].(map[string]interface{})
		if !ok {
			t.Fatalf("Expected contact_phone_numbers.data object, got %v", phones["data"])
		}
		if phoneData["label"] != "Work" {
			t.Errorf("Expected default label=Work, got %v", phoneData["label"])
		}
		okResponse(w)
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	_, err := client.CreateContact(context.Background(), NewContact{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "+61 400 000 000",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestUpdateContact_PartialFields(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("Expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/contacts/abc-123" {
			t.Errorf("Expected /contacts/abc-123, got %s", r.URL.Path)
		}

		contact := envelope(t, decodeJSONBody(t, r), "contact")
		if contact["job_title"] != "Director" {
			t.Errorf("Expected job_title=Director, got %v", contact["job_title"])
		}
		if len(contact) != 1 {
			t.Errorf("Expected only job_title in update, got %v", contact)
		}
		okResponse(w)
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	_, err := client.UpdateContact(context.Background(), "abc-123", ContactUpdate{JobTitle: "Director"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestDeleteContact_Path(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE, got %s", r.Method)
		}
		if r.URL.Path != "/contacts/abc-123" {
			t.Errorf("Expected /contacts/abc-123, got %s", r.URL.Path)
		}
		okResponse(w)
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	if _, err := client.DeleteContact(context.Background(), "abc-123"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}
