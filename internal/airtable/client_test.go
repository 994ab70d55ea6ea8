package airtable

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListRecords_SinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth header, got %q", got)
		}
		if r.URL.Path != "/appBase123/Asset Items" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"records":[
			{"id":"rec1","fields":{"Name":"Dell XPS 13 (2020)","Type":"Laptop"}},
			{"id":"rec2","fields":{"Name":"","Type":"Monitor"}}
		]}`)
	}))
	defer server.Close()

	client := NewClient()
	client.SetBaseURL(server.URL)

	records, err := client.ListRecords(context.Background(), "test-key", "appBase123", "Asset Items")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "rec1" {
		t.Errorf("expected rec1, got %s", records[0].ID)
	}
	if records[0].String("Name") != "Dell XPS 13 (2020)" {
		t.Errorf("unexpected Name field: %q", records[0].String("Name"))
	}
}

func TestListRecords_Paginated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("offset") {
		case "":
			fmt.Fprint(w, `{"records":[{"id":"rec1","fields":{}}],"offset":"page2"}`)
		case "page2":
			fmt.Fprint(w, `{"records":[{"id":"rec2","fields":{}},{"id":"rec3","fields":{}}]}`)
		default:
			t.Errorf("unexpected offset %q", r.URL.Query().Get("offset"))
		}
	}))
	defer server.Close()

	client := NewClient()
	client.SetBaseURL(server.URL)

	records, err := client.ListRecords(context.Background(), "test-key", "appBase123", "Repos")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records across pages, got %d", len(records))
	}
	if records[2].ID != "rec3" {
		t.Errorf("expected rec3 last, got %s", records[2].ID)
	}
}

func TestListRecords_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"AUTHENTICATION_REQUIRED"}`)
	}))
	defer server.Close()

	client := NewClient()
	client.SetBaseURL(server.URL)

	_, err := client.ListRecords(context.Background(), "test-key", "appBase123", "Asset Items")
	if err == nil {
		t.Fatal("expected error for 401 response, got nil")
	}
}

func TestRecordFieldAccessors(t *testing.T) {
	rec := Record{
		ID: "rec1",
		Fields: map[string]interface{}{
			"Name":      "Sticker Pack",
			"Quantity":  float64(250),
			"Price":     12.5,
			"Archived":  true,
			"Qualities": []interface{}{"matte", "round"},
			"ETA":       "2024-06-01",
		},
	}

	if rec.String("Name") != "Sticker Pack" {
		t.Errorf("String: got %q", rec.String("Name"))
	}
	if rec.String("Missing") != "" {
		t.Errorf("String on missing key: got %q", rec.String("Missing"))
	}
	if rec.Int("Quantity") != 250 {
		t.Errorf("Int: got %d", rec.Int("Quantity"))
	}
	if rec.Float("Price") != 12.5 {
		t.Errorf("Float: got %f", rec.Float("Price"))
	}
	if !rec.Bool("Archived") {
		t.Error("Bool: expected true")
	}
	if got := rec.Strings("Qualities"); len(got) != 2 || got[0] != "matte" {
		t.Errorf("Strings: got %v", got)
	}
	if rec.Time("ETA") == nil {
		t.Error("Time: expected parsed date, got nil")
	}
	if rec.Time("Missing") != nil {
		t.Error("Time on missing key: expected nil")
	}
}
