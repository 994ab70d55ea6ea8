package printer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPrint_Accepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/zebra" {
			t.Errorf("expected /zebra path, got %q", r.URL.Path)
		}
		var req PrintLabelsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if req.URL != "https://drive.google.com/uc?export=download&id=abc" {
			t.Errorf("unexpected label url %q", req.URL)
		}
		if req.Quantity != 1 {
			t.Errorf("expected quantity 1, got %d", req.Quantity)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient()
	err := client.Print(context.Background(), server.URL, "https://drive.google.com/uc?export=download&id=abc", 1)
	if err != nil {
		t.Fatalf("expected no error for 202 response, got %v", err)
	}
}

func TestPrint_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "out of label stock")
	}))
	defer server.Close()

	client := NewClient()
	err := client.Print(context.Background(), server.URL, "https://example.com/label.pdf", 1)
	if err == nil {
		t.Fatal("expected error for 500 response, got nil")
	}
	if !strings.Contains(err.Error(), "out of label stock") {
		t.Errorf("expected response body in error, got %q", err.Error())
	}
}

func TestPrint_OKIsNotAccepted(t *testing.T) {
	// Only 202 signals acceptance; a plain 200 is still a failure.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	err := client.Print(context.Background(), server.URL, "https://example.com/label.pdf", 1)
	if err == nil {
		t.Fatal("expected error for 200 response, got nil")
	}
}
