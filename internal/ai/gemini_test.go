package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// candidateResponse builds a minimal generateContent response body.
func candidateResponse(text string) string {
	body := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
	data, _ := json.Marshal(body)
	return string(data)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    string
		wantErr bool
	}{
		{
			name:    "clean JSON",
			input:   []byte(`{"termYear":"2025-2026","periods":[]}`),
			want:    `{"termYear":"2025-2026","periods":[]}`,
			wantErr: false,
		},
		{
			name:    "JSON with leading text",
			input:   []byte(`Here is the plan: {"termYear":"2025-2026","periods":[]}`),
			want:    `{"termYear":"2025-2026","periods":[]}`,
			wantErr: false,
		},
		{
			name:    "JSON with trailing text",
			input:   []byte(`{"termYear":"2025-2026","periods":[]} Hope this helps!`),
			want:    `{"termYear":"2025-2026","periods":[]}`,
			wantErr: false,
		},
		{
			name:    "markdown-wrapped JSON",
			input:   []byte("```json\n" + `{"suggestions":["a","b"]}` + "\n```"),
			want:    `{"suggestions":["a","b"]}`,
			wantErr: false,
		},
		{
			name:    "bare markdown fence",
			input:   []byte("```\n" + `{"suggestions":["a"]}` + "\n```"),
			want:    `{"suggestions":["a"]}`,
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			input:   []byte(`{"termYear":"2025-2026"`),
			wantErr: true,
		},
		{
			name:    "no JSON",
			input:   []byte(`This is just plain text with no JSON`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %q", string(got))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(""); err == nil {
		t.Error("expected error for empty API key")
	}
	c, err := NewClient("test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != DefaultModel {
		t.Errorf("model = %q, want %q", c.Model(), DefaultModel)
	}
}

func TestGenerateTextSendsPromptAndKey(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Write([]byte(candidateResponse("a fine report")))
	}))
	defer srv.Close()

	c, err := NewClient("test-key", WithBaseURL(srv.URL), WithModel("gemini-2.5-flash"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := c.GenerateText(context.Background(), "write a report")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "a fine report" {
		t.Errorf("text = %q, want %q", text, "a fine report")
	}
	if gotPath != "/v1beta/models/gemini-2.5-flash:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if len(gotReq.Contents) != 1 || len(gotReq.Contents[0].Parts) != 1 {
		t.Fatalf("unexpected request shape: %+v", gotReq)
	}
	if gotReq.Contents[0].Parts[0].Text != "write a report" {
		t.Errorf("prompt = %q", gotReq.Contents[0].Parts[0].Text)
	}
	if gotReq.GenerationConfig != nil {
		t.Error("plain text request should not carry a generation config")
	}
}

func TestGenerateJSONSetsSchema(t *testing.T) {
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Write([]byte(candidateResponse("```json\n{\"suggestions\":[\"one\"]}\n```")))
	}))
	defer srv.Close()

	c, _ := NewClient("test-key", WithBaseURL(srv.URL))
	data, err := c.GenerateJSON(context.Background(), "reword this", suggestionSchema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"suggestions":["one"]}` {
		t.Errorf("data = %q", string(data))
	}
	if gotReq.GenerationConfig == nil {
		t.Fatal("expected a generation config")
	}
	if gotReq.GenerationConfig.ResponseMimeType != "application/json" {
		t.Errorf("mime type = %q", gotReq.GenerationConfig.ResponseMimeType)
	}
	if gotReq.GenerationConfig.ResponseSchema == nil {
		t.Error("expected a response schema")
	}
}

func TestGenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	c, _ := NewClient("bad-key", WithBaseURL(srv.URL))
	_, err := c.GenerateText(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Message, "API key not valid") {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c, _ := NewClient("test-key", WithBaseURL(srv.URL))
	if _, err := c.GenerateText(context.Background(), "hello"); err == nil {
		t.Error("expected error for empty candidates")
	}
}
