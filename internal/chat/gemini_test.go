package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newFakeGemini(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := NewGeminiProvider("test-key", "gemini-2.0-flash-exp")
	p.baseURL = srv.URL
	return p
}

func TestGeminiCompleteSplitsSystemInstruction(t *testing.T) {
	var captured geminiRequest
	p := newFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{{
				Content:      &geminiContent{Parts: []geminiPart{{Text: "hi "}, {Text: "there"}}},
				FinishReason: "STOP",
			}},
		})
	})

	resp, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []PromptMessage{
			{Role: RoleSystem, Content: "stay on topic"},
			{Role: RoleUser, Content: "hello"},
		},
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if resp.Content != "hi there" {
		t.Fatalf("content = %q, want concatenated parts", resp.Content)
	}
	if captured.SystemInstruction == nil || captured.SystemInstruction.Parts[0].Text != "stay on topic" {
		t.Fatalf("system instruction not split out: %+v", captured.SystemInstruction)
	}
	if len(captured.Contents) != 1 || captured.Contents[0].Role != "user" {
		t.Fatalf("contents = %+v, want single user turn", captured.Contents)
	}
}

func TestGeminiCompleteSurfacesAPIError(t *testing.T) {
	p := newFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(geminiResponse{
			Error: &geminiError{Code: 404, Status: "NOT_FOUND", Message: "Requested entity was not found."},
		})
	})

	_, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []PromptMessage{{Role: RoleUser, Content: "hello"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Requested entity was not found.") {
		t.Fatalf("error %q should carry the API message verbatim", err)
	}
}

func TestGeminiCompleteNonOKWithoutErrorBody(t *testing.T) {
	p := newFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("{}"))
	})

	_, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []PromptMessage{{Role: RoleUser, Content: "hello"}},
	})
	if err == nil || !strings.Contains(err.Error(), "status 503") {
		t.Fatalf("err = %v, want status in message", err)
	}
}
