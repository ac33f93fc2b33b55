package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiReply(text string) map[string]any {
	return map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
}

func TestGenerateSendsPromptAndSchema(t *testing.T) {
	var captured generateRequest
	var path, key, query string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		key = r.Header.Get("x-goog-api-key")
		query = r.URL.RawQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(geminiReply("```json\n[\"a\",\"b\",\"c\"]\n```"))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	text, err := client.Generate(context.Background(), Prompt{
		Model:  "gemini-2.5-pro",
		System: "be brief",
		User:   "three tips",
		Schema: &Schema{Type: TypeArray, Items: &Schema{Type: TypeString}},
	})
	require.NoError(t, err)

	assert.Equal(t, `["a","b","c"]`, text)
	assert.Equal(t, "/models/gemini-2.5-pro:generateContent", path)
	assert.Equal(t, "test-key", key)
	assert.Empty(t, query)
	require.NotNil(t, captured.SystemInstruction)
	assert.Equal(t, "be brief", captured.SystemInstruction.Parts[0].Text)
	assert.Equal(t, "three tips", captured.Contents[0].Parts[0].Text)
	require.NotNil(t, captured.GenerationConfig)
	assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMimeType)
	assert.Equal(t, TypeArray, captured.GenerationConfig.ResponseSchema.Type)
	assert.Equal(t, TypeString, captured.GenerationConfig.ResponseSchema.Items.Type)
}

func TestGenerateUsesDefaultModel(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewEncoder(w).Encode(geminiReply("hello"))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL + "/"})
	text, err := client.Generate(context.Background(), Prompt{User: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "/models/"+DefaultModel+":generateContent", path)
}

func TestGenerateMissingAPIKey(t *testing.T) {
	client := NewClient(Config{APIKey: "  "})
	_, err := client.Generate(context.Background(), Prompt{User: "hi"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[]}`))
			},
			wantErr: ErrEmptyResponse,
		},
		{
			name: "blank text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(geminiReply("   "))
			},
			wantErr: ErrEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(Config{APIKey: "k", BaseURL: server.URL})
			text, err := client.Generate(context.Background(), Prompt{User: "hi"})
			require.Error(t, err)
			assert.Empty(t, text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGenerateHonoursContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL})
	_, err := client.Generate(ctx, Prompt{User: "hi"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenerateErrorsOmitAPIKey(t *testing.T) {
	const secret = "SUPER-SECRET-KEY"

	t.Run("connection refused", func(t *testing.T) {
		client := NewClient(Config{APIKey: secret, BaseURL: "http://127.0.0.1:1"})
		_, err := client.Generate(context.Background(), Prompt{User: "hi"})
		require.Error(t, err)
		assert.NotContains(t, err.Error(), secret)
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		client := NewClient(Config{APIKey: secret, BaseURL: server.URL})
		_, err := client.Generate(ctx, Prompt{User: "hi"})
		require.Error(t, err)
		assert.NotContains(t, err.Error(), secret)
	})
}

func TestStripCodeFence(t *testing.T) {
	tests := map[string]string{
		"plain":                      "plain",
		"  padded  ":                 "padded",
		"```json\n{\"a\":1}\n```":    `{"a":1}`,
		"```\n[1,2]\n```":            "[1,2]",
		"```json[1]```":              "[1]",
		"```json\n[\"x\"]\n```\n\n": `["x"]`,
	}
	for in, want := range tests {
		assert.Equal(t, want, StripCodeFence(in), in)
	}
}
