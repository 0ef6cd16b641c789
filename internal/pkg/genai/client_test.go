package genai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, zerolog.Nop())
}

func textResponse(text string) string {
	return `{"candidates":[{"content":{"role":"model","parts":[{"text":` + mustJSON(text) + `}]}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerateContent(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(textResponse("hello there")))
	})

	text, err := client.GenerateContent(context.Background(), "say hello")
	require.NoError(t, err)
	assert.Equal(t, "hello there", text)

	assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "user", gotBody.Contents[0].Role)
	assert.Equal(t, "say hello", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateStructured(t *testing.T) {
	var gotBody generateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(textResponse(`{"subject":"Go","modules":[]}`)))
	})

	var out struct {
		Subject string `json:"subject"`
	}
	require.NoError(t, client.GenerateStructured(context.Background(), "plan please", &out))
	assert.Equal(t, "Go", out.Subject)

	require.NotNil(t, gotBody.GenerationConfig)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMimeType)
}

func TestGenerateStructuredMalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse("not json at all")))
	})

	var out map[string]any
	err := client.GenerateStructured(context.Background(), "plan", &out)
	assert.ErrorContains(t, err, "malformed structured response")
}

func TestConverse(t *testing.T) {
	var gotBody generateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[
			{"functionCall":{"name":"navigate","args":{"page":"notices"}}}
		]}}]}`))
	})

	reply, err := client.Converse(context.Background(), "You are a controller.",
		[]Message{{Role: "user", Text: "show notices"}},
		[]FunctionDecl{{Name: "navigate", Parameters: map[string]any{"type": "object"}}})
	require.NoError(t, err)

	require.Len(t, reply.Calls, 1)
	assert.Equal(t, "navigate", reply.Calls[0].Name)
	assert.Equal(t, "notices", reply.Calls[0].Args["page"])

	require.NotNil(t, gotBody.SystemInstruction)
	assert.Equal(t, "You are a controller.", gotBody.SystemInstruction.Parts[0].Text)
	require.Len(t, gotBody.Tools, 1)
	require.Len(t, gotBody.Tools[0].FunctionDeclarations, 1)
}

func TestSendErrorHandling(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantErr: "provider returned status 429",
		},
		{
			name: "embedded API error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"error":{"code":400,"message":"API key not valid"}}`))
			},
			wantErr: "provider error 400",
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates":[]}`))
			},
			wantErr: "no candidates",
		},
		{
			name: "empty text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates":[{"content":{"parts":[]}}]}`))
			},
			wantErr: "empty response",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			_, err := client.GenerateContent(context.Background(), "x")
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GenerateContent(ctx, "x")
	assert.Error(t, err)
}
