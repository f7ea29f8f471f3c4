package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func testImage() Image {
	return Image{Data: []byte("not-really-a-jpeg"), MIMEType: "image/jpeg"}
}

func TestDescribe(t *testing.T) {
	var captured generateContentRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Contains(t, r.URL.Path, ":generateContent")
		require.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": "Apple detected, top-left"}},
				},
			}},
		})
	}))
	defer srv.Close()

	client := NewGeminiClient("test-key", "", srv.URL, 0)

	report, err := client.Describe(context.Background(), "identify foods", "what is this", testImage())
	require.NoError(t, err)
	require.Equal(t, "Apple detected, top-left", report)

	// Instruction, image and prompt all travel in the request.
	require.NotNil(t, captured.SystemInstruction)
	require.Equal(t, "identify foods", captured.SystemInstruction.Parts[0].Text)
	require.Len(t, captured.Contents, 1)
	require.Equal(t, "image/jpeg", captured.Contents[0].Parts[0].InlineData.MIMEType)
	require.Equal(t, []byte("not-really-a-jpeg"), captured.Contents[0].Parts[0].InlineData.Data)
	require.Equal(t, "what is this", captured.Contents[0].Parts[1].Text)
}

func TestDescribeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    429,
				"message": "quota exceeded",
				"status":  "RESOURCE_EXHAUSTED",
			},
		})
	}))
	defer srv.Close()

	client := NewGeminiClient("test-key", "", srv.URL, 0)

	_, err := client.Describe(context.Background(), "i", "p", testImage())
	require.ErrorIs(t, err, ErrUnavailable)
	require.ErrorContains(t, err, "quota exceeded")
}

func TestDescribeEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	client := NewGeminiClient("test-key", "", srv.URL, 0)

	_, err := client.Describe(context.Background(), "i", "p", testImage())
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestDescribeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down immediately

	client := NewGeminiClient("test-key", "", srv.URL, 0)

	_, err := client.Describe(context.Background(), "i", "p", testImage())
	require.ErrorIs(t, err, ErrUnavailable)
}
