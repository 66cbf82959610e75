package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/models"
	"github.com/fatflowers/prayerbook/pkg/config"
	"github.com/fatflowers/prayerbook/pkg/types"
)

var sampleRequest = Request{
	Type:          types.PrayerTypeSend,
	RecipientName: "Maria",
	Language:      types.LanguageSpanish,
	UserInput:     "She starts a new job on Monday",
}

const sampleResult = `{"prayer":"Querida Maria, ...","scriptures":[{"reference":"Filipenses 4:6","verse":"Por nada estéis afanosos"}]}`

func newTestGenerator(url string, retries uint64, timeout time.Duration) *HTTPGenerator {
	return NewHTTPGenerator(config.GenerationConfig{
		Endpoint:   url,
		APIKey:     "secret",
		Timeout:    timeout,
		Retries:    retries,
		RetryDelay: time.Millisecond,
	}, nil, zap.NewNop().Sugar())
}

func TestHTTPGenerator_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body generateBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Messages, 1)
		require.Equal(t, "user", body.Messages[0].Role)
		require.Contains(t, body.Messages[0].Content, "Querida Maria")
		require.Contains(t, body.Messages[0].Content, "Spanish")
		require.Equal(t, "object", body.Schema["type"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResult))
	}))
	defer srv.Close()

	res, err := newTestGenerator(srv.URL, 1, time.Second).Generate(context.Background(), sampleRequest)
	require.NoError(t, err)
	require.Equal(t, "Querida Maria, ...", res.Prayer)
	require.Equal(t, []models.ScriptureReference{{Reference: "Filipenses 4:6", Verse: "Por nada estéis afanosos"}}, res.Scriptures)
}

func TestHTTPGenerator_RetriesOnce(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(sampleResult))
	}))
	defer srv.Close()

	res, err := newTestGenerator(srv.URL, 1, time.Second).Generate(context.Background(), sampleRequest)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, int32(2), calls.Load())
}

func TestHTTPGenerator_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestGenerator(srv.URL, 1, time.Second).Generate(context.Background(), sampleRequest)
	require.ErrorContains(t, err, "returned 500")
	require.Equal(t, int32(2), calls.Load())
}

func TestHTTPGenerator_RejectsSchemaViolations(t *testing.T) {
	tests := map[string]string{
		"not json":        `<html>`,
		"empty prayer":    `{"prayer":"","scriptures":[{"reference":"a","verse":"b"}]}`,
		"no scriptures":   `{"prayer":"p","scriptures":[]}`,
		"six scriptures":  `{"prayer":"p","scriptures":[{"reference":"a","verse":"b"},{"reference":"a","verse":"b"},{"reference":"a","verse":"b"},{"reference":"a","verse":"b"},{"reference":"a","verse":"b"},{"reference":"a","verse":"b"}]}`,
		"blank reference": `{"prayer":"p","scriptures":[{"reference":" ","verse":"b"}]}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := newTestGenerator(srv.URL, 0, time.Second).Generate(context.Background(), sampleRequest)
			require.ErrorIs(t, err, ErrInvalidGeneration)
		})
	}
}

func TestHTTPGenerator_AttemptTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	start := time.Now()
	_, err := newTestGenerator(srv.URL, 0, 50*time.Millisecond).Generate(context.Background(), sampleRequest)
	require.Error(t, err)
	require.Less(t, time.Since(start), 900*time.Millisecond)
}

func TestRequest_Validate(t *testing.T) {
	require.NoError(t, sampleRequest.Validate())

	bad := sampleRequest
	bad.Type = "group"
	require.ErrorIs(t, bad.Validate(), ErrInvalidRequest)

	bad = sampleRequest
	bad.Language = "fr"
	require.ErrorIs(t, bad.Validate(), ErrInvalidRequest)

	bad = sampleRequest
	bad.RecipientName = "  "
	require.ErrorIs(t, bad.Validate(), ErrInvalidRequest)

	bad = sampleRequest
	bad.UserInput = ""
	require.ErrorIs(t, bad.Validate(), ErrInvalidRequest)
}

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt(Request{Type: types.PrayerTypeMyself, RecipientName: "John", Language: types.LanguageEnglish, UserInput: "anxiety"})
	require.Contains(t, p, "Dear John,")
	require.Contains(t, p, "praying for themselves")
	require.Contains(t, p, "anxiety")
	require.Contains(t, p, "English")
}
