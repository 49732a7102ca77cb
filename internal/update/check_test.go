package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLatestReleaseServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	origURL := latestReleaseURL
	origClient := httpClient
	origDelay := retryDelay
	latestReleaseURL = server.URL
	httpClient = server.Client()
	retryDelay = time.Millisecond
	t.Cleanup(func() {
		latestReleaseURL = origURL
		httpClient = origClient
		retryDelay = origDelay
	})
}

func TestCheck_Outdated(t *testing.T) {
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name":"v1.2.0"}`))
	})

	result, err := Check(context.Background(), "1.0.0")
	require.NoError(t, err)
	assert.True(t, result.Outdated)
	assert.Equal(t, "1.2.0", result.Latest)
	assert.Equal(t, "1.0.0", result.Current)
}

func TestCheck_UpToDate(t *testing.T) {
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name":"v1.0.0"}`))
	})

	result, err := Check(context.Background(), "v1.0.0")
	require.NoError(t, err)
	assert.False(t, result.Outdated)
}

func TestCheck_DevBuild(t *testing.T) {
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name":"v2.0.0"}`))
	})

	result, err := Check(context.Background(), "dev")
	require.NoError(t, err)
	assert.True(t, result.CurrentIsDev)
	assert.False(t, result.Outdated)
	assert.Equal(t, "2.0.0", result.Latest)
}

func TestCheck_InvalidCurrentVersion(t *testing.T) {
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v1.0.0"}`))
	})

	_, err := Check(context.Background(), "not-a-version")
	assert.Error(t, err)
}

func TestCheck_MissingTag(t *testing.T) {
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := Check(context.Background(), "1.0.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing tag_name")
}

func TestCheck_RateLimited429(t *testing.T) {
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := Check(context.Background(), "1.0.0")
	require.Error(t, err)
	assert.True(t, IsRateLimitError(err))
}

func TestCheck_RateLimited403WithHeader(t *testing.T) {
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := Check(context.Background(), "1.0.0")
	require.Error(t, err)
	assert.True(t, IsRateLimitError(err))
}

func TestCheck_Forbidden403WithoutHeaderIsNotRateLimit(t *testing.T) {
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := Check(context.Background(), "1.0.0")
	require.Error(t, err)
	assert.False(t, IsRateLimitError(err))
}

func TestCheck_RetriesServerError(t *testing.T) {
	var calls atomic.Int32
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"v1.1.0"}`))
	})

	result, err := Check(context.Background(), "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.True(t, result.Outdated)
}

func TestCheck_ServerErrorExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := Check(context.Background(), "1.0.0")
	require.Error(t, err)
	assert.Equal(t, int32(fetchLatestRetryCount+1), calls.Load())
}

func TestIsRateLimitError_PlainError(t *testing.T) {
	assert.False(t, IsRateLimitError(assert.AnError))
	assert.False(t, IsRateLimitError(nil))
}
