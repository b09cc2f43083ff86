package main

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/profile"
)

func newTestServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		ParticleCount: 20,
		Typewriter: config.Typewriter{
			TypeInterval:   time.Millisecond,
			DeleteInterval: time.Millisecond,
			Pause:          time.Hour,
		},
	}
	return newServer(cfg, zerolog.Nop(), profile.Default())
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestIndexPage(t *testing.T) {
	r := newTestServer(t).routes()
	rr := get(t, r, "/")
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, "Sumit Pandey")
	assert.Contains(t, body, `id="typewriter-text"`)
	assert.Contains(t, body, `href="#projects"`)
	assert.Contains(t, body, "Hello - Real-time Chat App")
	assert.Contains(t, body, "Current Focus")
	assert.Equal(t, 20, strings.Count(body, `class="particle"`))
	assert.NotContains(t, body, "ZgotmplZ")
}

func TestProfileAPI(t *testing.T) {
	r := newTestServer(t).routes()
	rr := get(t, r, "/api/profile")
	require.Equal(t, http.StatusOK, rr.Code)

	var p profile.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, profile.Default(), p)
}

func TestTypewriterInfo(t *testing.T) {
	r := newTestServer(t).routes()
	rr := get(t, r, "/typewriter")
	require.Equal(t, http.StatusOK, rr.Code)

	var info struct {
		Phrases          []string `json:"phrases"`
		TypeIntervalMS   int64    `json:"type_interval_ms"`
		DeleteIntervalMS int64    `json:"delete_interval_ms"`
		PauseMS          int64    `json:"pause_ms"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, profile.Default().Taglines, info.Phrases)
	assert.Equal(t, int64(1), info.TypeIntervalMS)
	assert.Equal(t, int64(1), info.DeleteIntervalMS)
	assert.Equal(t, time.Hour.Milliseconds(), info.PauseMS)
}

func TestTypewriterWithoutTaglines(t *testing.T) {
	s := newTestServer(t)
	s.profile.Taglines = nil
	r := s.routes()

	assert.Equal(t, http.StatusInternalServerError, get(t, r, "/typewriter").Code)
	assert.Equal(t, http.StatusInternalServerError, get(t, r, "/typewriter/stream").Code)
	assert.Zero(t, s.streams.Load())
}

func TestHealthAndStatic(t *testing.T) {
	r := newTestServer(t).routes()

	rr := get(t, r, "/healthz")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","streams":0}`, rr.Body.String())

	rr = get(t, r, "/static/style.css")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "@keyframes float")
}

func TestTypewriterStream(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/typewriter/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	want := profile.Default().Taglines[0]
	frames := readFrames(t, resp.Body, want)
	require.NotEmpty(t, frames)
	assert.Equal(t, "", frames[0])
	for _, f := range frames {
		assert.True(t, strings.HasPrefix(want, f), "frame %q is not a prefix of %q", f, want)
	}
	assert.Equal(t, want, frames[len(frames)-1])
	assert.EqualValues(t, 1, s.streams.Load())

	cancel()
	require.Eventually(t, func() bool { return s.streams.Load() == 0 }, 2*time.Second, 5*time.Millisecond)
}

// readFrames collects the data of text events until one equals last.
func readFrames(t *testing.T, body io.Reader, last string) []string {
	t.Helper()
	var frames []string
	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(body)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			data := strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " ")
			frames = append(frames, data)
			if data == last {
				return
			}
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for typewriter frames")
	}
	return frames
}
