package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nameforge/internal/server"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(server.New().Router())
	t.Cleanup(ts.Close)
	return ts
}

func postForm(t *testing.T, ts *httptest.Server, values url.Values) (*http.Response, envelope) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/names",
		"application/x-www-form-urlencoded", strings.NewReader(values.Encode()))
	require.NoError(t, err)
	return resp, decodeEnvelope(t, resp)
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

type namesData struct {
	Theme string `json:"theme"`
	Count int    `json:"count"`
	Names []struct {
		Name      string   `json:"name"`
		Fragments []string `json:"fragments"`
		Slots     []struct {
			Slot     string  `json:"slot"`
			Fragment string  `json:"fragment"`
			Total    float64 `json:"total"`
			PoolSize int     `json:"pool_size"`
		} `json:"slots"`
	} `json:"names"`
}

func TestGenerateNamesDefaults(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, env := postForm(t, ts, url.Values{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)

	var data namesData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "default", data.Theme)
	assert.Equal(t, 5, data.Count)
	require.Len(t, data.Names, 5)
	for _, n := range data.Names {
		assert.NotEmpty(t, n.Name)
		assert.NotEmpty(t, n.Fragments)
		require.NotEmpty(t, n.Slots)
		assert.Equal(t, "prefix", n.Slots[0].Slot)
		assert.Positive(t, n.Slots[0].PoolSize)
		first := n.Name[:1]
		assert.Equal(t, strings.ToUpper(first), first)
	}
}

func TestGenerateNamesThemeAndCount(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	v := url.Values{}
	v.Set("theme", "elf")
	v.Set("count", "3")
	v.Set("block_counts", "3")
	resp, env := postForm(t, ts, v)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)

	var data namesData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "elf", data.Theme)
	require.Len(t, data.Names, 3)
	for _, n := range data.Names {
		assert.Len(t, n.Fragments, 3)
	}
}

func TestGenerateNamesCountClamped(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	v := url.Values{}
	v.Set("count", "9999")
	_, env := postForm(t, ts, v)
	require.True(t, env.Success)

	var data namesData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 20, data.Count)
}

func TestGenerateNamesInvalidTheme(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	v := url.Values{}
	v.Set("theme", "../etc")
	resp, env := postForm(t, ts, v)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestGenerateNamesUnknownThemeFallsBack(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	v := url.Values{}
	v.Set("theme", "atlantean")
	resp, env := postForm(t, ts, v)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
}

func TestGenerateNamesEngineFailureKeeps200(t *testing.T) {
	t.Parallel()

	// A theme whose suffix pool is explicitly empty fails every entry of
	// the batch; the failure travels in the envelope, not the status line.
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "hollow"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hollow", "suffixes.yaml"), []byte("[]\n"), 0o644))

	ts := httptest.NewServer(server.New(server.WithThemeDir(dir)).Router())
	t.Cleanup(ts.Close)

	v := url.Values{}
	v.Set("theme", "hollow")
	resp, err := http.Post(ts.URL+"/api/names",
		"application/x-www-form-urlencoded", strings.NewReader(v.Encode()))
	require.NoError(t, err)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestPresetEndpoints(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/presets")
	require.NoError(t, err)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)
	var list struct {
		Presets []struct {
			ID    string `json:"id"`
			Theme string `json:"theme"`
		} `json:"presets"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	ids := make([]string, 0, len(list.Presets))
	for _, p := range list.Presets {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, "default")
	assert.Contains(t, ids, "elf")

	resp, err = http.Get(ts.URL + "/api/presets/elf")
	require.NoError(t, err)
	env = decodeEnvelope(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)
	var view struct {
		ID     string                    `json:"id"`
		Theme  string                    `json:"theme"`
		Target map[string]map[string]int `json:"target"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "elf", view.ID)
	assert.Equal(t, "elf", view.Theme)
	assert.Equal(t, 7, view.Target["elegance"]["min"])

	resp, err = http.Get(ts.URL + "/api/presets/vampire")
	require.NoError(t, err)
	env = decodeEnvelope(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ALIVE", string(body))
}

func TestRequestIDEcho(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get(server.RequestIDHeader))

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(server.RequestIDHeader, "req-abc_123")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "req-abc_123", resp.Header.Get(server.RequestIDHeader))

	// malformed inbound ids are replaced
	req.Header.Set(server.RequestIDHeader, "bad id with spaces")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEqual(t, "bad id with spaces", resp.Header.Get(server.RequestIDHeader))
	assert.NotEmpty(t, resp.Header.Get(server.RequestIDHeader))
}
