package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	tiktok "github.com/StounhandJ/aweme_resolver/internal/downloaders/tik_tok"
	"github.com/stretchr/testify/require"
)

const feed = `{"aweme_list":[{"aweme_id":"42","video":{` +
	`"play_addr":{"url_list":["https://cdn.example/42/play.mp4"]},` +
	`"cover":{"url_list":["https://cdn.example/42/cover.jpg"]}}}]}`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/t/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/@user/video/42", http.StatusFound)
	})
	mux.HandleFunc("/aweme/v1/feed/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feed))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), append([]string{"aweme"}, args...))

	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	srv := newServer(t)

	out, err := run(t, "--host", srv.URL, "resolve", srv.URL+"/t/abc")
	require.NoError(t, err)
	require.Equal(t, "42\n", out)
}

func TestResolveCommandNeedsURL(t *testing.T) {
	_, err := run(t, "resolve")
	require.ErrorIs(t, err, tiktok.ErrInvalidArgument)
}

func TestFetchCommandByID(t *testing.T) {
	srv := newServer(t)

	out, err := run(t, "--host", srv.URL, "fetch", "--id", "42")
	require.NoError(t, err)
	require.JSONEq(t,
		`{"download_url":"https://cdn.example/42/play.mp4","cover_url":"https://cdn.example/42/cover.jpg"}`,
		out)
}

func TestFetchCommandUnknownVideo(t *testing.T) {
	srv := newServer(t)

	_, err := run(t, "--host", srv.URL, "fetch", "--id", "7")
	require.ErrorIs(t, err, tiktok.ErrVideoUnavailable)
}

func TestFetchCommandBadProxy(t *testing.T) {
	_, err := run(t, "--proxy", "ftp://proxy.example", "fetch", "--id", "42")
	require.Error(t, err)
}
