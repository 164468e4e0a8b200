package tiktok

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDownloaderValid(t *testing.T) {
	d := New(nil)

	require.True(t, d.Valid("https://vt.tiktok.com/ZSabc123/"))
	require.True(t, d.Valid("https://www.tiktok.com/@user/video/7318"))
	require.False(t, d.Valid("https://www.instagram.com/reel/abc"))
	require.False(t, d.Valid("https://tiktok.com"))
}

func TestDownloaderDownload(t *testing.T) {
	srv := newFeedServer(t, feedJSON("7318"), nil)
	d := New(newTestClient(t, srv))

	video, err := d.Download(context.Background(), shareURL(srv, "/@user/video/7318"))
	require.NoError(t, err)
	require.Equal(t, "7318", video.ID)
	require.Equal(t, "https://cdn.example/7318/play.mp4", video.VideoURL)
	require.Equal(t, "https://cdn.example/7318/cover.jpg", video.ThumbnailURL)
	require.Equal(t, "video/mp4", video.MimeType)
	require.NotEmpty(t, video.Title)
}

func TestDownloaderDownloadUnavailable(t *testing.T) {
	srv := newFeedServer(t, feedJSON("1"), nil)
	d := New(newTestClient(t, srv))

	_, err := d.Download(context.Background(), shareURL(srv, "/@user/video/7318"))
	require.ErrorIs(t, err, ErrVideoUnavailable)
}

func TestIsShareURL(t *testing.T) {
	cases := map[string]bool{
		"https://vt.tiktok.com/ZSabc123/":         true,
		"http://vm.tiktok.com/ZSabc123":           true,
		"https://WWW.TikTok.com/@user/video/7318": true,
		"https://tiktok.com/@user/photo/7318":     true,
		"https://tiktok.com":                      false,
		"https://tiktok.com/":                     false,
		"http://10.0.0.1/x?tiktok.com/":           false,
		"http://127.0.0.1:8080/admin":             false,
		"https://tiktok.com.evil.example/video/1": false,
		"https://nottiktok.com/video/1":           false,
		"https://user@vt.tiktok.com/ZSabc123/":    false,
		"ftp://vt.tiktok.com/ZSabc123/":           false,
		"vt.tiktok.com/ZSabc123/":                 false,
		"https://www.instagram.com/reel/abc":      false,
	}

	for raw, want := range cases {
		require.Equal(t, want, IsShareURL(raw), raw)
	}
}

func TestDownloaderValidRejectsForeignHosts(t *testing.T) {
	d := New(nil)

	require.False(t, d.Valid("http://10.0.0.1/x?tiktok.com/"))
	require.False(t, d.Valid("http://169.254.169.254/latest/meta-data/tiktok.com/"))
}
