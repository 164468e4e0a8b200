package tiktok

import (
	"context"
	netUrl "net/url"
	"strings"

	"github.com/StounhandJ/aweme_resolver/internal/downloaders"
)

type downloader struct {
	client *Client
}

func New(client *Client) downloaders.IDownloader {
	return &downloader{
		client: client,
	}
}

func (d downloader) Download(ctx context.Context, url string) (*downloaders.Video, error) {
	id, err := d.client.ResolveID(ctx, url)
	if err != nil {
		return nil, err
	}

	aweme, err := d.client.FetchVideo(ctx, "", id)
	if err != nil {
		return nil, err
	}

	return &downloaders.Video{
		ID:           id,
		Title:        "TikTok " + id,
		VideoURL:     aweme.DownloadURL,
		ThumbnailURL: aweme.CoverURL,
		MimeType:     "video/mp4",
	}, nil
}

func (downloader) Valid(url string) bool {
	return IsShareURL(url)
}

// IsShareURL reports whether s is an http(s) link on tiktok.com or one of its
// subdomains with a non-empty path. Anything else is never requested.
func IsShareURL(s string) bool {
	u, err := netUrl.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.User != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host != "tiktok.com" && !strings.HasSuffix(host, ".tiktok.com") {
		return false
	}

	return strings.Trim(u.Path, "/") != ""
}
