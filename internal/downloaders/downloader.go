package downloaders

import "context"

type IDownloader interface {
	Download(ctx context.Context, url string) (*Video, error)
	Valid(url string) bool
}

type Video struct {
	ID           string
	Title        string
	VideoURL     string
	ThumbnailURL string
	MimeType     string
}
