//go:generate easyjson types.go
package tiktok

import "fmt"

// Aweme is the result of a successful fetch: a direct media url and its cover.
//
// easyjson:json
type Aweme struct {
	DownloadURL string `json:"download_url"`
	CoverURL    string `json:"cover_url"`
}

// easyjson:json
type FeedResponse struct {
	AwemeList []FeedItem `json:"aweme_list"`
}

type FeedItem struct {
	AwemeID string    `json:"aweme_id"`
	Video   FeedVideo `json:"video"`
}

type FeedVideo struct {
	PlayAddr FeedAddr `json:"play_addr"`
	Cover    FeedAddr `json:"cover"`
}

type FeedAddr struct {
	URLList []string `json:"url_list"`
}

func (i FeedItem) aweme() (Aweme, error) {
	if len(i.Video.PlayAddr.URLList) == 0 {
		return Aweme{}, fmt.Errorf("%w: aweme %s has no play address", ErrInvalidResponse, i.AwemeID)
	}

	if len(i.Video.Cover.URLList) == 0 {
		return Aweme{}, fmt.Errorf("%w: aweme %s has no cover", ErrInvalidResponse, i.AwemeID)
	}

	return Aweme{
		DownloadURL: i.Video.PlayAddr.URLList[0],
		CoverURL:    i.Video.Cover.URLList[0],
	}, nil
}
