package handlers

import (
	downloadersService "github.com/StounhandJ/aweme_resolver/internal/downloaders"
	th "github.com/mymmrac/telego/telegohandler"
)

type handler struct {
	downloaders []downloadersService.IDownloader
}

func NewHandler(downloaders []downloadersService.IDownloader) handler {
	return handler{
		downloaders: downloaders,
	}
}

func (h handler) SetupRoutes(bh *th.BotHandler) {
	bh.Handle(h.StartCommand, th.CommandEqual("start"))

	bh.HandleInlineQuery(h.InlineVideo)
}

// downloaderFor returns the first downloader accepting url.
func (h handler) downloaderFor(url string) downloadersService.IDownloader {
	for _, d := range h.downloaders {
		if d.Valid(url) {
			return d
		}
	}

	return nil
}
