package handlers

import (
	"strings"
	"sync/atomic"

	"github.com/StounhandJ/aweme_resolver/internal/utils"
	telegramUtils "github.com/StounhandJ/aweme_resolver/internal/utils/telegram"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
)

var requestedCounter atomic.Int64

const startText = "Отправь ссылку на TikTok в inline режиме: <code>@bot https://vt.tiktok.com/...</code>"

// Стартовое сообщение
func (h handler) StartCommand(ctx *th.Context, update telego.Update) error {
	telegramUtils.SendMessage(ctx, update, startText)

	return nil
}

func (h handler) InlineVideo(ctx *th.Context, query telego.InlineQuery) error {
	url := strings.TrimSpace(query.Query)

	empty := &telego.AnswerInlineQueryParams{
		InlineQueryID: query.ID,
		Results:       []telego.InlineQueryResult{},
		CacheTime:     0,
	}

	// Проверка валидности url
	if !isAllowedShortURL(url) {
		return ctx.Bot().AnswerInlineQuery(ctx, empty)
	}

	downloader := h.downloaderFor(url)
	if downloader == nil {
		return ctx.Bot().AnswerInlineQuery(ctx, empty)
	}

	video, err := downloader.Download(ctx, url)
	if err != nil {
		utils.Log.WithField("url", url).Warn(err)

		return ctx.Bot().AnswerInlineQuery(ctx, empty)
	}

	if n := requestedCounter.Add(1); n%10 == 0 {
		utils.Log.Infof("Количество запрошенных роликов %d", n)
	}

	return ctx.Bot().AnswerInlineQuery(ctx, &telego.AnswerInlineQueryParams{
		InlineQueryID: query.ID,
		Results: []telego.InlineQueryResult{
			&telego.InlineQueryResultVideo{
				Type:         telego.ResultTypeVideo,
				ID:           utils.Truncate(utils.StringNotEmptyCoalesce(video.ID, video.VideoURL), 64),
				Title:        utils.Truncate(video.Title, 200),
				Caption:      utils.Truncate(video.Title, 1024),
				VideoURL:     video.VideoURL,
				ThumbnailURL: video.ThumbnailURL,
				MimeType:     video.MimeType,
				ReplyMarkup:  tu.InlineKeyboard(tu.InlineKeyboardRow(tu.InlineKeyboardButton("Оригинал").WithURL(url))),
			},
		},
		CacheTime: 300,
	})
}

// isAllowedShortURL максимально быстрая проверка валидности url
func isAllowedShortURL(s string) bool {
	// Минимальная длина: https://vt.tiktok.com/X
	if len(s) < 23 {
		return false
	}

	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
