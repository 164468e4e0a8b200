package handlers

import (
	"context"
	"errors"
	"net/http"

	tiktok "github.com/StounhandJ/aweme_resolver/internal/downloaders/tik_tok"
	"github.com/StounhandJ/aweme_resolver/internal/utils"
	easyjson "github.com/mailru/easyjson"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

const (
	msgBadRequest = "invalid url or id"
	msgNotFound   = "video not found"
	msgUpstream   = "upstream request failed"
)

type VideoFetcher interface {
	FetchVideo(ctx context.Context, videoURL, videoID string) (tiktok.Aweme, error)
}

type apiHandler struct {
	fetcher VideoFetcher
}

// NewAPIHandler отдаёт ссылки на видео по GET /aweme?url=... или /aweme?id=...
func NewAPIHandler(fetcher VideoFetcher) fasthttp.RequestHandler {
	h := apiHandler{fetcher: fetcher}

	return h.Handle
}

func (h apiHandler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/aweme":
		h.Aweme(ctx)
	case "/healthz":
		ctx.SetContentType("text/plain")
		ctx.SetBodyString("ok")
	default:
		ctx.Error("not found", http.StatusNotFound)
	}
}

func (h apiHandler) Aweme(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		ctx.Error("method not allowed", http.StatusMethodNotAllowed)
		return
	}

	src := string(ctx.QueryArgs().Peek("url"))
	id := string(ctx.QueryArgs().Peek("id"))

	// Наружу ходим только на tiktok.com
	if src != "" && !tiktok.IsShareURL(src) {
		ctx.Error(msgBadRequest, http.StatusBadRequest)
		return
	}

	aweme, err := h.fetcher.FetchVideo(ctx, src, id)
	if err != nil {
		utils.Log.WithFields(logrus.Fields{"url": src, "id": id}).Warn(err)

		code, msg := errorResponse(err)
		ctx.Error(msg, code)

		return
	}

	body, err := easyjson.Marshal(aweme)
	if err != nil {
		ctx.Error("encode aweme", http.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

// errorResponse отдаёт фиксированный текст на каждый класс ошибок, подробности остаются в логе.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, tiktok.ErrInvalidArgument), errors.Is(err, tiktok.ErrURLUnavailable):
		return http.StatusBadRequest, msgBadRequest
	case errors.Is(err, tiktok.ErrVideoUnavailable):
		return http.StatusNotFound, msgNotFound
	default:
		return http.StatusBadGateway, msgUpstream
	}
}
