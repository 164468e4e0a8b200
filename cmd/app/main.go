package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StounhandJ/aweme_resolver/internal/config"
	downloadersService "github.com/StounhandJ/aweme_resolver/internal/downloaders"
	tiktok "github.com/StounhandJ/aweme_resolver/internal/downloaders/tik_tok"
	"github.com/StounhandJ/aweme_resolver/internal/handlers"
	"github.com/StounhandJ/aweme_resolver/internal/transport"
	"github.com/StounhandJ/aweme_resolver/internal/utils"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/valyala/fasthttp"
)

const shutdownTimeout = 10 * time.Second

var cfg config.Config

func main() {
	//------ Получение Конфигурации ------//
	if err := config.LoadConfig(&cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	utils.InitLogger(cfg.Application.LogLevel)
	//---------------//

	if err := run(); err != nil {
		utils.Log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	//------ HTTP клиент и TikTok API ------//
	client, err := transport.New(cfg.Application.ProxyURL, cfg.TikTok.Timeout.Std())
	if err != nil {
		return err
	}

	opts := []tiktok.Option{
		tiktok.WithHost(cfg.TikTok.Host),
		tiktok.WithLogger(utils.Log),
	}
	if cfg.TikTok.RootURL != "" {
		opts = append(opts, tiktok.WithRootURL(cfg.TikTok.RootURL))
	}
	if cfg.TikTok.UserAgent != "" {
		opts = append(opts, tiktok.WithUserAgent(cfg.TikTok.UserAgent))
	}

	tiktokClient, err := tiktok.NewClient(client, opts...)
	if err != nil {
		return err
	}
	//---------------//

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancelCause(sigCtx)
	defer cancel(nil)

	// Резолвер закрывается последним, после всех, кто им пользуется
	var steps []stopStep
	closeResolver := stopStep{name: "resolver", stop: func(context.Context) error {
		tiktokClient.Close()

		return nil
	}}

	//------ TELEGRAM бот ------//
	if cfg.Application.TGBotToken != "" {
		bh, err := startBot(ctx, tiktokClient, cancel)
		if err != nil {
			cancel(err)

			return errors.Join(err, shutdown(shutdownTimeout, closeResolver))
		}

		steps = append(steps, stopStep{name: "bot", stop: bh.StopWithContext})
	}
	//---------------//

	//------ HTTP API ------//
	if cfg.Application.ListenAddr != "" {
		server := &fasthttp.Server{
			Name:    "aweme",
			Handler: handlers.NewAPIHandler(tiktokClient),
		}

		go func() {
			utils.Log.Infof("HTTP API на %s", cfg.Application.ListenAddr)

			if err := server.ListenAndServe(cfg.Application.ListenAddr); err != nil {
				cancel(fmt.Errorf("http api: %w", err))
			}
		}()

		steps = append(steps, stopStep{name: "http", stop: server.ShutdownWithContext})
	}
	//---------------//

	//------ Ожидание завершения программы ------//
	utils.Log.Info("Всё запущено")

	<-ctx.Done()

	utils.Log.Info("Завершение работы")

	if err := shutdown(shutdownTimeout, append(steps, closeResolver)...); err != nil {
		utils.Log.Error(err)
	}

	if cause := context.Cause(ctx); !errors.Is(cause, context.Canceled) {
		return cause
	}

	return nil
}

// startBot запускает long polling, который останавливается вместе с ctx.
// Если обработчик бота падает, приложение завершается через cancel.
func startBot(ctx context.Context, tiktokClient *tiktok.Client, cancel context.CancelCauseFunc) (*th.BotHandler, error) {
	utils.Log.Info("Подключение TG-бота")

	bot, err := telego.NewBot(cfg.Application.TGBotToken, telego.WithDefaultLogger(cfg.Application.LogLevel == "debug", true))
	if err != nil {
		return nil, err
	}

	updates, err := bot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		return nil, err
	}

	bh, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return nil, err
	}

	handler := handlers.NewHandler([]downloadersService.IDownloader{
		tiktok.New(tiktokClient),
	})
	handler.SetupRoutes(bh)

	user, err := bot.GetMe(ctx)
	if err != nil {
		return nil, err
	}

	go func() {
		utils.Log.Infof("TG БОТ ID=%d имя=%s username=@%s", user.ID, user.FirstName, user.Username)

		if err := bh.Start(); err != nil {
			cancel(fmt.Errorf("bot handler: %w", err))
		}
	}()

	return bh, nil
}
