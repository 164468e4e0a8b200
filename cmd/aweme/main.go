package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tiktok "github.com/StounhandJ/aweme_resolver/internal/downloaders/tik_tok"
	"github.com/StounhandJ/aweme_resolver/internal/transport"
	"github.com/StounhandJ/aweme_resolver/internal/utils"
	easyjson "github.com/mailru/easyjson"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(os.Stdout).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "aweme",
		Usage:  "resolve TikTok share links and fetch download addresses",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				Usage:   "mobile API host",
				Value:   tiktok.BaseURL,
				Sources: cli.EnvVars("AWEME_HOST"),
			},
			&cli.StringFlag{
				Name:    "root-url",
				Usage:   "address TikTok redirects to when a link is dead",
				Value:   tiktok.RootURL,
				Sources: cli.EnvVars("AWEME_ROOT_URL"),
			},
			&cli.StringFlag{
				Name:    "proxy",
				Usage:   "http(s) or socks5 proxy URL",
				Sources: cli.EnvVars("AWEME_PROXY"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "per-request timeout",
				Value:   15 * time.Second,
				Sources: cli.EnvVars("AWEME_TIMEOUT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warning, error or fatal",
				Value:   "error",
				Sources: cli.EnvVars("AWEME_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "resolve",
				Usage:     "print the video id a share link points to",
				ArgsUsage: "<url>",
				Action:    resolveAction,
			},
			{
				Name:  "fetch",
				Usage: "print download and cover addresses as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "share link"},
					&cli.StringFlag{Name: "id", Usage: "numeric video id, skips link resolution"},
				},
				Action: fetchAction,
			},
		},
	}
}

func resolveAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("%w: expected exactly one url", tiktok.ErrInvalidArgument)
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := client.ResolveID(ctx, cmd.Args().First())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, id)

	return err
}

func fetchAction(ctx context.Context, cmd *cli.Command) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	aweme, err := client.FetchVideo(ctx, cmd.String("url"), cmd.String("id"))
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	if _, err = easyjson.MarshalToWriter(aweme, w); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w)

	return err
}

func newClient(cmd *cli.Command) (*tiktok.Client, error) {
	log := utils.InitLogger(cmd.String("log-level"))

	httpClient, err := transport.New(cmd.String("proxy"), cmd.Duration("timeout"))
	if err != nil {
		return nil, err
	}

	return tiktok.NewClient(httpClient,
		tiktok.WithHost(cmd.String("host")),
		tiktok.WithRootURL(cmd.String("root-url")),
		tiktok.WithLogger(log),
	)
}
