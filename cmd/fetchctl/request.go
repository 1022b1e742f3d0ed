package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/kbukum/fetchkit/component"
	"github.com/kbukum/fetchkit/fetch"
	"github.com/kbukum/fetchkit/httpclient"
	"github.com/kbukum/fetchkit/logger"
	"github.com/kbukum/fetchkit/provider"
)

// verbFunc is one of fetch.Get, fetch.Post, fetch.Put or fetch.Remove.
type verbFunc func(context.Context, *fetch.Fetcher, string, ...fetch.RequestConfig) provider.Iterator[responseBody]

func requestAction(verb verbFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		// Args
		if len(c.Args()) != 1 {
			return errors.Errorf(
				"%s requires one argument-- an address", c.Command.Name,
			)
		}
		address := c.Args().First()

		// Command-specific flags
		params, err := parseParams(c.StringSlice(flagParam))
		if err != nil {
			return err
		}

		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		credential, err := parseCredential(cfg.Credential)
		if err != nil {
			return err
		}

		log := logger.New(&cfg.Logging, cfg.Name)
		logger.SetGlobalLogger(log)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		tel, err := initTelemetry(ctx, cfg)
		if err != nil {
			return err
		}
		defer tel.shutdown(context.Background())

		transport := httpclient.NewComponent(cfg.HTTP)
		registry := component.NewRegistry(log)
		if err := registry.Register(transport); err != nil {
			return err
		}
		if err := registry.StartAll(ctx); err != nil {
			return errors.Wrap(err, "error starting transport")
		}
		defer func() { _ = registry.StopAll(context.Background()) }()

		f := fetch.New(
			transport.Adapter(),
			fetch.WithLogger(log),
			fetch.WithMiddleware(tel.middlewares(cfg, log)...),
		)

		body, err := provider.First(ctx, verb(ctx, f, address, fetch.RequestConfig{
			Params:     params,
			Credential: credential,
		}))
		if err != nil {
			return errors.Wrapf(err, "%s %s", strings.ToUpper(c.Command.Name), address)
		}

		return printResponse(c.App.Writer, cfg.Output, body)
	}
}
