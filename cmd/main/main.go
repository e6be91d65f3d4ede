package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/j0lvera/arlo/internal/assistant"
	"github.com/j0lvera/arlo/internal/bot"
	"github.com/j0lvera/arlo/internal/config"
	"github.com/j0lvera/arlo/internal/host"
	"github.com/j0lvera/arlo/internal/knowledge"
	"github.com/j0lvera/arlo/internal/log"
	"github.com/j0lvera/arlo/internal/server"
	"github.com/j0lvera/arlo/internal/wolfram"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "arlo",
		Short:        "ARLO text assistant",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newServeCmd(), newAskCmd(buildResolver))
	return cmd
}

// core holds the modules shared by every command.
func core() fx.Option {
	return fx.Options(
		config.Module(),
		wolfram.Module(),
		knowledge.Module(),
		host.Module(),
		assistant.Module(),
	)
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the assistant over HTTP and Telegram",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fx.New(
				core(),
				log.Module(),
				server.Module(),
				bot.Module(),
			).Run()
		},
	}
}

// resolver is the part of the assistant the ask command needs.
type resolver interface {
	Resolve(ctx context.Context, query string) string
}

// buildResolver wires the assistant without transports. Logs go to stderr so
// stdout carries only the reply.
func buildResolver() (resolver, error) {
	var r *assistant.Resolver
	app := fx.New(
		core(),
		fx.Provide(func(cfg *config.Config) zerolog.Logger {
			return log.NewLogger(os.Stderr, cfg.LogFormat, cfg.Debug)
		}),
		fx.NopLogger,
		fx.Populate(&r),
	)
	if err := app.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

func newAskCmd(build func() (resolver, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <query...>",
		Short: "Resolve a single query and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := build()
			if err != nil {
				return err
			}

			reply := r.Resolve(cmd.Context(), strings.Join(args, " "))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), reply)
			return err
		},
	}
}
