package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stagehand/internal/server"
)

type serveOptions struct {
	addr string
}

func newServeCmd(root *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render endpoint over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, root)
			if err != nil {
				return err
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := server.New(log).ListenAndServe(ctx, opts.addr); err != nil {
				return newCommandError("serve", "running the render server on "+opts.addr, err, "Pick a free address with --addr.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "Address to listen on")

	return cmd
}
