// Package main implements todoctl, a terminal front end over the same view
// state controller the HTTP view API serves. Each invocation builds the
// controller in process, applies one gesture and renders the result.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-view/internal/bootstrap"
	"github.com/jsamuelsen11/todo-view/internal/platform/config"
	"github.com/jsamuelsen11/todo-view/internal/platform/logging"
	"github.com/jsamuelsen11/todo-view/internal/ports"
)

func main() {
	if err := newRootCmd(connect).Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	profile   string
	configDir string
	baseURL   string
	logLevel  string
}

// session is what every subcommand runs against.
type session struct {
	view     ports.ViewService
	feed     ports.NotificationFeed
	now      func() time.Time
	shutdown func(context.Context) error
}

// connectFunc builds a session from the root flags. Tests swap it for one
// backed by mocks.
type connectFunc func(ctx context.Context, opts *rootOptions) (*session, error)

type cli struct {
	opts    rootOptions
	connect connectFunc
	sess    *session
	out     io.Writer
}

func defaultProfile() string {
	if p := os.Getenv("APP_PROFILE"); p != "" {
		return p
	}
	return "local"
}

func newRootCmd(connect connectFunc) *cobra.Command {
	c := &cli{connect: connect}

	root := &cobra.Command{
		Use:   "todoctl",
		Short: "List, filter and edit todos from the terminal",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := c.connect(cmd.Context(), &c.opts)
			if err != nil {
				return err
			}
			c.sess = sess
			c.out = cmd.OutOrStdout()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if c.sess == nil || c.sess.shutdown == nil {
				return nil
			}
			return c.sess.shutdown(cmd.Context())
		},
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.profile, "profile", defaultProfile(), "config profile (or APP_PROFILE env)")
	flags.StringVar(&c.opts.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	flags.StringVar(&c.opts.baseURL, "base-url", "", "override the remote todo API base URL")
	flags.StringVar(&c.opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		c.newListCmd(),
		c.newMetricsCmd(),
		c.newStatusCmd("done", "Mark a todo as done", true),
		c.newStatusCmd("undone", "Mark a todo as not done", false),
		c.newAddCmd(),
		c.newEditCmd(),
		c.newRemoveCmd(),
	)

	return root
}

// connect loads configuration and wires the shared object graph.
func connect(ctx context.Context, opts *rootOptions) (*session, error) {
	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.baseURL != "" {
		cfg.Client.BaseURL = opts.baseURL
	}

	logger := logging.New(opts.logLevel, "text", os.Stderr)

	tel, err := bootstrap.InitTelemetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := bootstrap.NewInjector(cfg, logger, tel.Metrics)

	view, err := do.Invoke[ports.ViewService](injector)
	if err != nil {
		return nil, fmt.Errorf("resolving view: %w", err)
	}
	feed, err := do.Invoke[ports.NotificationFeed](injector)
	if err != nil {
		return nil, fmt.Errorf("resolving notifications: %w", err)
	}

	return &session{
		view:     view,
		feed:     feed,
		now:      time.Now,
		shutdown: tel.Shutdown,
	}, nil
}
