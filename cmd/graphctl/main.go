// Command graphctl reads the Graph API from the command line.
//
// Credentials come from --token, a config file (--config) or the
// GRAPH_ACCESS_TOKEN, GRAPH_APP_ID and GRAPH_APP_SECRET environment variables.
//
//	graphctl me --fields id,name
//	graphctl list me friends --limit 50 --pages 3 --query 'data'
//	graphctl search coffee --type place --center 37.76,-122.43 --distance 1000 -o yaml
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	graph "github.com/jamesprial/go-graph-api-wrapper"
)

const userAgent = "graphctl/0.1"

// app holds the persistent flags shared by every subcommand.
type app struct {
	configPath string
	token      string
	logLevel   string
	output     string
	query      string

	out    io.Writer
	errOut io.Writer

	// newClient is replaced in tests
	newClient func(cfg *graph.Config) (*graph.Client, error)
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut, newClient: graph.NewClient}
}

func (a *app) logger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	return slog.New(tint.NewHandler(a.errOut, &tint.Options{Level: level, TimeFormat: time.Kitchen})), nil
}

func (a *app) client() (*graph.Client, error) {
	cfg, err := graph.LoadConfig(a.configPath)
	if err != nil {
		return nil, err
	}
	if a.token != "" {
		cfg.AccessToken = a.token
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = userAgent
	}
	logger, err := a.logger()
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger
	return a.newClient(cfg)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "graphctl",
		Short:         "Query the Graph API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch a.output {
			case "json", "yaml":
				return nil
			default:
				return fmt.Errorf("invalid --output %q: must be json or yaml", a.output)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", os.Getenv("GRAPHCTL_CONFIG"), "YAML or JSON config file")
	flags.StringVarP(&a.token, "token", "t", "", "access token, overrides the config file")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVarP(&a.output, "output", "o", "json", "output format: json or yaml")
	flags.StringVarP(&a.query, "query", "q", "", "path to extract from the result, e.g. data.[0].name")

	root.AddCommand(
		a.meCommand(),
		a.getCommand(),
		a.listCommand(),
		a.searchCommand(),
		a.fqlCommand(),
		a.pictureCommand(),
		a.kindsCommand(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(os.Stdout, os.Stderr)
	if err := a.rootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "graphctl:", err)
		os.Exit(1)
	}
}
