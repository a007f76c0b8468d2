package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/simpy/client"
	"github.com/xxxsen/simpy/internal/config"
)

type rootOptions struct {
	configPath string
	username   string
	password   string
	baseURL    string
	strict     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logutil.GetLogger(ctx).Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "simpy",
		Short:         "simpy bookmarking service client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config.json")
	flags.StringVar(&opts.username, "username", "", "account username, overrides config")
	flags.StringVar(&opts.password, "password", "", "account password, overrides config")
	flags.StringVar(&opts.baseURL, "base-url", "", "service base url, overrides config")
	flags.BoolVar(&opts.strict, "strict", false, "fail on transport and decode errors")

	rootCmd.AddCommand(
		newDemoCmd(opts),
		newTagsCmd(opts),
		newRemoveTagCmd(opts),
		newRenameTagCmd(opts),
		newMergeTagsCmd(opts),
		newSplitTagCmd(opts),
		newLinksCmd(opts),
		newSaveLinkCmd(opts),
		newDeleteLinkCmd(opts),
		newNotesCmd(opts),
		newSaveNoteCmd(opts),
		newDeleteNoteCmd(opts),
		newTopicsCmd(opts),
		newTopicCmd(opts),
		newWatchlistsCmd(opts),
		newWatchlistCmd(opts),
	)
	return rootCmd
}

// loadConfig merges the config file with command line overrides and sets up
// logging.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.username != "" {
		cfg.Username = opts.username
	}
	if opts.password != "" {
		cfg.Password = opts.password
	}
	if opts.baseURL != "" {
		cfg.BaseURL = opts.baseURL
	}
	if opts.strict {
		cfg.Strict = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Init(
		cfg.LogConfig.File,
		cfg.LogConfig.Level,
		int(cfg.LogConfig.FileCount),
		int(cfg.LogConfig.FileSize),
		int(cfg.LogConfig.KeepDays),
		cfg.LogConfig.Console,
	)
	return cfg, nil
}

func newClient(opts *rootOptions) (*client.Client, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	logutil.GetLogger(context.Background()).Debug("client configured",
		zap.String("base_url", cfg.BaseURL),
		zap.String("username", cfg.Username),
		zap.Bool("strict", cfg.Strict),
	)
	return client.New(client.Args{
		Config:     cfg.ClientConfig(),
		HTTPClient: &http.Client{Timeout: cfg.Timeout()},
	}), nil
}

// printResult writes the value as JSON. A degraded failure is reported on
// stderr together with the HTTP status so an empty result is never silent.
func printResult[T any](cmd *cobra.Command, res client.Result[T]) error {
	if res.Err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: http status %d: %v\n", res.HTTPStatus, res.Err)
	}
	return writeJSON(cmd.OutOrStdout(), res.Value)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
