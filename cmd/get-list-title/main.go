// Command get-list-title fetches a Talis Aspire reading list and logs its
// title and last published date.
//
// Credentials come from ACTIVE_TALIS_PERSONA_ID and
// ACTIVE_TALIS_PERSONA_SECRET, either in the environment or in a .env file:
//
//	get-list-title -t <tenant> -l <list id>
//	get-list-title -t <tenant> --infile lists.csv --outfile titles.csv
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log/v2"

	"github.com/swiftsoftwaregroup/talis-list-client-go/internal/app"
	"github.com/swiftsoftwaregroup/talis-list-client-go/internal/config"
	"github.com/swiftsoftwaregroup/talis-list-client-go/internal/logging"
)

const logPrefix = "get_list_title"

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
	}

	if err := run(context.Background(), os.Args, os.Getenv, os.Stdout, http.DefaultClient); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, getenv func(string) string, stdout io.Writer, hc *http.Client) error {
	cfg := &config.Config{}
	fs := config.NewFlagSet(args[0], cfg, stdout)
	if err := fs.Load(args[1:], getenv); err != nil {
		return err
	}

	if fs.Version {
		fmt.Fprint(stdout, Version())
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validate error: %w", err)
	}

	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	logger, f, err := logging.Open(cfg.LogDir, logPrefix, time.Now(), stdout, level)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(stdout, "This is an example script to get the title of a list:")

	if cfg.Batch() {
		err = app.RunBatchFiles(ctx, cfg, logger, hc)
	} else {
		err = app.Run(ctx, cfg, logger, hc)
	}
	if err != nil {
		logger.Error("Run failed", "err", err)
	}
	return err
}
