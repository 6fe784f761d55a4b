package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/swiftsoftwaregroup/talis-list-client-go/internal/config"
	"github.com/swiftsoftwaregroup/talis-list-client-go/internal/logging"
)

// RunBatch reads list IDs, one per CSV row, from in and writes
// "list id, title, last published" rows to out.
func RunBatch(ctx context.Context, cfg *config.Config, logger logging.Logger, hc *http.Client, in io.Reader, out io.Writer) error {
	c, tokenErr := newListClient(ctx, cfg, logger, hc)

	r := csv.NewReader(in)
	r.FieldsPerRecord = 1
	r.TrimLeadingSpace = true
	w := csv.NewWriter(out)

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("couldn't read csv row from input: %w", err)
		}
		listID := record[0]

		l, err := c.GetList(ctx, listID)
		if err != nil {
			return withTokenErr(err, tokenErr)
		}

		logger.Info("Got list", "id", listID, "title", l.Data.Attributes.Title)

		if err := w.Write([]string{listID, l.Data.Attributes.Title, l.Data.Attributes.LastPublished}); err != nil {
			return fmt.Errorf("couldn't write csv row: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("couldn't write csv row: %w", err)
		}
	}
	return nil
}

// RunBatchFiles runs RunBatch over cfg.InFile and cfg.OutFile, creating the
// output directory if needed.
func RunBatchFiles(ctx context.Context, cfg *config.Config, logger logging.Logger, hc *http.Client) error {
	if err := os.MkdirAll(filepath.Dir(cfg.OutFile), os.ModePerm); err != nil {
		return fmt.Errorf("could not ensure out filepath: %w", err)
	}

	in, err := os.Open(cfg.InFile)
	if err != nil {
		return fmt.Errorf("error opening csv file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(cfg.OutFile)
	if err != nil {
		return fmt.Errorf("error creating csv file: %w", err)
	}
	defer out.Close()

	if err := RunBatch(ctx, cfg, logger, hc, in, out); err != nil {
		return err
	}
	return out.Close()
}
