package main

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dustin/go-humanize"
	"github.com/jmgilman/go/errors"
	"github.com/rjw57/thredds"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const maximumSimultaneousDownloads = 5

var downloadCmd = &cobra.Command{
	Use:   "download [-basedir directory] [-depth n] catalog-url",
	Short: "download the data files below a catalog",
	Long: `
Download crawls the catalog and downloads every data file found which the
catalog offers an HTTP file service for.

Files are saved below the directory given by --basedir at their URL path, so
that "data/2014/file.nc" is saved to basedir/data/2014/file.nc. Files which
already exist are not downloaded again. If omitted, the current working
directory is used.

The --depth option controls how many levels of catalog references are followed
below the given catalog. The default of 0 only reads the given catalog.

The utility attempts to be robust in the face of flaky network connections or
a flaky server by re-trying failed downloads. Partially downloaded files are
removed.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		tfs := &TemporaryFileSource{Prefix: ".thredds-"}
		defer tfs.RemoveAll()

		// Make sure to remove temporary files on keyboard interrupt
		atexit(func() { tfs.RemoveAll() })

		d := &downloader{
			client:   client,
			baseDir:  cfg.GetString("download.basedir"),
			tfs:      tfs,
			strategy: fetchStrategy(),
		}
		return d.run(cmd.Context(), args[0], cfg.GetInt("download.depth"))
	},
}

func init() {
	downloadCmd.Flags().String("basedir", ".", "directory to download data to")
	downloadCmd.Flags().Int("depth", 0, "levels of catalog references to follow")
	for _, name := range []string{"basedir", "depth"} {
		if err := cfg.BindPFlag("download."+name, downloadCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func fetchStrategy() thredds.FetchStrategy {
	return thredds.FetchStrategy{
		MaximumRetries: cfg.GetInt("retries"),
		RetrySleep:     cfg.GetDuration("retry-sleep"),
		FetchTimeout:   cfg.GetDuration("timeout"),
	}
}

type downloader struct {
	client   *thredds.Client
	baseDir  string
	tfs      *TemporaryFileSource
	strategy thredds.FetchStrategy
}

// run crawls the catalog at url and downloads the data files found. Files
// are downloaded concurrently while crawling continues.
func (d *downloader) run(ctx context.Context, url string, depth int) error {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
		total  uint64

		// Destinations already being downloaded
		scheduled = map[string]bool{}
	)

	// Semaphore used to limit the number of simultaneous downloads
	sem := make(chan struct{}, maximumSimultaneousDownloads)
	start := time.Now()

	err := d.client.Crawl(ctx, url, depth, func(ds *thredds.DirectDataset) error {
		if _, ok := ds.FileURL(); !ok {
			logrus.WithField("dataset", ds.ID).Info("no file service, skipping")
			return nil
		}
		dest, err := destination(d.baseDir, ds.URLPath)
		if err != nil {
			return err
		}
		if _, err := os.Stat(dest); err == nil {
			logrus.Info("not overwriting ", dest)
			return nil
		}
		mu.Lock()
		if scheduled[dest] {
			mu.Unlock()
			logrus.WithField("dataset", ds.ID).Info("already downloading ", dest)
			return nil
		}
		scheduled[dest] = true
		mu.Unlock()

		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			n, err := d.download(ctx, ds, dest)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logrus.WithFields(logrus.Fields{"dataset": ds.ID, "error": err}).
					Error("failed to download")
				failed++
				return
			}
			total += uint64(n)
		}()
		return nil
	})
	wg.Wait()
	if err != nil {
		return err
	}

	elapsed := time.Since(start).Seconds()
	if elapsed > 0 {
		logrus.Infof("downloaded %v, overall download speed: %v/sec",
			humanize.IBytes(total), humanize.IBytes(uint64(float64(total)/elapsed)))
	}
	if failed > 0 {
		return errors.Newf(errors.CodeExecutionFailed, "%d file(s) failed to download", failed)
	}
	return nil
}

// download fetches a single data file to dest, retrying failed attempts.
// The file only appears at dest once it is complete.
func (d *downloader) download(ctx context.Context, ds *thredds.DirectDataset, dest string) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return 0, err
	}

	b := backoff.NewExponentialBackOff()
	if d.strategy.RetrySleep > 0 {
		b.InitialInterval = d.strategy.RetrySleep
	}
	var policy backoff.BackOff = b
	if d.strategy.MaximumRetries >= 0 {
		policy = backoff.WithMaxRetries(b, uint64(d.strategy.MaximumRetries))
	}

	var n int64
	tries := 0
	err := backoff.RetryNotify(
		func() error {
			tries++
			logrus.Info("Fetching ", ds.Name, " (try ", tries, ")")

			tmpFile, err := d.tfs.Create(filepath.Dir(dest))
			if err != nil {
				return backoff.Permanent(err)
			}
			n, err = d.client.Download(ctx, ds, tmpFile)
			if cerr := tmpFile.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				d.tfs.Remove(tmpFile)
				if !errors.IsRetryable(err) {
					return backoff.Permanent(err)
				}
				return err
			}
			return d.tfs.Keep(tmpFile, dest)
		},
		backoff.WithContext(policy, ctx),
		func(err error, wait time.Duration) {
			logrus.WithField("error", err).Warnf("error fetching %v, retrying in %v", ds.Name, wait)
		},
	)
	return n, err
}
