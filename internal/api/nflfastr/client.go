package nflfastr

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/draftboardhq/bigboard/internal/config"
)

var releaseURL = "https://github.com/nflverse/nflfastR-data/releases/download/play_by_play_%d/play_by_play_%d.csv.gz"

type Client struct {
	httpClient *http.Client
	Config     config.NFLFastR
}

func NewClient(cfg config.NFLFastR) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		Config:     cfg,
	}
}

// Download fetches the season play-by-play archive into the cache dir and
// returns its path. An already-downloaded archive is reused as-is.
func (c *Client) Download() (string, error) {
	path := filepath.Join(c.Config.CacheDir, fmt.Sprintf("play_by_play_%d.csv.gz", c.Config.Season))

	if _, err := os.Stat(path); err == nil {
		slog.Info("Using cached play-by-play archive", "path", path)
		return path, nil
	}

	url := fmt.Sprintf(releaseURL, c.Config.Season, c.Config.Season)
	slog.Info("Downloading play-by-play archive", "url", url)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("downloading play-by-play data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code downloading play-by-play data: %d", resp.StatusCode)
	}

	// Write to a temp file and rename into place so a truncated download
	// never lands at the cache path, where it would be reused forever.
	tmp, err := os.CreateTemp(c.Config.CacheDir, "play_by_play_*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating archive file: %w", err)
	}

	written, err := io.Copy(tmp, resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil && resp.ContentLength >= 0 && written != resp.ContentLength {
		err = fmt.Errorf("truncated download: got %d of %d bytes", written, resp.ContentLength)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing archive file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("finalizing archive file: %w", err)
	}

	return path, nil
}
