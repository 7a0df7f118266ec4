package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/tbo47/control-diagram/diagram"
)

// Fetch downloads and parses a catalog document. It is the only asynchronous
// operation in the system, awaited once before the editor becomes usable;
// network and parse failures propagate to the caller unmodified.
func Fetch(ctx context.Context, client *http.Client, url string) ([]diagram.ShapeTemplate, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching catalog %s: %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	templates, err := Parse(data)
	if err != nil {
		return nil, err
	}
	slog.Info("catalog loaded", "url", url, "templates", len(templates))
	return templates, nil
}
