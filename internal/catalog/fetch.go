package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"balbuss.rs/internal/models"
)

// ErrUnavailable reports that the line catalog could not be fetched or
// decoded. Callers must surface it rather than degrading to an empty or
// permissive catalog: "no schedule constraint" and "could not determine
// constraint" are different answers.
var ErrUnavailable = errors.New("line catalog unavailable")

// linesEnvelope is the upstream API's response wrapper.
type linesEnvelope struct {
	Success bool          `json:"success"`
	Data    []models.Line `json:"data"`
}

func isLocalSource(source string) bool {
	return !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://")
}

func rawCatalogData(ctx context.Context, source string, isLocalFile bool) ([]byte, error) {
	if isLocalFile {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("reading local catalog file: %w", err)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading catalog: %w", err)
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog endpoint returned status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading catalog response: %w", err)
	}
	return b, nil
}

// loadCatalog fetches and decodes the line catalog from either a URL or
// a local file. Every failure mode wraps ErrUnavailable.
func loadCatalog(ctx context.Context, source string, isLocalFile bool) ([]models.Line, error) {
	b, err := rawCatalogData(ctx, source, isLocalFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var envelope linesEnvelope
	if err := json.Unmarshal(b, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding catalog envelope: %w", ErrUnavailable, err)
	}

	if !envelope.Success {
		return nil, fmt.Errorf("%w: upstream reported failure", ErrUnavailable)
	}

	return envelope.Data, nil
}
