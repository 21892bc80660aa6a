// Package source fetches the raw question bank from a local file or a
// network resource. Providers report failure; they do not decide how to
// degrade — that policy belongs to the caller.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Provider supplies the raw question bank as an ordered sequence of
// loosely-typed records.
type Provider interface {
	FetchQuestionBank(ctx context.Context) ([]map[string]any, error)
}

// decodeBank parses a bank document. The top level must be an array;
// elements that are not objects become empty records rather than
// failing the whole fetch.
func decodeBank(data []byte) ([]map[string]any, error) {
	var top []json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("bank is not a question array: %w", err)
	}
	records := make([]map[string]any, len(top))
	for i, msg := range top {
		var rec map[string]any
		if err := json.Unmarshal(msg, &rec); err != nil || rec == nil {
			rec = map[string]any{}
		}
		records[i] = rec
	}
	return records, nil
}

// FileProvider reads the bank from a local JSON file.
type FileProvider struct {
	Path string
}

func NewFile(path string) *FileProvider {
	return &FileProvider{Path: path}
}

func (p *FileProvider) FetchQuestionBank(_ context.Context) ([]map[string]any, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return decodeBank(data)
}

// HTTPProvider fetches the bank from a URL, bypassing caches so a
// session start always observes the latest published bank.
type HTTPProvider struct {
	URL    string
	client *http.Client
}

func NewHTTP(url string) *HTTPProvider {
	return &HTTPProvider{
		URL:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *HTTPProvider) FetchQuestionBank(ctx context.Context) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bank: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch bank: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read bank response: %w", err)
	}
	return decodeBank(data)
}
