// Package client implements the single request/response exchange with the
// comparison backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/luminexhq/luminex-cli/internal/common"
	"github.com/luminexhq/luminex-cli/internal/model"
)

// DefaultBaseURL is used when no backend URL is configured.
const DefaultBaseURL = "http://127.0.0.1:8000"

const comparePath = "/upload_advanced"

// Client talks to the comparison backend. At most one submission should be
// in flight per form instance; the caller enforces that via its disabled
// submit gate.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a client for the given base URL, falling back to
// DefaultBaseURL when empty.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Compare submits both documents as one multipart request and returns the
// backend's comparison result. It fails fast with ErrMissingInput before
// touching the network when either document is absent. A single failed
// attempt is surfaced verbatim; there are no retries.
func (c *Client) Compare(ctx context.Context, invoice, po *model.Document) (*model.ComparisonResult, error) {
	if invoice == nil || po == nil {
		return nil, common.ErrMissingInput
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writePart(writer, "invoice", invoice); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}
	if err := writePart(writer, "po", po); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}

	url := c.baseURL + comparePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	slog.Debug("Submitting documents for comparison",
		"url", url,
		"invoice", invoice.Name,
		"po", po.Name)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		return nil, &ServiceError{Status: resp.StatusCode, Body: string(text)}
	}

	var result model.ComparisonResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	return &result, nil
}

// writePart adds one named binary part carrying the document's real
// content type.
func writePart(w *multipart.Writer, name string, doc *model.Document) error {
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, name, doc.Name))
	header.Set("Content-Type", doc.MediaType)

	part, err := w.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = part.Write(doc.Data)
	return err
}
