package record

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=record_client.go -destination=mock/record_client_mock.go -package=mock
type Client interface {
	FetchRecords(ctx context.Context) ([]Record, error)
	Upload(ctx context.Context, file FileHandle) (UploadResponse, error)
}

// StatusError is returned when the backend answers outside 2xx.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("records backend %s: status=%d body=%s", e.Op, e.Status, e.Body)
}

type httpClient struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger ...*zap.Logger) Client {
	l := zap.L().Named("record.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("record.client")
	}
	return &httpClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  l,
	}
}

func (c *httpClient) FetchRecords(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/records", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus("list", resp); err != nil {
		return nil, err
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if records == nil {
		records = []Record{}
	}

	c.logger.Debug("records fetched",
		zap.Int("count", len(records)),
		zap.Duration("took", time.Since(started)),
	)
	return records, nil
}

func (c *httpClient) Upload(ctx context.Context, file FileHandle) (UploadResponse, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(file.Name)))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return UploadResponse{}, err
	}
	if _, err := part.Write(file.Content); err != nil {
		return UploadResponse{}, err
	}
	if err := mw.Close(); err != nil {
		return UploadResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return UploadResponse{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return UploadResponse{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus("upload", resp); err != nil {
		return UploadResponse{}, err
	}

	var out UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return UploadResponse{}, fmt.Errorf("decode upload response: %w", err)
	}

	c.logger.Debug("file uploaded",
		zap.String("file_name", file.Name),
		zap.String("content_type", contentType),
		zap.Int("size", len(file.Content)),
	)
	return out, nil
}

func checkStatus(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	blob, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return &StatusError{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(blob))}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
