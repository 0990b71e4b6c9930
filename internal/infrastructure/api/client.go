package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jpillora/backoff"

	"mealbot/internal/domain"
	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/output"
)

const maxAttempts = 3

// Client is the one HTTP access point to the backend. It joins paths
// onto the base URL, injects the session's bearer token, leaves the
// content type to the multipart writer for multipart bodies, and
// evicts the token on any unauthorized response.
type Client struct {
	baseURL string
	httpc   *http.Client

	// onUnauthorized is called with the Discord user whose token was
	// rejected, before the request returns.
	onUnauthorized func(discordUserID string)
}

func NewClient(baseURL string, onUnauthorized func(string)) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpc:          &http.Client{Timeout: 30 * time.Second},
		onUnauthorized: onUnauthorized,
	}
}

// multipartBody is a form-data request body. The request's content type
// comes from the writer (it carries the boundary); do must never set a
// JSON content type for it.
type multipartBody struct {
	buf         bytes.Buffer
	contentType string
}

func newMultipartBody(fields map[string]string, fileField, filename string, file []byte) (*multipartBody, error) {
	b := &multipartBody{}
	w := multipart.NewWriter(&b.buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, filename)
		if err != nil {
			return nil, fmt.Errorf("create file part: %w", err)
		}
		if _, err := part.Write(file); err != nil {
			return nil, fmt.Errorf("write file part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}
	b.contentType = w.FormDataContentType()
	return b, nil
}

type request struct {
	method string
	path   string
	query  url.Values
	sess   *entities.Session
	json   any
	form   *multipartBody
	out    any
}

func (c *Client) do(ctx context.Context, r request) error {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body []byte
	contentType := ""
	switch {
	case r.form != nil:
		body = r.form.buf.Bytes()
		contentType = r.form.contentType
	case r.json != nil:
		var err error
		body, err = json.Marshal(r.json)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		contentType = "application/json"
	}

	retry := &backoff.Backoff{Min: 200 * time.Millisecond, Max: 2 * time.Second, Jitter: true}
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := c.send(ctx, r, u, contentType, body)
		if err == nil {
			return c.decode(r, resp)
		}
		lastErr = err
		if !retryable(r.method, err) || attempt == maxAttempts {
			return err
		}
		log.Printf("⚠️ %s %s failed (attempt %d/%d): %v", r.method, r.path, attempt, maxAttempts, err)
		select {
		case <-time.After(retry.Duration()):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}

func (c *Client) send(ctx context.Context, r request, u, contentType string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if r.sess.LoggedIn() {
		req.Header.Set("Authorization", "Bearer "+r.sess.Token)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, c.failure(r, resp)
	}
	return resp, nil
}

// failure normalizes a non-2xx response. 401 on an authenticated
// request evicts the token; business rejections keep the backend's own
// message.
func (c *Client) failure(r request, resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized && r.sess.LoggedIn() {
		log.Printf("🔒 401 on %s %s, evicting token for %s", r.method, r.path, r.sess.DiscordUserID)
		if c.onUnauthorized != nil {
			c.onUnauthorized(r.sess.DiscordUserID)
		}
		return domain.ErrSessionExpired
	}
	apiErr := &output.APIError{Status: resp.StatusCode}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&payload); err == nil {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}

func (c *Client) decode(r request, resp *http.Response) error {
	defer resp.Body.Close()
	if r.out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(r.out); err != nil {
		return fmt.Errorf("decode %s %s: %w", r.method, r.path, err)
	}
	return nil
}

// retryable: transient transport failures and 5xx answers, and only for
// GETs, which are safe to repeat.
func retryable(method string, err error) bool {
	if method != http.MethodGet {
		return false
	}
	var apiErr *output.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 500
	}
	// A 401/domain error never retries; anything else on a GET is a
	// transport failure.
	return domain.Code(err) == ""
}
