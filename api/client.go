package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the travel booking REST backend. One instance is shared by
// every resource service; it does request shaping only: no retries, no
// caching, no error translation beyond surfacing the backend message.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	// Token supplies the bearer token for authenticated calls. It may return
	// an empty string, in which case no Authorization header is sent.
	Token func() string
}

func NewClient(baseURL string, token func() string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		Token:   token,
	}
}

// Upload is a file to be sent as one multipart part.
type Upload struct {
	Filename string
	Reader   io.Reader
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) newRequest(method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s %s request: %v", method, path, err)
	}
	if c.Token != nil {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// doJSON sends payload (if non-nil) as a JSON body and decodes the response
// into out (if non-nil). Non-2xx responses become errors carrying the
// backend's message verbatim.
func (c *Client) doJSON(method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s payload: %v", method, path, err)
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := c.newRequest(method, path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doMultipart sends a multipart/form-data body built by fill.
func (c *Client) doMultipart(method, path string, fill func(w *multipart.Writer) error, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := fill(w); err != nil {
		return fmt.Errorf("failed to build multipart body for %s: %v", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body for %s: %v", path, err)
	}

	req, err := c.newRequest(method, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %v", req.URL.Path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %v", req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorBody
		if json.Unmarshal(respBody, &e) == nil {
			if e.Error != "" {
				return fmt.Errorf("backend returned %d: %s", resp.StatusCode, e.Error)
			}
			if e.Message != "" {
				return fmt.Errorf("backend returned %d: %s", resp.StatusCode, e.Message)
			}
		}
		return fmt.Errorf("backend returned %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response from %s: %v", req.URL.Path, err)
	}
	return nil
}

func encodeQuery(params url.Values) string {
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// writeFilePart copies one upload into the multipart writer under field.
func writeFilePart(w *multipart.Writer, field string, file Upload) error {
	part, err := w.CreateFormFile(field, file.Filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, file.Reader)
	return err
}
