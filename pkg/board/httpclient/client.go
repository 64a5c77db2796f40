package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"qboard/pkg/board"
)

// Client implements Service against a remote qboardd server.
type Client struct {
	baseURL string
	client  *http.Client
}

// New constructs a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: &http.Client{}}
}

// NewWithTimeout constructs a client for the given base URL with a request timeout.
func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// ListQuestions fetches all stored questions over HTTP.
// A response that is valid JSON but not an array yields an empty list.
func (c *Client) ListQuestions(ctx context.Context) ([]board.Question, error) {
	body, status, err := c.get(ctx, "/show")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, decodeHTTPError(status, body)
	}
	var questions []board.Question
	if err := json.Unmarshal(body, &questions); err != nil {
		if json.Valid(body) {
			return []board.Question{}, nil
		}
		return nil, err
	}
	if questions == nil {
		questions = []board.Question{}
	}
	return questions, nil
}

// CreateQuestion stores a new question over HTTP and returns it with its id.
func (c *Client) CreateQuestion(ctx context.Context, req board.CreateRequest) (board.Question, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return board.Question{}, err
	}
	body, status, err := c.post(ctx, "/addQues", payload)
	if err != nil {
		return board.Question{}, err
	}
	if status != http.StatusOK {
		return board.Question{}, decodeHTTPError(status, body)
	}
	var res board.Question
	if err := json.Unmarshal(body, &res); err != nil {
		return board.Question{}, err
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func (c *Client) post(ctx context.Context, path string, payload []byte) ([]byte, int, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func decodeHTTPError(status int, body []byte) error {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != "" {
		return fmt.Errorf("http %d: %s", status, resp.Error)
	}
	return fmt.Errorf("http %d", status)
}
