package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"qboard/pkg/board"
)

// HTTPShow sends a GET /show request and decodes the question list.
func HTTPShow(t testing.TB, baseURL string) []board.Question {
	t.Helper()
	var questions []board.Question
	body := doRequest(t, http.MethodGet, baseURL+"/show", nil)
	if err := json.Unmarshal(body, &questions); err != nil {
		t.Fatalf("decode show response: %v", err)
	}
	return questions
}

// HTTPAddQues sends a POST /addQues request and decodes the created question.
func HTTPAddQues(t testing.TB, baseURL string, req board.CreateRequest) board.Question {
	t.Helper()
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal create request: %v", err)
	}
	var created board.Question
	body := doRequest(t, http.MethodPost, baseURL+"/addQues", data)
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return created
}

// doRequest executes an HTTP request with a JSON payload and returns the body.
func doRequest(t testing.TB, method, url string, payload []byte) []byte {
	t.Helper()
	ctx := Context(t, 2*time.Second)
	reader := bytes.NewReader(payload)
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("http request: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.Fatalf("unexpected status %d for %s %s: %s", resp.StatusCode, method, url, string(body))
	}
	return body
}
