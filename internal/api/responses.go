package api

import (
	"encoding/json"
	"net/http"

	"qboard/pkg/board"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeBytes(w, status, mustJSONError(errorResponse{Error: code}))
}

func writeQuestionResponse(w http.ResponseWriter, status int, payload board.Question) {
	writeBytes(w, status, mustJSONQuestion(payload))
}

func writeQuestionsResponse(w http.ResponseWriter, status int, payload []board.Question) {
	writeBytes(w, status, mustJSONQuestions(payload))
}

func writeBytes(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func mustJSONError(payload errorResponse) []byte {
	data, _ := json.Marshal(payload)
	return data
}

func mustJSONQuestion(payload board.Question) []byte {
	data, _ := json.Marshal(payload)
	return data
}

func mustJSONQuestions(payload []board.Question) []byte {
	data, _ := json.Marshal(payload)
	return data
}
