package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"qboard/internal/question"
	"qboard/pkg/board"
)

func (h *handler) handleAddQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if h.store == nil {
		writeError(w, http.StatusInternalServerError, "backend_error")
		return
	}
	var req board.CreateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	created, err := h.store.CreateQuestion(r.Context(), req)
	if err != nil {
		if errors.Is(err, question.ErrEmptyPrompt) || errors.Is(err, question.ErrNoAnswers) {
			writeError(w, http.StatusBadRequest, "invalid_question")
			return
		}
		h.log.Error("create question", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "backend_error")
		return
	}
	h.log.Info("question created",
		zap.String("id", created.ID),
		zap.Int("answers", len(created.Answers)),
	)
	writeQuestionResponse(w, http.StatusOK, created)
}
