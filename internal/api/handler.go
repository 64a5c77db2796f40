package api

import (
	"net/http"

	"go.uber.org/zap"

	"qboard/pkg/board"
)

// Config wires dependencies for the HTTP handler.
type Config struct {
	Store board.Service
	Log   *zap.Logger
}

// NewHandler builds an HTTP handler for the question board API.
func NewHandler(cfg Config) http.Handler {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	h := &handler{store: cfg.Store, log: log}
	mux := http.NewServeMux()
	mux.HandleFunc("/show", h.handleShow)
	mux.HandleFunc("/addQues", h.handleAddQuestion)
	mux.HandleFunc("/", h.handleIndex)
	return mux
}

type handler struct {
	store board.Service
	log   *zap.Logger
}

func (h *handler) handleShow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if h.store == nil {
		writeError(w, http.StatusInternalServerError, "backend_error")
		return
	}
	questions, err := h.store.ListQuestions(r.Context())
	if err != nil {
		h.log.Error("list questions", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "backend_error")
		return
	}
	if questions == nil {
		questions = []board.Question{}
	}
	writeQuestionsResponse(w, http.StatusOK, questions)
}
