package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"qboard/pkg/board"
)

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
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
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := boardIndex(questions).Render(r.Context(), w); err != nil {
		h.log.Warn("render index", zap.Error(err))
	}
}

// boardIndex renders a plain HTML listing of the stored questions.
func boardIndex(questions []board.Question) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html>\n<html><head><title>qboard</title></head><body>\n<h1>Questions</h1>\n"); err != nil {
			return err
		}
		if len(questions) == 0 {
			if _, err := io.WriteString(w, "<p>No questions yet.</p>\n"); err != nil {
				return err
			}
		}
		for _, q := range questions {
			if _, err := fmt.Fprintf(w, "<section><h2>%s</h2>\n<ul>\n", templ.EscapeString(q.Prompt)); err != nil {
				return err
			}
			for _, answer := range q.Answers {
				if _, err := fmt.Fprintf(w, "<li>%s</li>\n", templ.EscapeString(answer)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</ul></section>\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}
