package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lwch/logging"
	"github.com/teatak/transfer/transfer"
)

// Path is the only route served.
const Path = "/transfer"

// ErrorResponse is the body of every non-200 reply.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Handler serves GET /transfer?word=.
type Handler struct {
	tr  *transfer.Translator
	rec transfer.Recorder
	mux *http.ServeMux
}

// New returns a handler backed by tr. rec may be nil.
func New(tr *transfer.Translator, rec transfer.Recorder) *Handler {
	h := &Handler{tr: tr, rec: rec, mux: http.NewServeMux()}
	h.mux.HandleFunc(Path, h.handleTransfer)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleTransfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Detail: "method not allowed"})
		return
	}

	query := r.URL.Query()
	if !query.Has("word") {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: "word query parameter required"})
		return
	}
	word := query.Get("word")

	res, err := h.tr.Transfer(word)
	if h.rec != nil {
		if rerr := h.rec.Record(res); rerr != nil {
			logging.Error("record %q: %v", word, rerr)
		}
	}
	if errors.Is(err, transfer.ErrNoMatch) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: "item not found"})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("write response: %v", err)
	}
}
