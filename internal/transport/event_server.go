// Package transport serves the node event-observer endpoints and the JSON
// read API.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/decoder"
	"go.uber.org/zap"
)

// DefaultBodyLimit caps node event payloads.
const DefaultBodyLimit = 25 << 20

var errBadRequest = errors.New("bad request")

// EventServer receives the Stacks node's event-observer callbacks. Each
// request is answered only after the message has been handled, so the
// node does not run ahead of the indexer.
type EventServer struct {
	ingester  Ingester
	bodyLimit int64
	logger    *zap.Logger
	mux       *http.ServeMux
}

// NewEventServer routes the node observer endpoints to ingester. A
// non-positive bodyLimit falls back to DefaultBodyLimit.
func NewEventServer(ingester Ingester, bodyLimit int64, logger *zap.Logger) *EventServer {
	if bodyLimit <= 0 {
		bodyLimit = DefaultBodyLimit
	}
	s := &EventServer{
		ingester:  ingester,
		bodyLimit: bodyLimit,
		logger:    logger.Named("event_server"),
		mux:       http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /{$}", s.handleStatus)
	s.mux.HandleFunc("POST /new_block", s.handleNewBlock)
	s.mux.HandleFunc("POST /new_burn_block", s.handleNewBurnBlock)
	s.mux.HandleFunc("POST /new_mempool_tx", s.handleNewMempoolTx)
	s.mux.HandleFunc("POST /attachments/new", s.handleNewAttachments)
	return s
}

// ServeHTTP implements http.Handler.
func (s *EventServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *EventServer) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *EventServer) handleNewBlock(w http.ResponseWriter, r *http.Request) {
	var msg decoder.BlockMessage
	if err := s.decode(w, r, &msg); err != nil {
		writeError(w, s.logger, err)
		return
	}
	if err := s.ingester.SubmitBlock(r.Context(), &msg); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeOK(w)
}

func (s *EventServer) handleNewBurnBlock(w http.ResponseWriter, r *http.Request) {
	var msg decoder.BurnBlockMessage
	if err := s.decode(w, r, &msg); err != nil {
		writeError(w, s.logger, err)
		return
	}
	if err := s.ingester.SubmitBurnBlock(r.Context(), &msg); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeOK(w)
}

func (s *EventServer) handleNewMempoolTx(w http.ResponseWriter, r *http.Request) {
	var rawTxs []string
	if err := s.decode(w, r, &rawTxs); err != nil {
		writeError(w, s.logger, err)
		return
	}
	if err := s.ingester.SubmitMempoolBatch(r.Context(), rawTxs); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeOK(w)
}

// Attachments are fetched on demand by the name processor.
func (s *EventServer) handleNewAttachments(w http.ResponseWriter, r *http.Request) {
	var attachments []json.RawMessage
	if err := s.decode(w, r, &attachments); err != nil {
		writeError(w, s.logger, err)
		return
	}
	s.logger.Debug("attachments received", zap.Int("count", len(attachments)))
	writeOK(w)
}

func (s *EventServer) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, s.bodyLimit)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return err
		}
		return fmt.Errorf("%w: decode %s body: %v", errBadRequest, r.URL.Path, err)
	}
	return nil
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}
