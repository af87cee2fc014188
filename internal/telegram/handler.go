package telegram

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/hooshmand-ai/chatbot-gateway/pkg/logging"
)

// Handler is the webhook boundary: decode, validate, dedup, dispatch, ack.
type Handler struct {
	adapter *Adapter
	seen    *seenSet
	logger  *logging.Logger
}

func NewHandler(adapter *Adapter, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		adapter: adapter,
		seen:    newSeenSet(0),
		logger:  logger,
	}
}

// HandleWebhook receives one Telegram update. Once the payload decodes, the
// answer to Telegram is always 200 — a 5xx would trigger redelivery and the
// adapter has no way to undo a chatbot call that already happened. Duplicate
// update_ids are acknowledged without dispatching.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	var update Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := update.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log := h.logger.With("event_id", uuid.NewString(), "update_id", update.UpdateID)

	if h.seen.MarkSeen(update.UpdateID) {
		log.Warn("duplicate update, acknowledging without dispatch")
		writeAck(w)
		return
	}

	if err := h.adapter.ProcessUpdate(r.Context(), update); err != nil {
		log.Error("update processing failed", "error", err)
	}

	writeAck(w)
}

func writeAck(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
