package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/wxpress/salesboard/internal/modules/notify/application"
	"github.com/wxpress/salesboard/internal/modules/notify/infrastructure/websocket"
)

type NotifyHandler struct {
	sink *application.Sink
	hub  *websocket.Hub
}

func NewNotifyHandler(sink *application.Sink, hub *websocket.Hub) *NotifyHandler {
	return &NotifyHandler{sink: sink, hub: hub}
}

// Subscribe upgrades the connection to the live toast stream.
func (h *NotifyHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	websocket.ServeWs(h.hub, w, r)
}

// List returns the currently queued toasts, for boards that reconnect and
// need to catch up.
func (h *NotifyHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"data": h.sink.Active()}); err != nil {
		log.Printf("notify: encode error: %v", err)
	}
}

// Dismiss removes one toast by id.
func (h *NotifyHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, `{"error": "invalid notification id"}`, http.StatusBadRequest)
		return
	}
	h.sink.Dismiss(id)
	w.WriteHeader(http.StatusNoContent)
}
