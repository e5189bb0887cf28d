package notify

import (
	"github.com/wxpress/salesboard/internal/modules/notify/application"
	"github.com/wxpress/salesboard/internal/modules/notify/infrastructure/websocket"
	notify_http "github.com/wxpress/salesboard/internal/modules/notify/interfaces/http"
)

type Module struct {
	sink    *application.Sink
	handler *notify_http.NotifyHandler
	hub     *websocket.Hub
}

func NewModule() *Module {
	hub := websocket.NewHub()
	go hub.Run()

	sink := application.NewSink(hub)
	handler := notify_http.NewNotifyHandler(sink, hub)

	return &Module{
		sink:    sink,
		handler: handler,
		hub:     hub,
	}
}

func (m *Module) HTTPHandler() *notify_http.NotifyHandler {
	return m.handler
}

func (m *Module) Sink() *application.Sink {
	return m.sink
}

func (m *Module) Shutdown() {
	m.sink.Close()
	m.hub.Stop()
}
