package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsWriteTimeout  = 10 * time.Second
	wsStatsInterval = 2 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// wsClient serialises writes; gorilla connections allow one writer at a
// time.
type wsClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsClient) write(packet []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err != nil {
		return fmt.Errorf("could not set write deadline: %w", err)
	}
	return c.conn.WriteMessage(websocket.TextMessage, packet)
}

// @Summary	Open websocket for step changes and periodic statistics
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade already replied to the client
		a.logger.Warn(fmt.Sprintf("couldn't make websocket: %s", err))
		return
	}
	client := &wsClient{conn: ws}
	defer func() {
		a.removeClient(client)
		err := ws.Close()
		if err != nil {
			a.logger.Debug(fmt.Sprintf("could not close websocket: %s", err))
		}
	}()

	a.wsMu.Lock()
	a.wsClients[client] = true
	a.Stats.SetWsClients(len(a.wsClients))
	a.wsMu.Unlock()

	a.send(client, a.Stats.Snapshot())

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}
		a.logger.Debug(fmt.Sprintf("Received: %s", msg))
	}
}

func (a *Api) removeClient(client *wsClient) {
	a.wsMu.Lock()
	defer a.wsMu.Unlock()
	delete(a.wsClients, client)
	a.Stats.SetWsClients(len(a.wsClients))
}

func (a *Api) send(client *wsClient, v any) {
	packet, err := json.Marshal(v)
	if err != nil {
		a.logger.Error(fmt.Sprintf("could not encode websocket packet: %s", err))
		return
	}
	err = client.write(packet)
	if err != nil {
		a.logger.Debug(fmt.Sprintf("could not write to websocket: %s", err))
	}
}

func (a *Api) broadcast(v any) {
	a.wsMu.Lock()
	clients := make([]*wsClient, 0, len(a.wsClients))
	for c := range a.wsClients {
		clients = append(clients, c)
	}
	a.wsMu.Unlock()

	for _, c := range clients {
		a.send(c, v)
	}
}

// pushStats sends a stats snapshot to every websocket client until the api
// is closed.
func (a *Api) pushStats() {
	a.pushStatsEvery(wsStatsInterval)
}

func (a *Api) pushStatsEvery(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-a.done:
			return
		case <-ticker.C:
			a.broadcast(a.Stats.Snapshot())
		}
	}
}
