// Package feed pushes mission updates to browser clients over WebSocket.
package feed

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"artemisops/internal/domain"
)

const (
	TypeMissionsList   = "missions_list"
	TypeMissionUpdate  = "mission_update"
	TypeMissionWeather = "mission_weather"
	TypePong           = "pong"
	TypeError          = "error"
)

const writeTimeout = 10 * time.Second

type MissionQueries interface {
	List(ctx context.Context, includeInactive bool) ([]domain.Mission, error)
	Detail(ctx context.Context, id string) (*domain.MissionDetail, error)
	DetailsByIDs(ctx context.Context, ids []string) (map[string]domain.MissionDetail, error)
}

type WeatherQueries interface {
	MissionWeather(ctx context.Context, missionID string) (*domain.MissionWeather, error)
}

// Message is the envelope of every server-to-client frame.
type Message struct {
	Type      string `json:"type"`
	MissionID string `json:"mission_id,omitempty"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
}

type client struct {
	id   uuid.UUID
	conn *websocket.Conn

	mu           sync.Mutex // serializes writes and guards subscription
	subscription string
}

func (c *client) send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(msg)
}

func (c *client) subscribe(missionID string) {
	c.mu.Lock()
	c.subscription = missionID
	c.mu.Unlock()
}

func (c *client) subscribed() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subscription
}

type Hub struct {
	missions MissionQueries
	weather  WeatherQueries
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.RWMutex
	clients map[uuid.UUID]*client
}

func NewHub(missions MissionQueries, weather WeatherQueries, logger *slog.Logger) *Hub {
	return &Hub{
		missions: missions,
		weather:  weather,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger:  logger.With("component", "feed"),
		clients: make(map[uuid.UUID]*client),
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP upgrades the connection and serves the client until it leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	c := &client{id: uuid.New(), conn: conn}
	h.register(c)
	defer h.drop(c)

	ctx := r.Context()

	if missions, err := h.missions.List(ctx, false); err != nil {
		h.logger.Warn("failed to load missions for new client", "client_id", c.id, "error", err)
	} else if err := c.send(Message{Type: TypeMissionsList, Data: missions}); err != nil {
		return
	}

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("client read failed", "client_id", c.id, "error", err)
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		if err := c.send(h.handleCommand(ctx, c, strings.TrimSpace(string(data)))); err != nil {
			return
		}
	}
}

func (h *Hub) handleCommand(ctx context.Context, c *client, cmd string) Message {
	switch {
	case cmd == "ping":
		return Message{Type: TypePong}

	case strings.HasPrefix(cmd, "subscribe:"):
		id := strings.TrimPrefix(cmd, "subscribe:")
		d, err := h.missions.Detail(ctx, id)
		if err != nil {
			return errorMessage(id, err)
		}
		c.subscribe(d.ID)
		return Message{Type: TypeMissionUpdate, MissionID: d.ID, Data: d}

	case strings.HasPrefix(cmd, "weather:"):
		id := strings.TrimPrefix(cmd, "weather:")
		w, err := h.weather.MissionWeather(ctx, id)
		if err != nil {
			return errorMessage(id, err)
		}
		return Message{Type: TypeMissionWeather, MissionID: id, Data: w}

	default:
		return Message{Type: TypeError, Error: "unknown command"}
	}
}

func errorMessage(missionID string, err error) Message {
	msg := "request failed"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		msg = "mission not found"
	case errors.Is(err, domain.ErrUnavailable):
		msg = "data unavailable"
	}
	return Message{Type: TypeError, MissionID: missionID, Error: msg}
}

// MissionsSynced pushes the refreshed mission list to every client and the
// refreshed detail to each client subscribed to a mission. A client whose
// write fails is disconnected.
func (h *Hub) MissionsSynced(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("broadcast panicked", "panic", r)
		}
	}()

	clients := h.snapshot()
	if len(clients) == 0 {
		return
	}

	missions, err := h.missions.List(ctx, false)
	if err != nil {
		h.logger.Error("failed to load missions for broadcast", "error", err)
		return
	}

	var ids []string
	seen := make(map[string]struct{})
	for _, c := range clients {
		if id := c.subscribed(); id != "" {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	details := map[string]domain.MissionDetail{}
	if len(ids) > 0 {
		details, err = h.missions.DetailsByIDs(ctx, ids)
		if err != nil {
			h.logger.Warn("failed to load subscribed missions", "error", err)
		}
	}

	dropped := 0
	for _, c := range clients {
		if err := c.send(Message{Type: TypeMissionsList, Data: missions}); err != nil {
			h.drop(c)
			dropped++
			continue
		}
		d, ok := details[c.subscribed()]
		if !ok {
			continue
		}
		if err := c.send(Message{Type: TypeMissionUpdate, MissionID: d.ID, Data: d}); err != nil {
			h.drop(c)
			dropped++
		}
	}

	h.logger.Info("broadcast mission update", "clients", len(clients)-dropped, "dropped", dropped)
}

// Close disconnects every client.
func (h *Hub) Close() {
	for _, c := range h.snapshot() {
		h.drop(c)
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c.id] = c
	n := len(h.clients)
	h.mu.Unlock()
	h.logger.Info("client connected", "client_id", c.id, "clients", n)
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c.id]
	delete(h.clients, c.id)
	n := len(h.clients)
	h.mu.Unlock()

	if ok {
		_ = c.conn.Close()
		h.logger.Info("client disconnected", "client_id", c.id, "clients", n)
	}
}

func (h *Hub) snapshot() []*client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		out = append(out, c)
	}
	return out
}
