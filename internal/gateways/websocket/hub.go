package websocket

import (
	"context"

	"backend/internal/app/card"
	"backend/internal/utils"

	"go.uber.org/zap"
)

// CardMutator is the slice of the card service the relay consumes.
type CardMutator interface {
	Move(ctx context.Context, cardID uint64, listID uint64, position int) (*card.Card, error)
	UpdateFields(ctx context.Context, cardID uint64, title string, description string) (*card.Card, error)
	CreateInList(ctx context.Context, listID uint64, title string) (*card.Card, error)
	Delete(ctx context.Context, cardID uint64) (bool, error)
}

type boardMessage struct {
	boardID uint64
	payload interface{}
}

// Hub owns the board-id -> connection-set registry. All map access and all
// writes to client connections happen on the Run goroutine, so join, leave and
// broadcast are serialized without locks.
type Hub struct {
	boards     map[uint64]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan boardMessage
	cards      CardMutator
	bus        *utils.EventBus
	logger     *zap.SugaredLogger
}

func NewHub(cards CardMutator, bus *utils.EventBus, logger *zap.Logger) *Hub {
	return &Hub{
		boards:     make(map[uint64]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan boardMessage, 64),
		cards:      cards,
		bus:        bus,
		logger:     logger.Sugar(),
	}
}

func (h *Hub) Run() {
	h.logger.Info("WebSocket hub started")

	for {
		select {
		case client := <-h.register:
			group := h.boards[client.boardID]
			if group == nil {
				group = make(map[*Client]bool)
				h.boards[client.boardID] = group
			}
			group[client] = true
			h.logger.Infow("Client joined board group",
				"client_id", client.ID,
				"board_id", client.boardID,
				"group_size", len(group),
			)

		case client := <-h.unregister:
			group, ok := h.boards[client.boardID]
			if !ok {
				continue
			}
			if _, ok := group[client]; !ok {
				continue
			}
			delete(group, client)
			if len(group) == 0 {
				delete(h.boards, client.boardID)
			}
			h.logger.Infow("Client left board group",
				"client_id", client.ID,
				"board_id", client.boardID,
				"group_size", len(group),
			)

		case msg := <-h.broadcast:
			h.send(msg)

		case event := <-h.bus.SubscribeCh():
			h.send(boardMessage{boardID: event.BoardID, payload: envelope(event.Event, event.Data)})
		}
	}
}

// send delivers the payload to every connection currently in the board's
// group, the originator included. There is no ordering guarantee between
// broadcasts triggered from different connections.
func (h *Hub) send(msg boardMessage) {
	for client := range h.boards[msg.boardID] {
		if err := client.conn.WriteJSON(msg.payload); err != nil {
			h.logger.Warnw("Failed to write to client",
				"client_id", client.ID,
				"board_id", msg.boardID,
				"error", err,
			)
		}
	}
}

func envelope(event string, data interface{}) map[string]interface{} {
	if event == "card_deleted" {
		return map[string]interface{}{"event": event, "card_id": data}
	}
	return map[string]interface{}{"event": event, "card": data}
}
