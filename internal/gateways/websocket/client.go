package websocket

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
)

type ClientConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
	Close() error
}

type Client struct {
	hub     *Hub
	conn    ClientConn
	ID      string
	boardID uint64
}

func generateClientID() string {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "xxxxx"
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

// clientEvent is the inbound message shape; Type discriminates the variant and
// the other fields are read as each variant needs them.
type clientEvent struct {
	Type        string `json:"type"`
	CardID      uint64 `json:"card_id"`
	ListID      uint64 `json:"list_id"`
	Position    int    `json:"position"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// readPump processes inbound events one at a time: the next message is not
// read until the current mutation has finished and its broadcast is queued.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		c.dispatch(raw)
	}
}

// dispatch never surfaces mutation failures to the sender; they are logged and
// produce no broadcast. Unrecognized types are ignored.
func (c *Client) dispatch(raw []byte) {
	var evt clientEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		c.hub.logger.Warnw("Discarding malformed client message",
			"client_id", c.ID,
			"board_id", c.boardID,
			"error", err,
		)
		return
	}

	ctx := context.Background()

	switch evt.Type {
	case "card_moved":
		card, err := c.hub.cards.Move(ctx, evt.CardID, evt.ListID, evt.Position)
		if err != nil {
			c.logFailure(evt.Type, err)
			return
		}
		c.broadcast(envelope(evt.Type, card))

	case "card_updated":
		card, err := c.hub.cards.UpdateFields(ctx, evt.CardID, evt.Title, evt.Description)
		if err != nil {
			c.logFailure(evt.Type, err)
			return
		}
		c.broadcast(envelope(evt.Type, card))

	case "card_created":
		title := evt.Title
		if title == "" {
			title = "Untitled Card"
		}
		card, err := c.hub.cards.CreateInList(ctx, evt.ListID, title)
		if err != nil {
			c.logFailure(evt.Type, err)
			return
		}
		c.broadcast(envelope(evt.Type, card))

	case "card_deleted":
		deleted, err := c.hub.cards.Delete(ctx, evt.CardID)
		if err != nil {
			c.logFailure(evt.Type, err)
			return
		}
		if !deleted {
			return
		}
		c.broadcast(envelope(evt.Type, evt.CardID))
	}
}

func (c *Client) broadcast(payload interface{}) {
	c.hub.broadcast <- boardMessage{boardID: c.boardID, payload: payload}
}

func (c *Client) logFailure(event string, err error) {
	c.hub.logger.Warnw("Client event failed",
		"client_id", c.ID,
		"board_id", c.boardID,
		"event", event,
		"error", err,
	)
}
