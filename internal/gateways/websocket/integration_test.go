package websocket_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"backend/internal/app/board"
	"backend/internal/app/card"
	"backend/internal/app/comment"
	"backend/internal/app/list"
	"backend/internal/app/user"
	ws "backend/internal/gateways/websocket"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type noopCache struct{}

func (noopCache) InvalidateBoard(uint64) {}

type fixture struct {
	server *httptest.Server
	cards  card.Service
	db     *gorm.DB
	board  board.Board
	list   list.List
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&board.Board{},
		&list.List{},
		&card.Card{},
		&comment.Comment{},
	))

	b := board.Board{Title: "Live Board"}
	require.NoError(t, db.Create(&b).Error)
	l := list.List{BoardID: b.ID, Title: "To Do"}
	require.NoError(t, db.Create(&l).Error)

	bus := utils.NewEventBus()
	cards := card.NewService(
		card.NewRepository(db),
		comment.NewRepository(db),
		noopCache{},
		bus,
		zap.NewNop(),
	)

	hub := ws.NewHub(cards, bus, zap.NewNop())
	go hub.Run()

	engine := gin.New()
	ws.RegisterRoutes(engine, hub)
	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return &fixture{server: server, cards: cards, db: db, board: b, list: l}
}

func (f *fixture) dial(t *testing.T, boardID uint64) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws/boards/" + strconv.FormatUint(boardID, 10)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func expectSilence(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
}

func TestTwoClientsStayInSync(t *testing.T) {
	f := newFixture(t)

	a := f.dial(t, f.board.ID)
	b := f.dial(t, f.board.ID)
	time.Sleep(50 * time.Millisecond) // both joins registered

	require.NoError(t, a.WriteJSON(map[string]interface{}{
		"type":    "card_created",
		"list_id": f.list.ID,
		"title":   "Write spec",
	}))

	for _, conn := range []*websocket.Conn{a, b} {
		payload := readEnvelope(t, conn)
		assert.Equal(t, "card_created", payload["event"])

		got, ok := payload["card"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Write spec", got["title"])
		assert.EqualValues(t, 0, got["position"])
		assert.EqualValues(t, f.list.ID, got["list"])
		assert.Contains(t, got, "comments")
		assert.Contains(t, got, "assigned_to")
	}
}

func TestDeleteOfMissingCardIsInvisible(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, f.board.ID)
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":    "card_deleted",
		"card_id": 999999,
	}))

	expectSilence(t, conn)
}

func TestMoveBroadcastsUpdatedCard(t *testing.T) {
	f := newFixture(t)

	other := list.List{BoardID: f.board.ID, Title: "Done", Position: 1}
	require.NoError(t, f.db.Create(&other).Error)

	created, err := f.cards.CreateInList(context.Background(), f.list.ID, "movable")
	require.NoError(t, err)

	conn := f.dial(t, f.board.ID)
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":     "card_moved",
		"card_id":  created.ID,
		"list_id":  other.ID,
		"position": 4,
	}))

	payload := readEnvelope(t, conn)
	assert.Equal(t, "card_moved", payload["event"])
	got := payload["card"].(map[string]interface{})
	assert.EqualValues(t, other.ID, got["list"])
	assert.EqualValues(t, 4, got["position"])
}

func TestRESTMutationReachesJoinedClients(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, f.board.ID)
	time.Sleep(50 * time.Millisecond)

	_, err := f.cards.CreateCard(context.Background(), card.CreateCardRequest{
		List:  f.list.ID,
		Title: "created over REST",
	})
	require.NoError(t, err)

	payload := readEnvelope(t, conn)
	assert.Equal(t, "card_created", payload["event"])
	got := payload["card"].(map[string]interface{})
	assert.Equal(t, "created over REST", got["title"])
}
