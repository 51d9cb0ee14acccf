package card_test

import (
	"context"
	"testing"
	"time"

	"backend/internal/app/board"
	"backend/internal/app/card"
	"backend/internal/app/comment"
	"backend/internal/app/list"
	"backend/internal/app/user"
	"backend/internal/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type noopCache struct{}

func (noopCache) InvalidateBoard(uint64) {}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return db
}

func newService(t *testing.T, db *gorm.DB, bus *utils.EventBus) card.Service {
	t.Helper()
	if bus == nil {
		bus = utils.NewEventBus()
	}
	return card.NewService(
		card.NewRepository(db),
		comment.NewRepository(db),
		noopCache{},
		bus,
		zap.NewNop(),
	)
}

func seedBoardWithLists(t *testing.T, db *gorm.DB, listCount int) (board.Board, []list.List) {
	t.Helper()

	b := board.Board{Title: "Test Board"}
	require.NoError(t, db.Create(&b).Error)

	lists := make([]list.List, 0, listCount)
	for i := 0; i < listCount; i++ {
		l := list.List{BoardID: b.ID, Title: "List", Position: i}
		require.NoError(t, db.Create(&l).Error)
		lists = append(lists, l)
	}
	return b, lists
}

func TestCreateInListAppendsToEnd(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, nil)
	_, lists := seedBoardWithLists(t, db, 1)
	ctx := context.Background()

	first, err := svc.CreateInList(ctx, lists[0].ID, "first")
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position)

	second, err := svc.CreateInList(ctx, lists[0].ID, "second")
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)

	// Positions are caller-supplied elsewhere; the append policy follows the
	// current maximum, not the row count.
	require.NoError(t, db.Model(&card.Card{}).Where("id = ?", second.ID).Update("position", 7).Error)

	third, err := svc.CreateInList(ctx, lists[0].ID, "third")
	require.NoError(t, err)
	assert.Equal(t, 8, third.Position)
}

func TestCreateInListUnknownList(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, nil)

	_, err := svc.CreateInList(context.Background(), 12345, "orphan")
	assert.ErrorIs(t, err, card.ErrListNotFound)
}

func TestMoveReassignsListAndPosition(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, nil)
	_, lists := seedBoardWithLists(t, db, 2)
	ctx := context.Background()

	moved, err := svc.CreateInList(ctx, lists[0].ID, "moving")
	require.NoError(t, err)
	sibling, err := svc.CreateInList(ctx, lists[0].ID, "staying")
	require.NoError(t, err)

	got, err := svc.Move(ctx, moved.ID, lists[1].ID, 3)
	require.NoError(t, err)
	assert.Equal(t, lists[1].ID, got.ListID)
	assert.Equal(t, 3, got.Position)

	// Siblings are never renumbered.
	kept, err := svc.GetCardByID(ctx, sibling.ID)
	require.NoError(t, err)
	assert.Equal(t, lists[0].ID, kept.ListID)
	assert.Equal(t, 1, kept.Position)
}

func TestMoveUnknownCard(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, nil)

	_, err := svc.Move(context.Background(), 999, 1, 0)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateFieldsOverwritesTitleAndDescriptionOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, nil)
	_, lists := seedBoardWithLists(t, db, 1)
	ctx := context.Background()

	created, err := svc.CreateInList(ctx, lists[0].ID, "before")
	require.NoError(t, err)

	got, err := svc.UpdateFields(ctx, created.ID, "after", "details")
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, "details", got.Description)
	assert.Equal(t, created.ListID, got.ListID)
	assert.Equal(t, created.Position, got.Position)
}

func TestDeleteUnknownCardIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, nil)

	deleted, err := svc.Delete(context.Background(), 424242)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteCascadesToComments(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, nil)
	_, lists := seedBoardWithLists(t, db, 1)
	ctx := context.Background()

	author := user.User{Username: "alice", Email: "a@x.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&author).Error)

	c, err := svc.CreateInList(ctx, lists[0].ID, "with comments")
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, c.ID, author.ID, "first!")
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var comments int64
	require.NoError(t, db.Model(&comment.Comment{}).Count(&comments).Error)
	assert.Zero(t, comments)
}

func TestUpdateCardPatchesOnlyProvidedFields(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, nil)
	_, lists := seedBoardWithLists(t, db, 1)
	ctx := context.Background()

	created, err := svc.CreateCard(ctx, card.CreateCardRequest{
		List:        lists[0].ID,
		Title:       "original",
		Description: "keep me",
		Position:    4,
	})
	require.NoError(t, err)

	title := "x"
	got, err := svc.UpdateCard(ctx, created.ID, card.UpdateCardRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "x", got.Title)
	assert.Equal(t, "keep me", got.Description)
	assert.Equal(t, 4, got.Position)
}

func TestAddCommentRequiresText(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, nil)
	_, lists := seedBoardWithLists(t, db, 1)
	ctx := context.Background()

	c, err := svc.CreateInList(ctx, lists[0].ID, "quiet")
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, c.ID, 1, "")
	assert.ErrorIs(t, err, card.ErrTextRequired)
}

func TestSerializedCardCommentsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, nil)
	_, lists := seedBoardWithLists(t, db, 1)
	ctx := context.Background()

	author := user.User{Username: "bob", Email: "b@x.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&author).Error)

	c, err := svc.CreateInList(ctx, lists[0].ID, "discussed")
	require.NoError(t, err)

	older, err := svc.AddComment(ctx, c.ID, author.ID, "older")
	require.NoError(t, err)
	newer, err := svc.AddComment(ctx, c.ID, author.ID, "newer")
	require.NoError(t, err)

	base := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, db.Model(&comment.Comment{}).Where("id = ?", older.ID).Update("created_at", base).Error)
	require.NoError(t, db.Model(&comment.Comment{}).Where("id = ?", newer.ID).Update("created_at", base.Add(time.Minute)).Error)

	got, err := svc.GetCardByID(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "newer", got.Comments[0].Text)
	assert.Equal(t, "older", got.Comments[1].Text)
	assert.Equal(t, "bob", got.Comments[0].Author.Username)
}

func TestRESTCreatePublishesBoardScopedEvent(t *testing.T) {
	db := newTestDB(t)
	bus := utils.NewEventBus()
	svc := newService(t, db, bus)
	b, lists := seedBoardWithLists(t, db, 1)

	_, err := svc.CreateCard(context.Background(), card.CreateCardRequest{
		List:  lists[0].ID,
		Title: "announce me",
	})
	require.NoError(t, err)

	select {
	case evt := <-bus.SubscribeCh():
		assert.Equal(t, "card_created", evt.Event)
		assert.Equal(t, b.ID, evt.BoardID)
	case <-time.After(time.Second):
		t.Fatal("expected card_created event on the bus")
	}
}

func TestDeletingAssigneeClearsAssignment(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db, nil)
	_, lists := seedBoardWithLists(t, db, 1)
	ctx := context.Background()

	assignee := user.User{Username: "gone", Email: "g@x.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&assignee).Error)

	c, err := svc.CreateInList(ctx, lists[0].ID, "assigned")
	require.NoError(t, err)
	require.NoError(t, db.Model(&card.Card{}).Where("id = ?", c.ID).Update("assigned_to_id", assignee.ID).Error)

	require.NoError(t, db.Delete(&user.User{}, assignee.ID).Error)

	got, err := svc.GetCardByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AssignedTo)
	assert.Nil(t, got.AssignedToID)
}
