package board_test

import (
	"context"
	"testing"
	"time"

	"backend/internal/app/board"
	"backend/internal/app/card"
	"backend/internal/app/comment"
	"backend/internal/app/list"
	"backend/internal/app/user"
	redisprov "backend/internal/providers/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

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

func newService(t *testing.T, db *gorm.DB) (board.Service, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	provider := redisprov.NewRedisProvider(mr.Addr(), zap.NewNop())
	svc := board.NewService(board.NewRepository(db), provider, zap.NewNop(), 5*time.Minute)
	return svc, mr
}

func seedTree(t *testing.T, db *gorm.DB) board.Board {
	t.Helper()

	author := user.User{Username: "alice", Email: "a@x.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&author).Error)

	b := board.Board{Title: "Doomed", OwnerID: &author.ID}
	require.NoError(t, db.Create(&b).Error)

	l := list.List{BoardID: b.ID, Title: "To Do"}
	require.NoError(t, db.Create(&l).Error)

	c := card.Card{ListID: l.ID, Title: "Task"}
	require.NoError(t, db.Create(&c).Error)

	cm := comment.Comment{CardID: c.ID, AuthorID: author.ID, Text: "note"}
	require.NoError(t, db.Create(&cm).Error)

	return b
}

func TestDeleteBoardCascades(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newService(t, db)
	b := seedTree(t, db)

	require.NoError(t, svc.DeleteBoard(b.ID))

	counts := map[string]interface{}{
		"lists":    &list.List{},
		"cards":    &card.Card{},
		"comments": &comment.Comment{},
	}
	for name, model := range counts {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		assert.Zerof(t, n, "%s should be cascade-deleted", name)
	}

	// The owner is untouched by the cascade.
	var users int64
	require.NoError(t, db.Model(&user.User{}).Count(&users).Error)
	assert.EqualValues(t, 1, users)
}

func TestDeleteUnknownBoard(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newService(t, db)

	assert.ErrorIs(t, svc.DeleteBoard(999), board.ErrBoardNotFound)
}

func TestGetBoardByIDServesFromCache(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newService(t, db)
	b := seedTree(t, db)
	ctx := context.Background()

	first, err := svc.GetBoardByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doomed", first.Title)

	// A write that bypasses the service is invisible until invalidation.
	require.NoError(t, db.Model(&board.Board{}).Where("id = ?", b.ID).Update("title", "Renamed").Error)

	cached, err := svc.GetBoardByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doomed", cached.Title)

	svc.InvalidateBoard(b.ID)

	fresh, err := svc.GetBoardByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fresh.Title)
}

func TestCreateBoardSetsOwner(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newService(t, db)

	owner := user.User{Username: "bob", Email: "b@x.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&owner).Error)

	created, err := svc.CreateBoard(owner.ID, board.CreateBoardRequest{Title: "Mine"})
	require.NoError(t, err)
	require.NotNil(t, created.Owner)
	assert.Equal(t, "bob", created.Owner.Username)
	assert.NotNil(t, created.Lists)
	assert.Empty(t, created.Lists)
}
