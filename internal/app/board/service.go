package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backend/internal/providers/redis"

	"go.uber.org/zap"
)

var ErrBoardNotFound = errors.New("board not found")

const cacheKeyPrefix = "board:"

type Service interface {
	GetAllBoards() ([]*Board, error)
	GetBoardByID(ctx context.Context, id uint64) (*Board, error)
	CreateBoard(ownerID uint64, req CreateBoardRequest) (*Board, error)
	UpdateBoard(id uint64, req UpdateBoardRequest) (*Board, error)
	DeleteBoard(id uint64) error
	InvalidateBoard(boardID uint64)
}

type service struct {
	repo     Repository
	redisP   *redis.RedisProvider
	logger   *zap.SugaredLogger
	cacheTTL time.Duration
}

func NewService(repo Repository, redisP *redis.RedisProvider, logger *zap.Logger, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		redisP:   redisP,
		logger:   logger.Sugar(),
		cacheTTL: cacheTTL,
	}
}

func (s *service) GetAllBoards() ([]*Board, error) {
	return s.repo.GetAllBoards()
}

// GetBoardByID serves the nested board read from redis when possible; every
// mutation under the board drops the entry via InvalidateBoard.
func (s *service) GetBoardByID(ctx context.Context, id uint64) (*Board, error) {
	key := cacheKey(id)

	if cached, err := s.redisP.Get(ctx, key).Result(); err == nil {
		var board Board
		if err := json.Unmarshal([]byte(cached), &board); err == nil {
			return &board, nil
		}
		s.redisP.Del(ctx, key)
	}

	board, err := s.repo.GetBoardByID(id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(board); err == nil {
		if err := s.redisP.SetEX(ctx, key, data, s.cacheTTL).Err(); err != nil {
			s.logger.Warnw("Failed to cache board", "board_id", id, "error", err)
		}
	}

	return board, nil
}

func (s *service) CreateBoard(ownerID uint64, req CreateBoardRequest) (*Board, error) {
	board := &Board{
		Title:   req.Title,
		OwnerID: &ownerID,
	}
	if err := s.repo.CreateBoard(board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	s.logger.Infow("Board created", "board_id", board.ID, "owner_id", ownerID)
	return s.repo.GetBoardByID(board.ID)
}

func (s *service) UpdateBoard(id uint64, req UpdateBoardRequest) (*Board, error) {
	board, err := s.repo.GetBoardByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		board.Title = *req.Title
	}
	if err := s.repo.SaveBoard(board); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	s.InvalidateBoard(id)
	return s.repo.GetBoardByID(id)
}

func (s *service) DeleteBoard(id uint64) error {
	rows, err := s.repo.DeleteBoard(id)
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	if rows == 0 {
		return ErrBoardNotFound
	}

	s.InvalidateBoard(id)
	return nil
}

func (s *service) InvalidateBoard(boardID uint64) {
	s.redisP.Del(context.Background(), cacheKey(boardID))
}

func cacheKey(id uint64) string {
	return fmt.Sprintf("%s%d", cacheKeyPrefix, id)
}
