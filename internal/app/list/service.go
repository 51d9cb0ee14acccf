package list

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrListNotFound  = errors.New("list not found")
)

type BoardCache interface {
	InvalidateBoard(boardID uint64)
}

type Service interface {
	GetAllLists() ([]*List, error)
	GetListByID(id uint64) (*List, error)
	CreateList(req CreateListRequest) (*List, error)
	UpdateList(id uint64, req UpdateListRequest) (*List, error)
	DeleteList(id uint64) error
}

type service struct {
	repo       Repository
	boardCache BoardCache
	logger     *zap.SugaredLogger
}

func NewService(repo Repository, boardCache BoardCache, logger *zap.Logger) Service {
	return &service{
		repo:       repo,
		boardCache: boardCache,
		logger:     logger.Sugar(),
	}
}

func (s *service) GetAllLists() ([]*List, error) {
	return s.repo.GetAllLists()
}

func (s *service) GetListByID(id uint64) (*List, error) {
	return s.repo.GetListByID(id)
}

func (s *service) CreateList(req CreateListRequest) (*List, error) {
	exists, err := s.repo.BoardExists(req.Board)
	if err != nil {
		return nil, fmt.Errorf("failed to check board: %w", err)
	}
	if !exists {
		return nil, ErrBoardNotFound
	}

	list := &List{
		BoardID:  req.Board,
		Title:    req.Title,
		Position: req.Position,
	}
	if err := s.repo.CreateList(list); err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	s.boardCache.InvalidateBoard(list.BoardID)
	return s.repo.GetListByID(list.ID)
}

func (s *service) UpdateList(id uint64, req UpdateListRequest) (*List, error) {
	list, err := s.repo.GetListByID(id)
	if err != nil {
		return nil, err
	}

	s.boardCache.InvalidateBoard(list.BoardID)

	if req.Board != nil {
		list.BoardID = *req.Board
	}
	if req.Title != nil {
		list.Title = *req.Title
	}
	if req.Position != nil {
		list.Position = *req.Position
	}

	if err := s.repo.SaveList(list); err != nil {
		return nil, fmt.Errorf("failed to update list: %w", err)
	}

	s.boardCache.InvalidateBoard(list.BoardID)
	return s.repo.GetListByID(id)
}

func (s *service) DeleteList(id uint64) error {
	if list, err := s.repo.GetListByID(id); err == nil {
		s.boardCache.InvalidateBoard(list.BoardID)
	}

	rows, err := s.repo.DeleteList(id)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	if rows == 0 {
		return ErrListNotFound
	}
	return nil
}
