package comment

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrCardNotFound    = errors.New("card not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// BoardCache is satisfied by the board service; mutations drop the owning
// board's cached read.
type BoardCache interface {
	InvalidateBoard(boardID uint64)
}

type Service interface {
	CreateComment(authorID uint64, req CreateCommentRequest) (*Comment, error)
	GetAllComments() ([]*Comment, error)
	GetCommentByID(id uint64) (*Comment, error)
	UpdateComment(id uint64, req UpdateCommentRequest) (*Comment, error)
	DeleteComment(id uint64) error
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

func (s *service) CreateComment(authorID uint64, req CreateCommentRequest) (*Comment, error) {
	exists, err := s.repo.CardExists(req.Card)
	if err != nil {
		return nil, fmt.Errorf("failed to check card: %w", err)
	}
	if !exists {
		return nil, ErrCardNotFound
	}

	comment := &Comment{
		CardID:   req.Card,
		AuthorID: authorID,
		Text:     req.Text,
	}
	if err := s.repo.CreateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.invalidateBoard(comment.ID)
	return comment, nil
}

func (s *service) GetAllComments() ([]*Comment, error) {
	return s.repo.GetAllComments()
}

func (s *service) GetCommentByID(id uint64) (*Comment, error) {
	return s.repo.GetCommentByID(id)
}

func (s *service) UpdateComment(id uint64, req UpdateCommentRequest) (*Comment, error) {
	comment, err := s.repo.GetCommentByID(id)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}
	if err := s.repo.SaveComment(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	s.invalidateBoard(id)
	return comment, nil
}

func (s *service) DeleteComment(id uint64) error {
	s.invalidateBoard(id)

	rows, err := s.repo.DeleteComment(id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if rows == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (s *service) invalidateBoard(commentID uint64) {
	boardID, err := s.repo.BoardIDForComment(commentID)
	if err != nil {
		return
	}
	s.boardCache.InvalidateBoard(boardID)
}
