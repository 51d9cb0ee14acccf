package card

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"backend/internal/app/comment"
	"backend/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrCardNotFound = errors.New("card not found")
	ErrListNotFound = errors.New("list not found")
	ErrTextRequired = errors.New("text is required")
)

// BoardCache is satisfied by the board service; card mutations drop the owning
// board's cached read.
type BoardCache interface {
	InvalidateBoard(boardID uint64)
}

// Service is both the REST card API and the mutation contract consumed by the
// websocket relay (Move, UpdateFields, CreateInList, Delete).
type Service interface {
	GetAllCards(ctx context.Context) ([]*Card, error)
	GetCardByID(ctx context.Context, id uint64) (*Card, error)
	CreateCard(ctx context.Context, req CreateCardRequest) (*Card, error)
	UpdateCard(ctx context.Context, id uint64, req UpdateCardRequest) (*Card, error)
	DeleteCard(ctx context.Context, id uint64) error
	AddComment(ctx context.Context, cardID uint64, authorID uint64, text string) (*comment.Comment, error)

	Move(ctx context.Context, cardID uint64, listID uint64, position int) (*Card, error)
	UpdateFields(ctx context.Context, cardID uint64, title string, description string) (*Card, error)
	CreateInList(ctx context.Context, listID uint64, title string) (*Card, error)
	Delete(ctx context.Context, cardID uint64) (bool, error)
}

type service struct {
	repo        Repository
	commentRepo comment.Repository
	boardCache  BoardCache
	eventBus    *utils.EventBus
	logger      *zap.SugaredLogger
}

func NewService(
	repo Repository,
	commentRepo comment.Repository,
	boardCache BoardCache,
	eventBus *utils.EventBus,
	logger *zap.Logger,
) Service {
	return &service{
		repo:        repo,
		commentRepo: commentRepo,
		boardCache:  boardCache,
		eventBus:    eventBus,
		logger:      logger.Sugar(),
	}
}

func (s *service) GetAllCards(ctx context.Context) ([]*Card, error) {
	return s.repo.GetAllCards()
}

func (s *service) GetCardByID(ctx context.Context, id uint64) (*Card, error) {
	return s.repo.GetCardByID(id)
}

func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (*Card, error) {
	exists, err := s.repo.ListExists(req.List)
	if err != nil {
		return nil, fmt.Errorf("failed to check list: %w", err)
	}
	if !exists {
		return nil, ErrListNotFound
	}

	card := &Card{
		ListID:      req.List,
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
		DueDate:     req.DueDate,
	}
	if err := s.repo.CreateCard(card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	created, err := s.repo.GetCardByID(card.ID)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, "card_created", created.ID, created)
	return created, nil
}

func (s *service) UpdateCard(ctx context.Context, id uint64, req UpdateCardRequest) (*Card, error) {
	card, err := s.repo.GetCardByID(id)
	if err != nil {
		return nil, err
	}

	if req.List != nil {
		card.ListID = *req.List
	}
	if req.Title != nil {
		card.Title = *req.Title
	}
	if req.Description != nil {
		card.Description = *req.Description
	}
	if req.Position != nil {
		card.Position = *req.Position
	}
	if req.DueDate != nil {
		card.DueDate = req.DueDate
	}

	if err := s.repo.SaveCard(card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	updated, err := s.repo.GetCardByID(id)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, "card_updated", id, updated)
	return updated, nil
}

func (s *service) DeleteCard(ctx context.Context, id uint64) error {
	boardID, boardErr := s.repo.BoardIDForCard(id)

	rows, err := s.repo.DeleteCard(id)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	if rows == 0 {
		return ErrCardNotFound
	}

	if boardErr == nil {
		s.boardCache.InvalidateBoard(boardID)
		s.eventBus.Publish("card_deleted", boardID, id)
	}
	return nil
}

func (s *service) AddComment(ctx context.Context, cardID uint64, authorID uint64, text string) (*comment.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	if _, err := s.repo.GetCardByID(cardID); err != nil {
		return nil, err
	}

	created := &comment.Comment{
		CardID:   cardID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.commentRepo.CreateComment(created); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	card, err := s.repo.GetCardByID(cardID)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, "card_updated", cardID, card)

	return created, nil
}

// Move reassigns the card's parent list and position; siblings are not
// renumbered, racing writers are last-write-wins.
func (s *service) Move(ctx context.Context, cardID uint64, listID uint64, position int) (*Card, error) {
	card, err := s.repo.GetCardByID(cardID)
	if err != nil {
		return nil, err
	}

	// A move can cross boards; drop the cache on both sides.
	s.invalidate(cardID)

	card.ListID = listID
	card.Position = position
	if err := s.repo.SaveCard(card); err != nil {
		return nil, fmt.Errorf("failed to move card: %w", err)
	}

	s.invalidate(cardID)
	return s.repo.GetCardByID(cardID)
}

func (s *service) UpdateFields(ctx context.Context, cardID uint64, title string, description string) (*Card, error) {
	card, err := s.repo.GetCardByID(cardID)
	if err != nil {
		return nil, err
	}

	card.Title = title
	card.Description = description
	if err := s.repo.SaveCard(card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	s.invalidate(cardID)
	return s.repo.GetCardByID(cardID)
}

func (s *service) CreateInList(ctx context.Context, listID uint64, title string) (*Card, error) {
	exists, err := s.repo.ListExists(listID)
	if err != nil {
		return nil, fmt.Errorf("failed to check list: %w", err)
	}
	if !exists {
		return nil, ErrListNotFound
	}

	position, err := s.repo.NextPositionInList(listID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute position: %w", err)
	}

	card := &Card{
		ListID:   listID,
		Title:    title,
		Position: position,
	}
	if err := s.repo.CreateCard(card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	s.invalidate(card.ID)
	return s.repo.GetCardByID(card.ID)
}

// Delete reports whether a row was removed; deleting an unknown id is a no-op,
// not an error, so the relay can skip the broadcast.
func (s *service) Delete(ctx context.Context, cardID uint64) (bool, error) {
	boardID, boardErr := s.repo.BoardIDForCard(cardID)

	rows, err := s.repo.DeleteCard(cardID)
	if err != nil {
		return false, fmt.Errorf("failed to delete card: %w", err)
	}
	if rows == 0 {
		return false, nil
	}

	if boardErr == nil {
		s.boardCache.InvalidateBoard(boardID)
	}
	return true, nil
}

// notify drops the board cache and publishes a board-scoped event for the
// websocket hub. Used on the REST paths only; the relay broadcasts its own
// outcomes directly.
func (s *service) notify(ctx context.Context, event string, cardID uint64, data interface{}) {
	boardID, err := s.repo.BoardIDForCard(cardID)
	if err != nil {
		s.logger.Warnw("Failed to resolve board for event", "event", event, "card_id", cardID, "error", err)
		return
	}
	s.boardCache.InvalidateBoard(boardID)
	s.eventBus.Publish(event, boardID, data)
}

func (s *service) invalidate(cardID uint64) {
	if boardID, err := s.repo.BoardIDForCard(cardID); err == nil {
		s.boardCache.InvalidateBoard(boardID)
	}
}
