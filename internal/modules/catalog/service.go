package catalog

import (
	"context"
	"errors"
	"fmt"

	"gymmaster/internal/domain"

	"go.uber.org/zap"
)

var ErrStorage = errors.New("storage error")

type MemberLister interface {
	List(ctx context.Context) ([]domain.Member, error)
}

type ClassLister interface {
	ListScheduled(ctx context.Context) ([]domain.ClassSummary, error)
}

// Service serves the reference data the booking desk picks ids from.
type Service struct {
	members MemberLister
	classes ClassLister
	log     *zap.Logger
}

func NewService(members MemberLister, classes ClassLister, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{members: members, classes: classes, log: log.Named("catalog")}
}

func (s *Service) Members(ctx context.Context) ([]domain.Member, error) {
	rows, err := s.members.List(ctx)
	if err != nil {
		s.log.Error("list members failed", zap.Error(err))
		return []domain.Member{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if rows == nil {
		rows = []domain.Member{}
	}
	return rows, nil
}

func (s *Service) Classes(ctx context.Context) ([]domain.ClassSummary, error) {
	rows, err := s.classes.ListScheduled(ctx)
	if err != nil {
		s.log.Error("list classes failed", zap.Error(err))
		return []domain.ClassSummary{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if rows == nil {
		rows = []domain.ClassSummary{}
	}
	return rows, nil
}
