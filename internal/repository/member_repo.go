package repository

import (
	"context"

	"gymmaster/internal/domain"

	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) List(ctx context.Context) ([]domain.Member, error) {
	var rows []domain.Member
	if err := r.db.WithContext(ctx).Order("member_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
