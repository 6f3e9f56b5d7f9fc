package repository

import (
	"context"

	"gymmaster/internal/domain"

	"gorm.io/gorm"
)

type ClassRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// ListScheduled returns every class with its type name and room resolved,
// earliest first.
func (r *ClassRepository) ListScheduled(ctx context.Context) ([]domain.ClassSummary, error) {
	var rows []domain.ClassSummary
	err := r.db.WithContext(ctx).
		Table("classes c").
		Select(`
			c.class_id,
			c.date,
			c.time,
			c.duration,
			ct.name AS class_type_name,
			r.building AS room_building,
			r.number AS room_number
		`).
		Joins("JOIN classtypes ct ON c.type_id = ct.type_id").
		Joins("JOIN rooms r ON c.room_id = r.room_id").
		Order("c.date, c.time, c.class_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
