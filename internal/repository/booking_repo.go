package repository

import (
	"context"
	"errors"

	"gymmaster/internal/domain"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts one booking and returns its id. Member and class are not
// checked up front; the foreign keys reject unknown ids and the insert is
// rolled back.
func (r *BookingRepository) Create(ctx context.Context, memberID, classID int64, status domain.BookingStatus) (int64, error) {
	b := domain.Booking{
		MemberID: memberID,
		ClassID:  classID,
		Status:   status,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&b).Error
	})
	if err != nil {
		return 0, err
	}
	return b.ID, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Where("booking_id = ?", id).Take(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// List returns every booking matching the filter, joined with member, class,
// class type and room. Rows come back in the database's natural order.
// The returned slice is never nil, even on error.
func (r *BookingRepository) List(ctx context.Context, f BookingFilter) ([]domain.BookingRow, error) {
	query := r.db.WithContext(ctx).
		Table("bookings b").
		Select(`
			b.booking_id,
			m.name AS member_name,
			b.status,
			c.date AS class_date,
			c.time AS class_time,
			ct.name AS class_type_name,
			r.building AS room_building,
			r.number AS room_number
		`).
		Joins("JOIN members m ON b.member_id = m.member_id").
		Joins("JOIN classes c ON b.class_id = c.class_id").
		Joins("JOIN classtypes ct ON c.type_id = ct.type_id").
		Joins("JOIN rooms r ON c.room_id = r.room_id")

	for _, p := range f.predicates(r.db.Dialector.Name()) {
		query = query.Where(p.sql, p.args...)
	}

	rows := make([]domain.BookingRow, 0)
	if err := query.Scan(&rows).Error; err != nil {
		return make([]domain.BookingRow, 0), err
	}
	return rows, nil
}

// UpdateStatus loads exactly one booking by id, sets its status and commits.
// Any failure rolls the transaction back.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b domain.Booking
		if err := tx.Where("booking_id = ?", id).Take(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		return tx.Model(&b).Update("status", status).Error
	})
}

// Delete removes the booking with the given id and returns the number of rows
// removed. Deleting an id that does not exist is not an error.
func (r *BookingRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec("DELETE FROM bookings WHERE booking_id = ?", id)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
