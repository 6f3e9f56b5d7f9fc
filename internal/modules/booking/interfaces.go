package booking

import (
	"context"

	"gymmaster/internal/domain"
	"gymmaster/internal/repository"
)

// BookingRepository is the storage the booking service writes through.
type BookingRepository interface {
	Create(ctx context.Context, memberID, classID int64, status domain.BookingStatus) (int64, error)
	List(ctx context.Context, f repository.BookingFilter) ([]domain.BookingRow, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	Delete(ctx context.Context, bookingID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
