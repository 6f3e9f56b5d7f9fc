package booking

import (
	"context"
	"errors"
	"fmt"

	"gymmaster/internal/database"
	"gymmaster/internal/domain"
	"gymmaster/internal/repository"

	"go.uber.org/zap"
)

type Service struct {
	bookings BookingRepository
	log      *zap.Logger
}

func NewService(bookings BookingRepository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		bookings: bookings,
		log:      log.Named("booking"),
	}
}

// CreateBooking records a member's booking for a class. An empty status means
// Booked. Unknown member or class ids are reported as ErrReferenceNotFound.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	if req.MemberID <= 0 || req.ClassID <= 0 {
		return nil, ErrValidation
	}
	status := req.Status
	if status == "" {
		status = domain.BookingBooked
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	id, err := s.bookings.Create(ctx, req.MemberID, req.ClassID, status)
	if err != nil {
		s.log.Error("booking operation failed",
			zap.String("op", "create"),
			zap.Int64("member_id", req.MemberID),
			zap.Int64("class_id", req.ClassID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return nil, classify(err)
	}

	return &CreateBookingResult{
		ID:       id,
		MemberID: req.MemberID,
		ClassID:  req.ClassID,
		Status:   status,
	}, nil
}

// ListBookings never returns a nil slice; on failure the slice is empty and
// the error says why.
func (s *Service) ListBookings(ctx context.Context, req ListBookingsRequest) ([]domain.BookingRow, error) {
	if req.Status != "" && !req.Status.Valid() {
		return []domain.BookingRow{}, ErrInvalidStatus
	}

	rows, err := s.bookings.List(ctx, repository.BookingFilter{
		ClassType:  req.ClassType,
		MemberName: req.MemberName,
		Status:     req.Status,
	})
	if err != nil {
		s.log.Error("booking operation failed",
			zap.String("op", "list"),
			zap.String("class_type", req.ClassType),
			zap.String("member_name", req.MemberName),
			zap.String("status", string(req.Status)),
			zap.Error(err),
		)
		return []domain.BookingRow{}, classify(err)
	}
	if rows == nil {
		rows = []domain.BookingRow{}
	}
	return rows, nil
}

// UpdateBookingStatus changes the status of one booking and returns it as
// stored.
func (s *Service) UpdateBookingStatus(ctx context.Context, bookingID int64, req UpdateStatusRequest) (*domain.Booking, error) {
	if bookingID <= 0 {
		return nil, ErrValidation
	}
	if !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, req.Status); err != nil {
		s.log.Error("booking operation failed",
			zap.String("op", "update_status"),
			zap.Int64("booking_id", bookingID),
			zap.String("status", string(req.Status)),
			zap.Error(err),
		)
		return nil, classify(err)
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		s.log.Error("booking operation failed",
			zap.String("op", "get"),
			zap.Int64("booking_id", bookingID),
			zap.Error(err),
		)
		return nil, classify(err)
	}
	return b, nil
}

// DeleteBooking removes a booking. Deleting an id that is already gone
// succeeds.
func (s *Service) DeleteBooking(ctx context.Context, bookingID int64) error {
	if bookingID <= 0 {
		return ErrValidation
	}

	affected, err := s.bookings.Delete(ctx, bookingID)
	if err != nil {
		s.log.Error("booking operation failed",
			zap.String("op", "delete"),
			zap.Int64("booking_id", bookingID),
			zap.Error(err),
		)
		return classify(err)
	}

	s.log.Info("booking deleted",
		zap.Int64("booking_id", bookingID),
		zap.Int64("rows_affected", affected),
	)
	return nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, repository.ErrBookingNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
	case database.IsCheckViolation(err):
		return fmt.Errorf("%w: %w", ErrInvalidStatus, err)
	default:
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
}
