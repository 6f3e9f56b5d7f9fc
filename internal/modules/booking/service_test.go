package booking

import (
	"context"
	"errors"
	"testing"

	"gymmaster/internal/domain"
	"gymmaster/internal/repository"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, memberID, classID int64, status domain.BookingStatus) (int64, error) {
	args := m.Called(ctx, memberID, classID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, f repository.BookingFilter) ([]domain.BookingRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingRow), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, bookingID int64) (int64, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func newTestService(repo BookingRepository) (*Service, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return NewService(repo, zap.New(core)), logs
}

func TestService_CreateBooking_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	svc, logs := newTestService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, int64(1), int64(2), domain.BookingBooked).Return(int64(77), nil)

	res, err := svc.CreateBooking(ctx, CreateBookingRequest{MemberID: 1, ClassID: 2, Status: domain.BookingBooked})

	require.NoError(t, err)
	assert.Equal(t, int64(77), res.ID)
	assert.Equal(t, domain.BookingBooked, res.Status)
	assert.Equal(t, 0, logs.Len())
	repo.AssertExpectations(t)
}

func TestService_CreateBooking_DefaultsToBooked(t *testing.T) {
	repo := new(MockBookingRepository)
	svc, _ := newTestService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, int64(3), int64(4), domain.BookingBooked).Return(int64(1), nil)

	res, err := svc.CreateBooking(ctx, CreateBookingRequest{MemberID: 3, ClassID: 4})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingBooked, res.Status)
	repo.AssertExpectations(t)
}

func TestService_CreateBooking_RejectedBeforeWrite(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateBookingRequest
		wantErr error
	}{
		{name: "zero member", req: CreateBookingRequest{MemberID: 0, ClassID: 1}, wantErr: ErrValidation},
		{name: "negative class", req: CreateBookingRequest{MemberID: 1, ClassID: -5}, wantErr: ErrValidation},
		{name: "unknown status", req: CreateBookingRequest{MemberID: 1, ClassID: 1, Status: "Pending"}, wantErr: ErrInvalidStatus},
		{name: "wrong case status", req: CreateBookingRequest{MemberID: 1, ClassID: 1, Status: "booked"}, wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBookingRepository)
			svc, _ := newTestService(repo)

			res, err := svc.CreateBooking(context.Background(), tt.req)

			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_CreateBooking_ClassifiesStorageErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "postgres fk", repoErr: &pgconn.PgError{Code: "23503"}, wantErr: ErrReferenceNotFound},
		{name: "mysql fk", repoErr: &mysql.MySQLError{Number: 1452}, wantErr: ErrReferenceNotFound},
		{name: "sqlite fk", repoErr: errors.New("FOREIGN KEY constraint failed (787)"), wantErr: ErrReferenceNotFound},
		{name: "check", repoErr: &pgconn.PgError{Code: "23514"}, wantErr: ErrInvalidStatus},
		{name: "connection lost", repoErr: errors.New("driver: bad connection"), wantErr: ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBookingRepository)
			svc, logs := newTestService(repo)

			repo.On("Create", mock.Anything, int64(1), int64(99), domain.BookingBooked).Return(int64(0), tt.repoErr)

			res, err := svc.CreateBooking(context.Background(), CreateBookingRequest{MemberID: 1, ClassID: 99})

			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.repoErr)
			assert.Equal(t, 1, logs.FilterMessage("booking operation failed").Len())
		})
	}
}

func TestService_ListBookings_PassesFilter(t *testing.T) {
	repo := new(MockBookingRepository)
	svc, _ := newTestService(repo)
	ctx := context.Background()

	want := []domain.BookingRow{{BookingID: 5, MemberName: "Alice Smith", Status: domain.BookingBooked}}
	repo.On("List", ctx, repository.BookingFilter{ClassType: "Yoga", Status: domain.BookingBooked}).Return(want, nil)

	rows, err := svc.ListBookings(ctx, ListBookingsRequest{ClassType: "Yoga", Status: domain.BookingBooked})

	require.NoError(t, err)
	assert.Equal(t, want, rows)
	repo.AssertExpectations(t)
}

func TestService_ListBookings_NeverNil(t *testing.T) {
	repo := new(MockBookingRepository)
	svc, logs := newTestService(repo)

	repo.On("List", mock.Anything, repository.BookingFilter{}).Return(nil, nil).Once()
	rows, err := svc.ListBookings(context.Background(), ListBookingsRequest{})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	repo.On("List", mock.Anything, repository.BookingFilter{}).Return(nil, errors.New("boom")).Once()
	rows, err = svc.ListBookings(context.Background(), ListBookingsRequest{})
	assert.ErrorIs(t, err, ErrStorage)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.Equal(t, 1, logs.FilterMessage("booking operation failed").Len())
}

func TestService_ListBookings_InvalidStatus(t *testing.T) {
	repo := new(MockBookingRepository)
	svc, _ := newTestService(repo)

	rows, err := svc.ListBookings(context.Background(), ListBookingsRequest{Status: "Pending"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.NotNil(t, rows)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestService_UpdateBookingStatus_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	svc, _ := newTestService(repo)
	ctx := context.Background()

	repo.On("UpdateStatus", ctx, int64(10), domain.BookingCancelled).Return(nil)
	repo.On("GetByID", ctx, int64(10)).Return(&domain.Booking{ID: 10, MemberID: 1, ClassID: 2, Status: domain.BookingCancelled}, nil)

	b, err := svc.UpdateBookingStatus(ctx, 10, UpdateStatusRequest{Status: domain.BookingCancelled})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	repo.AssertExpectations(t)
}

func TestService_UpdateBookingStatus_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	svc, logs := newTestService(repo)

	repo.On("UpdateStatus", mock.Anything, int64(404), domain.BookingAttended).Return(repository.ErrBookingNotFound)

	b, err := svc.UpdateBookingStatus(context.Background(), 404, UpdateStatusRequest{Status: domain.BookingAttended})

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, logs.Len())
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_UpdateBookingStatus_Rejected(t *testing.T) {
	repo := new(MockBookingRepository)
	svc, _ := newTestService(repo)

	_, err := svc.UpdateBookingStatus(context.Background(), 0, UpdateStatusRequest{Status: domain.BookingBooked})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateBookingStatus(context.Background(), 1, UpdateStatusRequest{Status: "Gone"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_DeleteBooking(t *testing.T) {
	repo := new(MockBookingRepository)
	svc, logs := newTestService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, int64(8)).Return(int64(1), nil)
	repo.On("Delete", ctx, int64(9)).Return(int64(0), nil)
	repo.On("Delete", ctx, int64(10)).Return(int64(0), errors.New("connection reset"))

	assert.NoError(t, svc.DeleteBooking(ctx, 8))
	assert.NoError(t, svc.DeleteBooking(ctx, 9))
	assert.ErrorIs(t, svc.DeleteBooking(ctx, 10), ErrStorage)
	assert.ErrorIs(t, svc.DeleteBooking(ctx, -1), ErrValidation)

	assert.Equal(t, 2, logs.FilterMessage("booking deleted").Len())
	assert.Equal(t, 1, logs.FilterMessage("booking operation failed").Len())
}
