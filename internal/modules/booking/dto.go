package booking

import "gymmaster/internal/domain"

type CreateBookingRequest struct {
	MemberID int64                `json:"member_id" binding:"required,gt=0"`
	ClassID  int64                `json:"class_id" binding:"required,gt=0"`
	Status   domain.BookingStatus `json:"status" binding:"omitempty,booking_status"`
}

type ListBookingsRequest struct {
	ClassType  string               `form:"class_type"`
	MemberName string               `form:"member_name"`
	Status     domain.BookingStatus `form:"status" binding:"omitempty,booking_status"`
}

type UpdateStatusRequest struct {
	Status domain.BookingStatus `json:"status" binding:"required,booking_status"`
}

type CreateBookingResult struct {
	ID       int64                `json:"booking_id"`
	MemberID int64                `json:"member_id"`
	ClassID  int64                `json:"class_id"`
	Status   domain.BookingStatus `json:"status"`
}

// BookingRowResponse is a listing row as the booking desk displays it.
type BookingRowResponse struct {
	BookingID     int64                `json:"booking_id"`
	MemberName    string               `json:"member_name"`
	Status        domain.BookingStatus `json:"status"`
	ClassDate     string               `json:"class_date"`
	ClassTime     string               `json:"class_time"`
	ClassTypeName string               `json:"class_type_name"`
	RoomBuilding  string               `json:"room_building"`
	RoomNumber    string               `json:"room_number"`
}

func toRowResponses(rows []domain.BookingRow) []BookingRowResponse {
	out := make([]BookingRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingRowResponse{
			BookingID:     r.BookingID,
			MemberName:    r.MemberName,
			Status:        r.Status,
			ClassDate:     domain.DateString(r.ClassDate),
			ClassTime:     domain.ClockString(r.ClassTime),
			ClassTypeName: r.ClassTypeName,
			RoomBuilding:  r.RoomBuilding,
			RoomNumber:    r.RoomNumber,
		})
	}
	return out
}
