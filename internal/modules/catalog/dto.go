package catalog

import "gymmaster/internal/domain"

type ClassResponse struct {
	ClassID       int64  `json:"class_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Duration      int    `json:"duration"`
	ClassTypeName string `json:"class_type_name"`
	RoomBuilding  string `json:"room_building"`
	RoomNumber    string `json:"room_number"`
}

func toClassResponses(rows []domain.ClassSummary) []ClassResponse {
	out := make([]ClassResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ClassResponse{
			ClassID:       r.ClassID,
			Date:          domain.DateString(r.Date),
			Time:          domain.ClockString(r.Time),
			Duration:      r.Duration,
			ClassTypeName: r.ClassTypeName,
			RoomBuilding:  r.RoomBuilding,
			RoomNumber:    r.RoomNumber,
		})
	}
	return out
}
