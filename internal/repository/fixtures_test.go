package repository

import (
	"testing"
	"time"

	"gymmaster/internal/database/dbtest"
	"gymmaster/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return dbtest.Open(t)
}

type gymFixture struct {
	alice, bob, dan       domain.Member
	yoga, powerYoga, spin domain.Class
	lowerYoga             domain.Class
	roomA, roomB          domain.Room
}

// seedGym loads four classes: "Yoga", "Power Yoga", "Spin" and the lower-case
// "yoga basics" used to prove the class type filter honours case.
func seedGym(t *testing.T, db *gorm.DB) gymFixture {
	t.Helper()
	var f gymFixture

	f.alice = domain.Member{Name: "Alice Smith", Email: "alice@gym.test"}
	f.bob = domain.Member{Name: "Bob Jones", Email: "bob@gym.test"}
	f.dan = domain.Member{Name: "Dan_Fox", Email: "dan@gym.test"}
	for _, m := range []*domain.Member{&f.alice, &f.bob, &f.dan} {
		require.NoError(t, db.Create(m).Error)
	}

	f.roomA = domain.Room{Building: "North", Number: "A1", MaxCapacity: 20}
	f.roomB = domain.Room{Building: "South", Number: "B7", MaxCapacity: 12}
	require.NoError(t, db.Create(&f.roomA).Error)
	require.NoError(t, db.Create(&f.roomB).Error)

	types := map[string]*domain.ClassType{
		"Yoga":        {Name: "Yoga", Description: "Hatha flow"},
		"Power Yoga":  {Name: "Power Yoga"},
		"Spin":        {Name: "Spin", Description: "Indoor cycling"},
		"yoga basics": {Name: "yoga basics"},
	}
	for _, ct := range types {
		require.NoError(t, db.Create(ct).Error)
	}

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newClass := func(typeName string, room domain.Room, hour, min int) domain.Class {
		c := domain.Class{
			Date:     datatypes.Date(day),
			Time:     datatypes.NewTime(hour, min, 0, 0),
			Duration: 60,
			TypeID:   types[typeName].ID,
			RoomID:   room.ID,
		}
		require.NoError(t, db.Create(&c).Error)
		return c
	}
	f.yoga = newClass("Yoga", f.roomA, 9, 30)
	f.powerYoga = newClass("Power Yoga", f.roomB, 18, 0)
	f.spin = newClass("Spin", f.roomB, 7, 15)
	f.lowerYoga = newClass("yoga basics", f.roomA, 12, 0)

	return f
}

func countBookings(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&n).Error)
	return n
}

func rowIDs(rows []domain.BookingRow) []int64 {
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.BookingID)
	}
	return ids
}
