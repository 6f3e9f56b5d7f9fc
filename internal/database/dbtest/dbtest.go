// Package dbtest opens migrated in-memory SQLite databases for tests in other
// packages.
package dbtest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"gymmaster/internal/database"
	"gymmaster/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Open returns a fresh migrated database named after the running test. It is
// closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open(database.Params{
		Driver: database.DriverSQLite,
		DSN:    fmt.Sprintf("file:dbtest_%s?mode=memory&cache=shared", name),
	})
	require.NoError(t, err, "open sqlite")
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db), "migrate")
	return db
}

// Gym holds the rows created by Seed.
type Gym struct {
	Alice, Bob domain.Member
	Yoga, Spin domain.Class
	Studio     domain.Room
}

// Seed inserts two members and two classes on 2024-03-01: Yoga at 09:30 and
// Spin at 18:00, both in North/A1.
func Seed(t testing.TB, db *gorm.DB) Gym {
	t.Helper()
	var g Gym

	g.Alice = domain.Member{Name: "Alice Smith", Email: "alice@gym.test"}
	g.Bob = domain.Member{Name: "Bob Jones", Email: "bob@gym.test"}
	require.NoError(t, db.Create(&g.Alice).Error)
	require.NoError(t, db.Create(&g.Bob).Error)

	g.Studio = domain.Room{Building: "North", Number: "A1", MaxCapacity: 20}
	require.NoError(t, db.Create(&g.Studio).Error)

	yoga := domain.ClassType{Name: "Yoga"}
	spin := domain.ClassType{Name: "Spin"}
	require.NoError(t, db.Create(&yoga).Error)
	require.NoError(t, db.Create(&spin).Error)

	day := datatypes.Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	g.Yoga = domain.Class{Date: day, Time: datatypes.NewTime(9, 30, 0, 0), Duration: 60, TypeID: yoga.ID, RoomID: g.Studio.ID}
	g.Spin = domain.Class{Date: day, Time: datatypes.NewTime(18, 0, 0, 0), Duration: 45, TypeID: spin.ID, RoomID: g.Studio.ID}
	require.NoError(t, db.Create(&g.Yoga).Error)
	require.NoError(t, db.Create(&g.Spin).Error)

	return g
}
