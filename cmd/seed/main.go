package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gymmaster/internal/config"
	"gymmaster/internal/database"
	"gymmaster/internal/domain"
	"gymmaster/internal/pkg/logger"
)

func main() {
	days := flag.Int("days", 7, "number of days of classes to schedule")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	params := cfg.DatabaseParams()
	params.Logger = log
	db, err := database.Open(params)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	stats, err := seed(context.Background(), db, start, *days)
	if err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	if stats.skipped {
		log.Info("sample members already present, nothing seeded")
		return
	}
	log.Info("seed complete",
		zap.Int("members", stats.members),
		zap.Int("class_types", stats.classTypes),
		zap.Int("rooms", stats.rooms),
		zap.Int("classes", stats.classes),
	)
}

type seedStats struct {
	skipped                             bool
	members, classTypes, rooms, classes int
}

var (
	sampleMembers = []domain.Member{
		{Name: "Alice Smith", Email: "alice.smith@gymmaster.test"},
		{Name: "Bob Jones", Email: "bob.jones@gymmaster.test"},
		{Name: "Carla Diaz", Email: "carla.diaz@gymmaster.test"},
		{Name: "Derek Chen", Email: "derek.chen@gymmaster.test"},
		{Name: "Erin Walsh", Email: "erin.walsh@gymmaster.test"},
	}
	sampleClassTypes = []domain.ClassType{
		{Name: "Yoga", Description: "Hatha flow for all levels"},
		{Name: "Power Yoga", Description: "Fast-paced vinyasa"},
		{Name: "Spin", Description: "Indoor cycling intervals"},
		{Name: "HIIT", Description: "High intensity circuit"},
		{Name: "Pilates", Description: "Mat pilates"},
	}
	sampleRooms = []domain.Room{
		{Building: "North", Number: "A1", MaxCapacity: 20},
		{Building: "North", Number: "A2", MaxCapacity: 12},
		{Building: "South", Number: "B7", MaxCapacity: 30},
	}
	// hour, minute, duration in minutes
	dailySlots = [][3]int{{7, 0, 45}, {9, 30, 60}, {12, 15, 45}, {18, 0, 60}, {19, 30, 50}}
)

var errAlreadySeeded = errors.New("sample members already present")

// seed fills the reference tables once. A second run hits the unique email
// index on the first sample member and rolls back without changes.
func seed(ctx context.Context, db *gorm.DB, start time.Time, days int) (seedStats, error) {
	var stats seedStats

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		members := append([]domain.Member(nil), sampleMembers...)
		if err := tx.Create(&members).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return errAlreadySeeded
			}
			return fmt.Errorf("members: %w", err)
		}
		types := append([]domain.ClassType(nil), sampleClassTypes...)
		if err := tx.Create(&types).Error; err != nil {
			return fmt.Errorf("class types: %w", err)
		}
		rooms := append([]domain.Room(nil), sampleRooms...)
		if err := tx.Create(&rooms).Error; err != nil {
			return fmt.Errorf("rooms: %w", err)
		}

		var classes []domain.Class
		for d := 0; d < days; d++ {
			day := datatypes.Date(start.AddDate(0, 0, d))
			for i, slot := range dailySlots {
				classes = append(classes, domain.Class{
					Date:     day,
					Time:     datatypes.NewTime(slot[0], slot[1], 0, 0),
					Duration: slot[2],
					TypeID:   types[(d+i)%len(types)].ID,
					RoomID:   rooms[i%len(rooms)].ID,
				})
			}
		}
		if len(classes) > 0 {
			if err := tx.Create(&classes).Error; err != nil {
				return fmt.Errorf("classes: %w", err)
			}
		}

		stats.members = len(members)
		stats.classTypes = len(types)
		stats.rooms = len(rooms)
		stats.classes = len(classes)
		return nil
	})
	if errors.Is(err, errAlreadySeeded) {
		return seedStats{skipped: true}, nil
	}
	return stats, err
}
