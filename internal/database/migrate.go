package database

import (
	"fmt"

	"gymmaster/internal/domain"

	"gorm.io/gorm"
)

// Foreign keys declared by the has-many fields on the referenced models.
// gorm names them fk_<referenced table>_<field>.
const (
	FKClassesClassType = "fk_classtypes_classes"
	FKClassesRoom      = "fk_rooms_classes"
	FKBookingsMember   = "fk_members_bookings"
	FKBookingsClass    = "fk_classes_bookings"
)

// Migrate creates the five gym tables and makes sure every foreign key is in
// place. Referenced tables come first so the constraints on classes and
// bookings can be created with them.
func Migrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Member{},
		&domain.ClassType{},
		&domain.Room{},
		&domain.Class{},
		&domain.Booking{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}

	foreignKeys := []struct {
		model interface{}
		name  string
	}{
		{&domain.Class{}, FKClassesClassType},
		{&domain.Class{}, FKClassesRoom},
		{&domain.Booking{}, FKBookingsMember},
		{&domain.Booking{}, FKBookingsClass},
	}
	for _, fk := range foreignKeys {
		if db.Migrator().HasConstraint(fk.model, fk.name) {
			continue
		}
		if err := db.Migrator().CreateConstraint(fk.model, fk.name); err != nil {
			return fmt.Errorf("create constraint %s: %w", fk.name, err)
		}
	}
	return nil
}
