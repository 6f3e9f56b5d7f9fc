package domain

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type BookingStatus string

const (
	BookingBooked    BookingStatus = "Booked"
	BookingCancelled BookingStatus = "Cancelled"
	BookingAttended  BookingStatus = "Attended"
)

// BookingStatuses lists the values accepted by the bookings.status column.
var BookingStatuses = []BookingStatus{BookingBooked, BookingCancelled, BookingAttended}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingBooked, BookingCancelled, BookingAttended:
		return true
	}
	return false
}

// GormDBDataType keeps the MySQL column a native ENUM; other dialects get a
// varchar guarded by the check constraint on Booking.Status.
func (BookingStatus) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "mysql" {
		return "ENUM('Booked','Cancelled','Attended')"
	}
	return "VARCHAR(16)"
}

type Member struct {
	ID    int64  `json:"member_id" gorm:"column:member_id;primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"column:name;type:varchar(255)"`
	Email string `json:"email" gorm:"column:email;type:varchar(255);uniqueIndex"`

	Bookings []Booking `json:"-" gorm:"foreignKey:MemberID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Member) TableName() string { return "members" }

type ClassType struct {
	ID          int64  `json:"type_id" gorm:"column:type_id;primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"column:name;type:varchar(255)"`
	Description string `json:"description,omitempty" gorm:"column:description;type:text"`

	Classes []Class `json:"-" gorm:"foreignKey:TypeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (ClassType) TableName() string { return "classtypes" }

type Room struct {
	ID          int64  `json:"room_id" gorm:"column:room_id;primaryKey;autoIncrement"`
	Building    string `json:"building" gorm:"column:building;type:varchar(255)"`
	Number      string `json:"number" gorm:"column:number;type:varchar(255)"`
	MaxCapacity int    `json:"max_capacity" gorm:"column:max_capacity"`

	Classes []Class `json:"-" gorm:"foreignKey:RoomID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Room) TableName() string { return "rooms" }

type Class struct {
	ID          int64          `json:"class_id" gorm:"column:class_id;primaryKey;autoIncrement"`
	Date        datatypes.Date `json:"date" gorm:"column:date"`
	Time        datatypes.Time `json:"time" gorm:"column:time"`
	Duration    int            `json:"duration" gorm:"column:duration"`
	Description string         `json:"description,omitempty" gorm:"column:description;type:text"`
	TypeID      int64          `json:"type_id" gorm:"column:type_id;not null;index"`
	RoomID      int64          `json:"room_id" gorm:"column:room_id;not null;index"`

	Bookings []Booking `json:"-" gorm:"foreignKey:ClassID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Class) TableName() string { return "classes" }

type Booking struct {
	ID       int64         `json:"booking_id" gorm:"column:booking_id;primaryKey;autoIncrement"`
	ClassID  int64         `json:"class_id" gorm:"column:class_id;not null;index"`
	MemberID int64         `json:"member_id" gorm:"column:member_id;not null;index"`
	Status   BookingStatus `json:"status" gorm:"column:status;not null;check:chk_bookings_status,status IN ('Booked','Cancelled','Attended')"`
}

func (Booking) TableName() string { return "bookings" }

// BookingRow is one line of the filtered booking listing: a booking joined
// with its member, class, class type and room.
type BookingRow struct {
	BookingID     int64          `gorm:"column:booking_id"`
	MemberName    string         `gorm:"column:member_name"`
	Status        BookingStatus  `gorm:"column:status"`
	ClassDate     datatypes.Date `gorm:"column:class_date"`
	ClassTime     datatypes.Time `gorm:"column:class_time"`
	ClassTypeName string         `gorm:"column:class_type_name"`
	RoomBuilding  string         `gorm:"column:room_building"`
	RoomNumber    string         `gorm:"column:room_number"`
}

// ClassSummary is a scheduled class with its type and room resolved.
type ClassSummary struct {
	ClassID       int64          `gorm:"column:class_id"`
	Date          datatypes.Date `gorm:"column:date"`
	Time          datatypes.Time `gorm:"column:time"`
	Duration      int            `gorm:"column:duration"`
	ClassTypeName string         `gorm:"column:class_type_name"`
	RoomBuilding  string         `gorm:"column:room_building"`
	RoomNumber    string         `gorm:"column:room_number"`
}

// DateString renders a class date as YYYY-MM-DD.
func DateString(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}

// ClockString renders a class start time as HH:MM, dropping seconds.
func ClockString(t datatypes.Time) string {
	d := time.Duration(t).Truncate(time.Minute)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}
