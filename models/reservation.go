package models

import "time"

// Room size categories. Coarse two-valued buckets, not specific room ids.
const (
	RoomSizeSmall = "small"
	RoomSizeLarge = "large"
)

// Reservation is a booked meeting slot. Whoever holds its PIN owns it for
// mutation purposes; reads are open to everyone.
type Reservation struct {
	// Assigned once at creation (random UUID), never changes.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	MeetingName  string `gorm:"column:meeting_name;size:255" json:"meetingName"`
	PersonName   string `gorm:"column:person_name;size:255" json:"personName"`
	MobileNumber string `gorm:"column:mobile_number;size:32" json:"mobileNumber"`

	// ISO-8601 timestamp, normalized to UTC on every write.
	Date string `gorm:"column:date;size:64;index" json:"date"`

	// "HH:MM" 24-hour strings on a half-hour grid. The fixed zero-padded
	// format makes plain string comparison a valid time ordering.
	StartTime string `gorm:"column:start_time;size:5" json:"startTime"`
	EndTime   string `gorm:"column:end_time;size:5" json:"endTime"`

	RoomSize string `gorm:"column:room_size;size:16" json:"roomSize"`

	// 4-digit numeric string. Set at creation, never updated, compared
	// verbatim on delete.
	PIN string `gorm:"column:pin;size:8" json:"pin"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
