package models

import (
	"time"

	"gorm.io/gorm"
)

type MeetingType string

const (
	MeetingDepartment   MeetingType = "Department"
	MeetingCME          MeetingType = "CME"
	MeetingHospitalWide MeetingType = "Hospital-wide"
)

type Meeting struct {
	gorm.Model
	Title string      `gorm:"size:255;not null"`
	Date  time.Time   `gorm:"type:date;not null"`
	Type  MeetingType `gorm:"type:varchar(30);not null"`
}
