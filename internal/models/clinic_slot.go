package models

import "gorm.io/gorm"

// Еженедельный приёмный слот врача. Времена храним строками ("8:00"),
// пересечения слотов не проверяем.
type ClinicSlot struct {
	gorm.Model
	DayOfWeek string `gorm:"size:16;not null"` // Monday, Tuesday...
	StartTime string `gorm:"size:8;not null"`
	EndTime   string `gorm:"size:8;not null"`

	UserID uint
	User   User
}
