package models

import (
	"time"

	"gorm.io/gorm"
)

// Запись об оказанной услуге: процедура, дата, исполнитель.
type ServiceEntry struct {
	gorm.Model
	Date          time.Time `gorm:"type:date;not null"`
	ProcedureName string    `gorm:"size:255;not null"`
	Notes         string    `gorm:"type:text"`

	UserID uint
	User   User
}
