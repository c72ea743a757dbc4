package models

import "gorm.io/gorm"

type ResearchType string
type ResearchStatus string

const (
	ResearchPublication  ResearchType = "Publication"
	ResearchPresentation ResearchType = "Presentation"
	ResearchTrial        ResearchType = "Trial"

	ResearchSubmitted ResearchStatus = "Submitted"
	ResearchApproved  ResearchStatus = "Approved"
	ResearchPublished ResearchStatus = "Published"
)

type ResearchItem struct {
	gorm.Model
	Title  string         `gorm:"size:255;not null"`
	Type   ResearchType   `gorm:"type:varchar(30);not null"`
	Status ResearchStatus `gorm:"type:varchar(30);not null"`

	UserID uint
	User   User
}
