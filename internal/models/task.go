package models

import (
	"time"
)

type TaskPriority string

const (
	TaskPriorityLow  TaskPriority = "LOW"
	TaskPriorityHigh TaskPriority = "HIGH"
)

// Task is a sticky note placed on the board: positioned, sized, colored
// and optionally dated. The ID is a server-generated UUID string; it is
// both the logical key the API exposes and the table primary key.
type Task struct {
	ID        string       `gorm:"primarykey;type:varchar(36)" json:"id"`
	Text      string       `gorm:"type:text;not null" json:"text"`
	X         float64      `gorm:"not null" json:"x"`
	Y         float64      `gorm:"not null" json:"y"`
	Width     float64      `gorm:"not null" json:"width"`
	Height    float64      `gorm:"not null" json:"height"`
	Priority  TaskPriority `gorm:"type:varchar(20);not null;default:'LOW'" json:"priority"`
	Color     string       `gorm:"type:varchar(32);not null;default:'red'" json:"color"`
	Date      *string      `gorm:"type:varchar(64)" json:"date"`
	Completed bool         `gorm:"not null;default:false;index" json:"completed"`
	CreatedAt time.Time    `gorm:"index" json:"created_at"`
}
