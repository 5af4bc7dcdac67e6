package domain

import (
	"time"

	"gorm.io/datatypes"
)

type PredictionEvent struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       int64          `gorm:"column:user_id;not null;index" json:"user_id"`
	TraceID      string         `gorm:"column:trace_id" json:"trace_id"`
	LastObserved int            `gorm:"column:last_observed;not null" json:"last_observed"`
	Category     string         `gorm:"column:category;not null" json:"category"`
	Flipped      bool           `gorm:"column:flipped;not null" json:"flipped"`
	Shortlist    datatypes.JSON `gorm:"column:shortlist;type:jsonb" json:"shortlist"`
	History      datatypes.JSON `gorm:"column:history;type:jsonb" json:"history"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PredictionEvent) TableName() string {
	return "prediction_events"
}

type FeedbackEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Outcome   string    `gorm:"column:outcome;not null" json:"outcome"`
	TraceID   string    `gorm:"column:trace_id" json:"trace_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FeedbackEvent) TableName() string {
	return "feedback_events"
}
