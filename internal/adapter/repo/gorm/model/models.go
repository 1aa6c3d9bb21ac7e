package model

import "time"

type PlayerState struct {
	PlayerID      string `gorm:"primaryKey;column:player_id"`
	Status        string
	EndReason     string
	ClassKey      string
	EducationKey  string
	DifficultyKey string

	Money         float64
	MonthlyIncome float64
	Debt          float64
	Investments   float64
	EmergencyFund float64
	Rent          float64
	Groceries     float64
	Transport     float64

	Happiness float64
	Stress    float64

	CurrentMonth   int
	MonthsNoIncome int

	HasVehicle     bool
	HasUniversity  bool
	HasMasters     bool
	EducationLevel string

	ActionsRemaining int

	// Composite fields serialized as JSON.
	Debuffs      []byte `gorm:"type:jsonb"`
	LockedAction []byte `gorm:"type:jsonb"`
	PendingEvent []byte `gorm:"type:jsonb"`
	Goals        []byte `gorm:"type:jsonb"`
	Totals       []byte `gorm:"type:jsonb"`
	EarlyWindow  []byte `gorm:"type:jsonb"`

	Version   int64
	UpdatedAt time.Time
}

func (PlayerState) TableName() string { return "player_states" }

type HighScore struct {
	ID    int `gorm:"primaryKey"`
	Score int
}

func (HighScore) TableName() string { return "high_scores" }

type SessionSummary struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	PlayerID  string `gorm:"index"`
	Payload   []byte `gorm:"type:jsonb"`
	CreatedAt time.Time
}

func (SessionSummary) TableName() string { return "session_summaries" }

type TrainingRecord struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Payload   []byte `gorm:"type:jsonb"`
	CreatedAt time.Time
}

func (TrainingRecord) TableName() string { return "training_records" }

type DomainEvent struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	PlayerID   string `gorm:"index"`
	Type       string
	OccurredAt time.Time `gorm:"index"`
	Payload    []byte    `gorm:"type:jsonb"`
}

func (DomainEvent) TableName() string { return "domain_events" }
