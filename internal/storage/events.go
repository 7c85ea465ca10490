// Package storage persists planner events in Postgres through gorm.
package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DoyleJ11/lol-stats-backend/internal/catalog"
	"github.com/DoyleJ11/lol-stats-backend/internal/engine"
)

type PlannerEvent struct {
	ID        uint   `gorm:"primaryKey"`
	LobbyCode string `gorm:"size:16;not null;index:idx_planner_events_lobby,priority:1"`
	Version   int    `gorm:"not null;index:idx_planner_events_lobby,priority:2"`
	Seq       int    `gorm:"not null"`
	Type      string `gorm:"size:32;not null"`
	Side      string `gorm:"size:8"`
	Slot      int
	Champion  string `gorm:"size:64"`
	Role      string `gorm:"size:16"`
	CreatedAt time.Time
}

type EventStore struct {
	db *gorm.DB
}

// Open connects, pings and migrates the events table.
func Open(ctx context.Context, url string) (*EventStore, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	s := NewEventStore(db)
	if err := s.Migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return s, nil
}

func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&PlannerEvent{}); err != nil {
		return fmt.Errorf("migrate planner_events: %w", err)
	}
	return nil
}

func (s *EventStore) Append(ctx context.Context, code string, version int, events []engine.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]PlannerEvent, 0, len(events))
	for i, e := range events {
		rows = append(rows, toRow(code, version, i, e))
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("append events for %s: %w", code, err)
	}
	return nil
}

// Load returns the lobby's event log in order together with the version of
// its last entry. An unknown code yields no events and version 0.
func (s *EventStore) Load(ctx context.Context, code string) ([]engine.Event, int, error) {
	var rows []PlannerEvent
	err := s.db.WithContext(ctx).
		Where("lobby_code = ?", code).
		Order("version ASC").Order("seq ASC").
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("load events for %s: %w", code, err)
	}

	events := make([]engine.Event, 0, len(rows))
	version := 0
	for _, r := range rows {
		events = append(events, toEvent(r))
		version = r.Version
	}
	return events, version, nil
}

func (s *EventStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func toRow(code string, version, seq int, e engine.Event) PlannerEvent {
	return PlannerEvent{
		LobbyCode: code,
		Version:   version,
		Seq:       seq,
		Type:      string(e.Type),
		Side:      string(e.Side),
		Slot:      e.Slot,
		Champion:  e.Champion,
		Role:      string(e.Role),
	}
}

func toEvent(r PlannerEvent) engine.Event {
	return engine.Event{
		Type:     engine.EventType(r.Type),
		Side:     engine.Side(r.Side),
		Slot:     r.Slot,
		Champion: r.Champion,
		Role:     catalog.Role(r.Role),
	}
}
