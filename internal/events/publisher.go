package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/gilanggnw/Cosmetics-Recommendation/internal/model"
)

type EventPublisher interface {
	PublishUserRegistered(user *model.User) error
	PublishSearchRecorded(userID uuid.UUID, query string) error
	PublishBookmarkAdded(userID uuid.UUID, productID int) error
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (EventPublisher, error) {
	nc, err := nats.Connect(natsURL)

	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

type UserRegisteredEvent struct {
	EventType    string    `json:"event_type"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	RegisteredAt time.Time `json:"registered_at"`
}

type SearchRecordedEvent struct {
	EventType   string    `json:"event_type"`
	UserID      uuid.UUID `json:"user_id"`
	SearchQuery string    `json:"search_query"`
	RecordedAt  time.Time `json:"recorded_at"`
}

type BookmarkAddedEvent struct {
	EventType string    `json:"event_type"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID int       `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

func (p *NatsPublisher) PublishUserRegistered(user *model.User) error {
	event := UserRegisteredEvent{
		EventType:    "user.registered",
		UserID:       user.ID,
		Username:     user.Username,
		RegisteredAt: time.Now(),
	}

	return p.publish("user.registered", event)
}

func (p *NatsPublisher) PublishSearchRecorded(userID uuid.UUID, query string) error {
	event := SearchRecordedEvent{
		EventType:   "search.recorded",
		UserID:      userID,
		SearchQuery: query,
		RecordedAt:  time.Now(),
	}

	return p.publish("search.recorded", event)
}

func (p *NatsPublisher) PublishBookmarkAdded(userID uuid.UUID, productID int) error {
	event := BookmarkAddedEvent{
		EventType: "bookmark.added",
		UserID:    userID,
		ProductID: productID,
		AddedAt:   time.Now(),
	}

	return p.publish("bookmark.added", event)
}

func (p *NatsPublisher) publish(subject string, event any) error {
	eventJSON, err := json.Marshal(event)

	if err != nil {
		log.Printf("Error marshalling event JSON: %v", err)
		return err
	}

	err = p.conn.Publish(subject, eventJSON)

	if err != nil {
		log.Printf("Error publishing to NATS: %v", err)
		return err
	}

	return nil
}
