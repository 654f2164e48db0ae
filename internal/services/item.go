package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/ndudarev/campus-lostfound/internal/logger"
	"github.com/ndudarev/campus-lostfound/internal/models"
)

// Error variables
var (
	ErrItemNotFound  = errors.New("item not found")
	ErrNameRequired  = errors.New("item name is required")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidType   = errors.New("invalid type")
	ErrInvalidStatus = errors.New("invalid status")
)

// ItemReader defines read operations for items.
type ItemReader interface {
	Get(ctx context.Context, id int64) (*models.ItemDB, error)                        // Returns one item by id
	List(ctx context.Context, role, itemType *string) ([]models.ItemDB, error)        // Returns active items, filtered
	Search(ctx context.Context, pattern string) ([]models.ItemDB, error)              // Substring search over active items
	Stats(ctx context.Context) (*models.Stats, error)                                 // Dashboard counters
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	Save(ctx context.Context, role, itemType, name, description, location, contactInfo string) (*models.ItemDB, error)
	Update(ctx context.Context, id int64, status, description, location *string) (*models.ItemDB, error)
	SetStatus(ctx context.Context, id int64, status string) (*models.ItemDB, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// StatsCache caches the dashboard counters.
type StatsCache interface {
	Get(ctx context.Context) (*models.Stats, error)
	Set(ctx context.Context, stats *models.Stats) error
	Drop(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ItemService handles lost-and-found item operations and event publishing.
type ItemService struct {
	readRepo    ItemReader
	writeRepo   ItemWriter
	cache       StatsCache
	kafkaWriter KafkaWriter
}

// NewItemService creates a new ItemService. The cache and Kafka writer are
// optional; a nil value disables the corresponding feature.
func NewItemService(readRepo ItemReader, writeRepo ItemWriter, cache StatsCache, kafkaWriter KafkaWriter) *ItemService {
	return &ItemService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes an item lifecycle event to Kafka.
func (s *ItemService) publishEvent(ctx context.Context, action string, item *models.ItemDB) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.ItemEvent{
		EventID:    uuid.NewString(),
		OccurredAt: time.Now().Unix(),
		Action:     action,
		ItemID:     item.ID,
		Name:       item.Name,
		Status:     item.Status,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal item event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish item event", "event_id", event.EventID, "action", action, "error", err)
	} else {
		logger.Log.Infow("item event published", "event_id", event.EventID, "action", action, "item_id", item.ID)
	}
}

// dropCachedStats invalidates the cached counters after a write.
func (s *ItemService) dropCachedStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Drop(ctx); err != nil {
		logger.Log.Errorw("failed to drop cached stats", "error", err)
	}
}

// List returns active items, newest first, filtered by role and type when a
// filter is set to anything other than "" or "all".
func (s *ItemService) List(ctx context.Context, role, itemType string) ([]models.ItemResponse, error) {
	var rolePtr, typePtr *string
	if role != "" && role != "all" {
		rolePtr = &role
	}
	if itemType != "" && itemType != "all" {
		typePtr = &itemType
	}

	items, err := s.readRepo.List(ctx, rolePtr, typePtr)
	if err != nil {
		logger.Log.Errorw("failed to list items", "role", role, "type", itemType, "error", err)
		return nil, err
	}

	return models.ToResponses(items), nil
}

// Create validates and persists a new item report. Role and type default to
// "student" and "lost"; unknown values are rejected.
func (s *ItemService) Create(ctx context.Context, role, itemType, name, description, location, contactInfo string) (*models.ItemResponse, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	if role == "" {
		role = models.RoleStudent
	}
	if itemType == "" {
		itemType = models.TypeLost
	}

	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if !models.ValidType(itemType) {
		return nil, ErrInvalidType
	}

	item, err := s.writeRepo.Save(ctx, role, itemType, name, description, location, contactInfo)
	if err != nil {
		logger.Log.Errorw("failed to save item", "name", name, "error", err)
		return nil, err
	}

	s.dropCachedStats(ctx)
	s.publishEvent(ctx, "created", item)

	resp := item.ToResponse()
	return &resp, nil
}

// Get returns one item by id.
func (s *ItemService) Get(ctx context.Context, id int64) (*models.ItemResponse, error) {
	item, err := s.readRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		logger.Log.Errorw("failed to get item", "id", id, "error", err)
		return nil, err
	}

	resp := item.ToResponse()
	return &resp, nil
}

// Update applies the provided fields (status, description, location) and
// refreshes updated_at. Unknown statuses are rejected.
func (s *ItemService) Update(ctx context.Context, id int64, status, description, location *string) (*models.ItemResponse, error) {
	if status != nil && !models.ValidStatus(*status) {
		return nil, ErrInvalidStatus
	}

	item, err := s.writeRepo.Update(ctx, id, status, description, location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		logger.Log.Errorw("failed to update item", "id", id, "error", err)
		return nil, err
	}

	s.dropCachedStats(ctx)
	s.publishEvent(ctx, "updated", item)

	resp := item.ToResponse()
	return &resp, nil
}

// Delete removes an item.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	rowsAffected, err := s.writeRepo.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete item", "id", id, "error", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	s.dropCachedStats(ctx)
	s.publishEvent(ctx, "deleted", &models.ItemDB{ID: id})

	return nil
}

// Claim marks an item as returned, regardless of its current status.
func (s *ItemService) Claim(ctx context.Context, id int64) (*models.ItemResponse, error) {
	item, err := s.writeRepo.SetStatus(ctx, id, models.StatusReturned)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		logger.Log.Errorw("failed to claim item", "id", id, "error", err)
		return nil, err
	}

	s.dropCachedStats(ctx)
	s.publishEvent(ctx, "claimed", item)

	resp := item.ToResponse()
	return &resp, nil
}

// Search returns active items matching the query in name, description or
// location. Queries shorter than two characters after trimming yield an
// empty result set without touching the store.
func (s *ItemService) Search(ctx context.Context, query string) ([]models.ItemResponse, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []models.ItemResponse{}, nil
	}

	items, err := s.readRepo.Search(ctx, "%"+query+"%")
	if err != nil {
		logger.Log.Errorw("failed to search items", "query", query, "error", err)
		return nil, err
	}

	return models.ToResponses(items), nil
}

// Stats returns the dashboard counters, served from the cache when possible.
func (s *ItemService) Stats(ctx context.Context) (*models.Stats, error) {
	if s.cache != nil {
		if stats, err := s.cache.Get(ctx); err == nil {
			return stats, nil
		}
	}

	stats, err := s.readRepo.Stats(ctx)
	if err != nil {
		logger.Log.Errorw("failed to compute stats", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			logger.Log.Errorw("failed to cache stats", "error", err)
		}
	}

	return stats, nil
}
