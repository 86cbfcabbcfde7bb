package mongodb

import (
	"context"
	"fmt"
	"time"

	"citytransit/internal/models"
	"citytransit/internal/repositories/interfaces"
	"citytransit/pkg/cache"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type stopRepository struct {
	collection *mongo.Collection
	cache      *cache.RedisCache
	cacheTTL   time.Duration
}

func NewStopRepository(db *mongo.Database, c *cache.RedisCache, cacheTTL time.Duration) interfaces.StopRepository {
	return &stopRepository{
		collection: db.Collection("transport_stops"),
		cache:      c,
		cacheTTL:   cacheTTL,
	}
}

func (r *stopRepository) Create(ctx context.Context, stop *models.Stop) error {
	if stop.ID.IsZero() {
		stop.ID = primitive.NewObjectID()
	}
	stop.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, stop)
	if err != nil {
		return fmt.Errorf("failed to create stop: %w", err)
	}

	r.invalidateCache(ctx)

	return nil
}

func (r *stopRepository) ListActive(ctx context.Context, mode *models.TransportMode) ([]*models.Stop, error) {
	cacheKey := stopCacheKey(mode)

	if r.cache != nil {
		var cached []*models.Stop
		if err := r.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	filter := bson.M{"is_active": true}
	if mode != nil {
		filter["type"] = *mode
	}

	cursor, err := r.collection.Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stops: %w", err)
	}
	defer cursor.Close(ctx)

	var stops []*models.Stop
	if err := cursor.All(ctx, &stops); err != nil {
		return nil, fmt.Errorf("failed to decode stops: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, cacheKey, stops, r.cacheTTL)
	}

	return stops, nil
}

func (r *stopRepository) invalidateCache(ctx context.Context) {
	if r.cache == nil {
		return
	}

	keys := []string{stopCacheKey(nil)}
	for _, mode := range []models.TransportMode{models.ModeBus, models.ModeMetro, models.ModeAuto, models.ModeTaxi} {
		m := mode
		keys = append(keys, stopCacheKey(&m))
	}
	_ = r.cache.Delete(ctx, keys...)
}

func stopCacheKey(mode *models.TransportMode) string {
	if mode == nil {
		return "stops:all"
	}
	return fmt.Sprintf("stops:%s", *mode)
}
