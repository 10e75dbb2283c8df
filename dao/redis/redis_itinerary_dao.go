package redis

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"tp-server/config"
	"tp-server/db"
	"tp-server/models"
)

const ITINERARY_CACHE_KEY_FORMAT_V1 = "itinerary_v1:%s"

// RedisItineraryDAO caches generated itineraries keyed by a fingerprint of
// the trip request, so re-submitting the same form does not re-bill the LLM.
type RedisItineraryDAO struct {
	client db.RedisClient
}

// NewRedisItineraryDAO initializes a RedisItineraryDAO with the Redis client.
func NewRedisItineraryDAO(client db.RedisClient) *RedisItineraryDAO {
	return &RedisItineraryDAO{client: client}
}

// SetItinerary caches the generated result for a request with the configured TTL.
func (dao *RedisItineraryDAO) SetItinerary(request models.TripRequest, result *models.ItineraryResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal itinerary for %s: %w", request.DestinationPlace, err)
	}
	if err := dao.client.Set(cacheKey(request), string(data), config.ITINERARY_CACHE_TTL); err != nil {
		return fmt.Errorf("failed to set itinerary in redis: %w", err)
	}
	return nil
}

// GetItinerary retrieves the cached result for a request. A cache miss
// returns (nil, nil).
func (dao *RedisItineraryDAO) GetItinerary(request models.TripRequest) (*models.ItineraryResult, error) {
	value, err := dao.client.Get(cacheKey(request))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get itinerary from redis: %w", err)
	}

	var result models.ItineraryResult
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached itinerary JSON: %w", err)
	}
	return &result, nil
}

// DeleteItinerary drops the cached result for a request.
func (dao *RedisItineraryDAO) DeleteItinerary(request models.TripRequest) error {
	key := cacheKey(request)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete itinerary key %s: %w", key, err)
	}
	log.Printf("[RedisItineraryDAO] Deleted cached itinerary for %s", key)
	return nil
}

// cacheKey hashes the request fingerprint so free-text fields (places) never
// leak separators into the key space.
func cacheKey(request models.TripRequest) string {
	sum := sha256.Sum256([]byte(request.Fingerprint()))
	return fmt.Sprintf(ITINERARY_CACHE_KEY_FORMAT_V1, hex.EncodeToString(sum[:]))
}
