package schedule

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"dbsa/models"
)

// EntityStore caches normalized entities across requests so repeated
// sightings of the same class/coach/location skip reconstruction. A cached
// entity deliberately wins over a freshly decoded upstream value for its
// lifetime; the schedule data is static enough that staleness is acceptable.
type EntityStore interface {
	GetClass(ctx context.Context, id string) (models.ScheduleClass, bool)
	PutClass(ctx context.Context, class models.ScheduleClass)
	GetCoach(ctx context.Context, id string) (models.ScheduleCoach, bool)
	PutCoach(ctx context.Context, coach models.ScheduleCoach)
	GetLocation(ctx context.Context, id string) (models.ScheduleLocation, bool)
	PutLocation(ctx context.Context, location models.ScheduleLocation)
}

// MemoryEntityStore keeps entities in process memory for the process
// lifetime. Entries are never evicted, so long-lived processes grow with the
// number of distinct entities seen.
type MemoryEntityStore struct {
	mu        sync.RWMutex
	classes   map[string]models.ScheduleClass
	coaches   map[string]models.ScheduleCoach
	locations map[string]models.ScheduleLocation
}

func NewMemoryEntityStore() *MemoryEntityStore {
	return &MemoryEntityStore{
		classes:   make(map[string]models.ScheduleClass),
		coaches:   make(map[string]models.ScheduleCoach),
		locations: make(map[string]models.ScheduleLocation),
	}
}

func (s *MemoryEntityStore) GetClass(_ context.Context, id string) (models.ScheduleClass, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	class, ok := s.classes[id]
	return class, ok
}

func (s *MemoryEntityStore) PutClass(_ context.Context, class models.ScheduleClass) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classes[class.ID] = class
}

func (s *MemoryEntityStore) GetCoach(_ context.Context, id string) (models.ScheduleCoach, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	coach, ok := s.coaches[id]
	return coach, ok
}

func (s *MemoryEntityStore) PutCoach(_ context.Context, coach models.ScheduleCoach) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coaches[coach.ID] = coach
}

func (s *MemoryEntityStore) GetLocation(_ context.Context, id string) (models.ScheduleLocation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	location, ok := s.locations[id]
	return location, ok
}

func (s *MemoryEntityStore) PutLocation(_ context.Context, location models.ScheduleLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations[location.ID] = location
}

const (
	classKeyPrefix    = "schedule:class:"
	coachKeyPrefix    = "schedule:coach:"
	locationKeyPrefix = "schedule:location:"
)

// RedisEntityStore backs the entity cache with Redis so several instances
// share one cache and entries expire instead of accumulating forever.
type RedisEntityStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisEntityStore(client *redis.Client, ttl time.Duration) *RedisEntityStore {
	return &RedisEntityStore{client: client, ttl: ttl}
}

func (s *RedisEntityStore) get(ctx context.Context, key string, out interface{}) bool {
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		// redis.Nil and transport errors both fall through to reconstruction.
		return false
	}
	return json.Unmarshal([]byte(data), out) == nil
}

func (s *RedisEntityStore) put(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.client.Set(ctx, key, data, s.ttl)
}

func (s *RedisEntityStore) GetClass(ctx context.Context, id string) (models.ScheduleClass, bool) {
	var class models.ScheduleClass
	ok := s.get(ctx, classKeyPrefix+id, &class)
	return class, ok
}

func (s *RedisEntityStore) PutClass(ctx context.Context, class models.ScheduleClass) {
	s.put(ctx, classKeyPrefix+class.ID, class)
}

func (s *RedisEntityStore) GetCoach(ctx context.Context, id string) (models.ScheduleCoach, bool) {
	var coach models.ScheduleCoach
	ok := s.get(ctx, coachKeyPrefix+id, &coach)
	return coach, ok
}

func (s *RedisEntityStore) PutCoach(ctx context.Context, coach models.ScheduleCoach) {
	s.put(ctx, coachKeyPrefix+coach.ID, coach)
}

func (s *RedisEntityStore) GetLocation(ctx context.Context, id string) (models.ScheduleLocation, bool) {
	var location models.ScheduleLocation
	ok := s.get(ctx, locationKeyPrefix+id, &location)
	return location, ok
}

func (s *RedisEntityStore) PutLocation(ctx context.Context, location models.ScheduleLocation) {
	s.put(ctx, locationKeyPrefix+location.ID, location)
}
