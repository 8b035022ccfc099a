package cache

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/KirkDiggler/fitna/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_cache.go github.com/KirkDiggler/fitna/internal/cache RoomCache

// RoomCache holds assembled room snapshots keyed by room ID.
//
// A loader reads Generation before reading the store and passes it back to
// Add. Delete moves the room to a new generation, so a snapshot assembled
// before an invalidation is never stored after it.
type RoomCache interface {
	Get(roomID string) (*models.Room, bool)
	Generation(roomID string) uint64
	Add(roomID string, generation uint64, room *models.Room) bool
	Delete(roomID string)
}

var _ RoomCache = (*LRU)(nil)

// generationsPerEntry sizes the generation index relative to the snapshots
const generationsPerEntry = 4

// LRU is an adaptive replacement cache of room snapshots
type LRU struct {
	mu    sync.Mutex
	cache *lru.ARCCache

	// generations maps room ID to the counter value of its last Delete.
	// A missing entry reads as zero.
	generations *lru.Cache
	counter     uint64
}

func NewLRU(size int) (*LRU, error) {
	c, err := lru.NewARC(size)
	if err != nil {
		return nil, fmt.Errorf("lru new instance of lru arc cache: %w", err)
	}

	generations, err := lru.New(size * generationsPerEntry)
	if err != nil {
		return nil, fmt.Errorf("lru new instance of generation index: %w", err)
	}

	return &LRU{
		cache:       c,
		generations: generations,
	}, nil
}

func (c *LRU) Get(roomID string) (*models.Room, bool) {
	v, ok := c.cache.Get(roomID)
	if !ok {
		return nil, false
	}
	room, ok := v.(*models.Room)
	return room, ok
}

// Generation returns the room's current generation
func (c *LRU) Generation(roomID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generation(roomID)
}

// Add stores the snapshot only if no Delete happened since generation was
// read. It reports whether the snapshot was stored.
func (c *LRU) Add(roomID string, generation uint64, room *models.Room) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation(roomID) != generation {
		return false
	}
	c.cache.Add(roomID, room)
	return true
}

// Delete drops the snapshot and starts a new generation for the room
func (c *LRU) Delete(roomID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// The counter is global so an evicted generation is never reissued
	c.counter++
	c.generations.Add(roomID, c.counter)
	c.cache.Remove(roomID)
}

func (c *LRU) Len() int {
	return c.cache.Len()
}

func (c *LRU) generation(roomID string) uint64 {
	v, ok := c.generations.Peek(roomID)
	if !ok {
		return 0
	}
	return v.(uint64)
}
