package webhook

import (
	"sync"
	"time"

	"github.com/stitchbot/stitch/pkg/models"
)

// liveStream is the runtime state of one currently live stream. The struct
// is mutated only while holding mu, so a channel.update racing the offline
// removal either wins the lock before removal or observes a removed entry.
type liveStream struct {
	mu sync.Mutex

	id        string // Twitch stream id
	channelID string
	userLogin string
	userName  string

	title    string
	category string

	startedAt   time.Time
	lastUpdated time.Time

	messageID       int64
	profileImageURL string

	events []models.UpdateEvent
}

// streamTable holds runtime streams keyed by broadcaster id. Map
// insert/remove is the canonical serialization point for stream presence.
type streamTable struct {
	mu sync.RWMutex
	m  map[string]*liveStream
}

func newStreamTable() *streamTable {
	return &streamTable{m: make(map[string]*liveStream)}
}

func (t *streamTable) get(channelID string) (*liveStream, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.m[channelID]
	return s, ok
}

func (t *streamTable) contains(channelID string) bool {
	_, ok := t.get(channelID)
	return ok
}

// insertIfAbsent stores the stream unless an entry already exists for the
// broadcaster; it reports whether the caller won the insert.
func (t *streamTable) insertIfAbsent(channelID string, s *liveStream) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.m[channelID]; ok {
		return false
	}
	t.m[channelID] = s
	return true
}

// remove atomically takes the entry out of the table.
func (t *streamTable) remove(channelID string) (*liveStream, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.m[channelID]
	if ok {
		delete(t.m, channelID)
	}
	return s, ok
}

func (t *streamTable) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.m)
}
