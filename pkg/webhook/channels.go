package webhook

import "sync"

// ChannelTable is the in-memory set of tracked channels, shared between
// the webhook engine (lookups by broadcaster id) and the control plane
// (lookups by login name).
type ChannelTable struct {
	mu     sync.RWMutex
	byName map[string]string // login -> broadcaster id
	byID   map[string]string // broadcaster id -> login
}

// NewChannelTable creates an empty table.
func NewChannelTable() *ChannelTable {
	return &ChannelTable{
		byName: make(map[string]string),
		byID:   make(map[string]string),
	}
}

// Add registers a tracked channel, replacing any previous mapping for the
// same login or broadcaster id.
func (t *ChannelTable) Add(name, channelID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if oldID, ok := t.byName[name]; ok {
		delete(t.byID, oldID)
	}
	if oldName, ok := t.byID[channelID]; ok {
		delete(t.byName, oldName)
	}
	t.byName[name] = channelID
	t.byID[channelID] = name
}

// RemoveByName drops a channel and returns its broadcaster id.
func (t *ChannelTable) RemoveByName(name string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id, ok := t.byName[name]
	if ok {
		delete(t.byName, name)
		delete(t.byID, id)
	}
	return id, ok
}

// ContainsName reports whether a login is tracked.
func (t *ChannelTable) ContainsName(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.byName[name]
	return ok
}

// ContainsID reports whether a broadcaster id is tracked.
func (t *ChannelTable) ContainsID(channelID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.byID[channelID]
	return ok
}

// Rename updates the login associated with a broadcaster id, used when
// Twitch reports a renamed account.
func (t *ChannelTable) Rename(channelID, newName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if oldName, ok := t.byID[channelID]; ok {
		delete(t.byName, oldName)
	}
	t.byID[channelID] = newName
	t.byName[newName] = channelID
}

// IDs returns all tracked broadcaster ids.
func (t *ChannelTable) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]string, 0, len(t.byID))
	for id := range t.byID {
		ids = append(ids, id)
	}
	return ids
}
