package query

// Snapshot is a verbatim copy of selected cache entries at one instant,
// taken before a speculative edit so a failed mutation can be undone.
// Restore writes the copies back wholesale: any fetch that completed between
// the snapshot and the rollback is discarded on purpose, trading
// last-writer-wins for a predictable rollback.
type Snapshot struct {
	entries map[string]*Entry // nil value records that the key was absent
}

// Snapshot captures the given keys. Keys with no entry are recorded as
// absent and will be removed again on Restore.
func (c *Cache) Snapshot(keys ...Key) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Snapshot{entries: make(map[string]*Entry, len(keys))}
	for _, k := range keys {
		if e, ok := c.entries[k.String()]; ok {
			cp := *e
			s.entries[k.String()] = &cp
		} else {
			s.entries[k.String()] = nil
		}
	}
	return s
}

// Restore writes every snapshotted entry back verbatim.
func (c *Cache) Restore(s Snapshot) {
	restored := make([]Entry, 0, len(s.entries))
	c.mu.Lock()
	for canon, e := range s.entries {
		if e == nil {
			delete(c.entries, canon)
			continue
		}
		cp := *e
		c.entries[canon] = &cp
		restored = append(restored, cp)
	}
	c.mu.Unlock()
	rollbacksTotal.Inc()
	for _, e := range restored {
		c.notify(e)
	}
}
