package pathcache

// EntryCount returns the number of entries in c, live or expired.
func EntryCount(c *Cache) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
