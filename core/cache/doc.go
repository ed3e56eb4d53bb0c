// Package cache provides a generic, thread-safe LRU cache.
//
//	c := cache.NewLRUCache[string, choice.Labels](256)
//	c.Put("zero other", labels)
//	if labels, ok := c.Get("zero other"); ok {
//		...
//	}
//
// SetEvictCallback observes entries dropped for capacity. Remove and Clear do
// not trigger it.
package cache
