package plancache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rsoarez/planista/internal/scheduler"
)

// Cache memoizes plan generation by a structural fingerprint of the
// input. The generator itself is pure; this is the caller-side layer
// that short-circuits repeated identical requests to one result.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*scheduler.Result
	hits    int
	misses  int
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]*scheduler.Result)}
}

// Generate returns the plan for the input, reusing the cached result
// when an identical input was seen before. The second return reports a
// cache hit.
func (c *Cache) Generate(in scheduler.Input) (*scheduler.Result, bool, error) {
	key, err := Fingerprint(in)
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if res, ok := c.entries[key]; ok {
		c.hits++
		return res, true, nil
	}

	res := scheduler.Generate(in)
	c.entries[key] = res
	c.misses++
	return res, false, nil
}

// Stats reports hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Invalidate drops every cached plan.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*scheduler.Result)
}

// Fingerprint derives the canonical cache key for an input: dates
// normalized to UTC, JSON with sorted object keys, sha256 hex digest.
func Fingerprint(in scheduler.Input) (string, error) {
	n := normalize(in)

	// Round-trip through an untyped value so map keys serialize sorted
	// regardless of insertion order.
	raw, err := json.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("marshal input: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("canonicalize input: %w", err)
	}
	canonical, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal canonical form: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// normalize rewrites the input's times to UTC so equal instants in
// different zones fingerprint identically.
func normalize(in scheduler.Input) scheduler.Input {
	in.Range.Start = in.Range.Start.UTC()
	in.Range.End = in.Range.End.UTC()
	if in.Preferences.ExamDate != nil {
		d := in.Preferences.ExamDate.UTC()
		in.Preferences.ExamDate = &d
	}
	return in
}
