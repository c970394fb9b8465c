package fonts

import (
	"maps"

	"github.com/gogpu/fonts/text"
)

// cachedGalley is a galley tagged with the last frame that requested it.
type cachedGalley struct {
	lastUsed uint32
	galley   *text.Galley
}

// galleyCache memoizes layout by job content across frames.
//
// Every lookup tags its entry with the current generation. endFrame keeps
// only the entries tagged with the generation that just ended and then
// advances it, so a galley lives for as long as it is requested every
// frame. Generations compare by equality, so wrapping is harmless.
type galleyCache struct {
	generation uint32
	cache      map[uint64]*cachedGalley

	hits      uint64
	misses    uint64
	evictions uint64
}

func newGalleyCache() *galleyCache {
	return &galleyCache{
		cache: make(map[uint64]*cachedGalley),
	}
}

// layout returns the cached galley for job, laying it out on a miss.
// Two jobs with equal hashes share a galley.
func (c *galleyCache) layout(fonts text.FontResolver, shaper text.Shaper, job *text.LayoutJob) *text.Galley {
	hash := job.Hash()
	if entry, ok := c.cache[hash]; ok {
		entry.lastUsed = c.generation
		c.hits++
		return entry.galley
	}

	c.misses++
	galley := text.Layout(fonts, shaper, job)
	c.cache[hash] = &cachedGalley{
		lastUsed: c.generation,
		galley:   galley,
	}
	return galley
}

func (c *galleyCache) len() int {
	return len(c.cache)
}

// endFrame evicts every galley not requested during the current
// generation and starts the next one. Returns the number evicted.
func (c *galleyCache) endFrame() int {
	current := c.generation
	before := len(c.cache)
	maps.DeleteFunc(c.cache, func(_ uint64, entry *cachedGalley) bool {
		return entry.lastUsed != current
	})
	evicted := before - len(c.cache)

	c.evictions += uint64(evicted)
	c.generation++
	return evicted
}
