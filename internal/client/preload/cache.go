package preload

import "sync"

// imageCache хранит последние загруженные изображения в памяти.
// Это замена кэша изображений браузера: предзагруженный сосед
// достается отсюда мгновенно, без повторного похода в сеть.
// Ограничен по количеству записей, вытесняется самая старая
type imageCache struct {
	mu    sync.Mutex
	max   int
	items map[string][]byte
	order []string
}

func newImageCache(max int) *imageCache {
	return &imageCache{
		max:   max,
		items: make(map[string][]byte),
	}
}

// get возвращает изображение по идентификатору фотографии
func (c *imageCache) get(id string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.items[id]
	return data, ok
}

// put сохраняет изображение, вытесняя самую старую запись при переполнении
func (c *imageCache) put(id string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; ok {
		return
	}

	for c.max > 0 && len(c.order) >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}

	c.items[id] = data
	c.order = append(c.order, id)
}

// len возвращает текущее количество записей
func (c *imageCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}
