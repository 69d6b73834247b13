package ku

import "sync"

type Awaiter[T any] func() (T, error)

// Call is a once-cell for an asynchronous result: the first DoOrGet
// runs f, everyone else waits and reads the same value. It backs the
// idempotent completion handles handed to callers.
type Call[R any] struct {
	result R
	err    error

	wg   sync.WaitGroup
	once sync.Once
}

func NewCall[R any]() *Call[R] {
	c := &Call[R]{}
	c.wg.Add(1)
	return c
}

func (c *Call[R]) DoOrGet(f Awaiter[R]) (R, error) {
	c.once.Do(func() {
		defer c.wg.Done()
		c.result, c.err = f()
	})
	return c.WaitAndGet()
}

func (c *Call[R]) WaitAndGet() (R, error) {
	c.wg.Wait()
	return c.result, c.err
}
