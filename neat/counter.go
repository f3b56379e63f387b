package neat

// Counter hands out monotonically increasing integer ids.
// One Counter is used for node ids and another for gene innovation
// numbers; both must live for the whole run and be passed to every
// mutation that creates nodes or genes.
type Counter struct {
	next int
}

// NewCounter returns a Counter whose first id is 0.
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the current id and advances the counter.
func (c *Counter) Next() int {
	id := c.next
	c.next++
	return id
}

// Peek returns the id the next call to Next will hand out.
func (c *Counter) Peek() int {
	return c.next
}
