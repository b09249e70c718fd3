package sim

// Commands buffers operations that arrive while a frame is running or
// between frames. Spawns and clears apply at the start of the next frame,
// deferred functions at the end of the current one.
type Commands struct {
	spawns  []spawnCommand
	clears  int
	defers  []deferCommand
	dropped int
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	x, y float64
}

type deferCommand struct {
	fn func()
}

// Spawn queues a body spawn at (x, y).
func (c *Commands) Spawn(x, y float64) {
	c.spawns = append(c.spawns, spawnCommand{x: x, y: y})
}

// Clear queues removal of every live body. Spawns queued after the clear in
// the same frame still apply.
func (c *Commands) Clear() {
	c.clears = len(c.spawns) + 1
}

// Defer queues a function to run after the frame's systems.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Pending returns the number of queued spawns.
func (c *Commands) Pending() int {
	return len(c.spawns)
}

// Dropped returns how many queued spawns were refused at the live-count cap
// over the lifetime of the buffer.
func (c *Commands) Dropped() int {
	return c.dropped
}

// Apply adds queued spawns to the world, clearing it first where a Clear was
// queued. The scheduler calls it before the frame's systems run so new bodies
// are integrated and confined before they are drawn.
func (c *Commands) Apply(world *World) {
	for i, cmd := range c.spawns {
		if c.clears == i+1 {
			world.Clear()
		}
		if _, ok := world.Spawn(cmd.x, cmd.y); !ok {
			c.dropped++
		}
	}
	if c.clears > len(c.spawns) {
		world.Clear()
	}

	c.spawns = c.spawns[:0]
	c.clears = 0
}

// RunDeferred runs deferred functions in queue order. Spawns or clears they
// queue apply at the start of the next frame.
func (c *Commands) RunDeferred() {
	defers := c.defers
	c.defers = nil
	for _, df := range defers {
		df.fn()
	}
	if c.defers == nil {
		c.defers = defers[:0]
	}
}
