package list

import (
	"go.uber.org/zap"
)

// Config holds configuration for a Chain
type Config struct {
	Logger *zap.Logger // Step logger (nil = zap.NewNop())
}

// Chain runs successive RemoveAndProcess steps against one container.
// The first failing step's error is kept and every later step is skipped
// without invoking its callback. A Chain is not safe for concurrent use.
type Chain[L List[T], T any] struct {
	list   L
	err    error
	step   int
	logger *zap.Logger
}

// NewChain creates a chain over l. The element type must be given explicitly,
// e.g. NewChain[int](s, Config{}).
func NewChain[T any, L List[T]](l L, config Config) *Chain[L, T] {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Chain[L, T]{
		list:   l,
		logger: config.Logger,
	}
}

// Process removes the element at index and passes it to fn. Once a step
// has failed, Process does nothing beyond logging the skip; fn is not called.
func (c *Chain[L, T]) Process(index int, fn func(T)) *Chain[L, T] {
	c.step++
	if c.err != nil {
		c.logger.Debug("Skipping removal after earlier failure",
			zap.Int("step", c.step),
			zap.Int("index", index))
		return c
	}

	if _, err := RemoveAndProcess(c.list, index, fn); err != nil {
		c.err = err
		c.logger.Warn("Removal failed",
			zap.Int("step", c.step),
			zap.Int("index", index),
			zap.Error(err))
		return c
	}

	c.logger.Debug("Removed element",
		zap.Int("step", c.step),
		zap.Int("index", index),
		zap.Int("remaining", c.list.Len()))
	return c
}

// List returns the container the chain operates on
func (c *Chain[L, T]) List() L {
	return c.list
}

// Err returns the first error encountered, if any
func (c *Chain[L, T]) Err() error {
	return c.err
}

// Result returns the container and the first error encountered
func (c *Chain[L, T]) Result() (L, error) {
	return c.list, c.err
}
