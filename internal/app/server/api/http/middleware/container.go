package middleware

import "github.com/danielgtaylor/huma/v2"

// Container accumulates the middleware chain for the next handler.
// GetAllAndClear hands the chain over and resets, so each handler
// gets exactly the middlewares added since the previous one.
type Container struct {
	middlewares huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.middlewares = append(c.middlewares, mw)
}

func (c *Container) GetAllAndClear() huma.Middlewares {
	out := c.middlewares
	c.middlewares = nil
	return out
}
