package reactive

// Context[T] is a typed handle for owner-scoped value injection: a value
// Provided on one owner is visible to every descendant owner's UseContext
// call unless a nearer ancestor has Provided its own value for the same
// handle.
type Context[T any] struct {
	key     *int
	defVal  T
	hasDef  bool
}

// NewContext creates a context handle. Reads that reach the root owner
// without finding a Provide fall back to def.
func NewContext[T any](def T) *Context[T] {
	return &Context[T]{key: new(int), defVal: def, hasDef: true}
}

// Provide stores value on o under c's key, visible to UseContext calls from
// o and any descendant owner that does not itself Provide c.
func Provide[T any](o *Owner, c *Context[T], value T) {
	o.SetValue(c.key, value)
}

// UseContext looks up c starting at o and walking ancestors, returning c's
// default if no Provide call shadowed it anywhere in the chain.
func UseContext[T any](o *Owner, c *Context[T]) T {
	if o != nil {
		if v, ok := o.GetValue(c.key); ok {
			return v.(T)
		}
	}
	return c.defVal
}
