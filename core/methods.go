// File: methods.go
// Role: Name-level derivation and closure queries.
// Policy:
//   - Every call interns its input once, delegates to methods_index.go and
//     translates the result back to names in Context order.
//   - Any unknown name reports ErrNotFound; nothing is silently dropped.

package core

// Intents returns the attributes common to all named objects (objects′).
// An empty input returns every attribute.
//
// Errors: ErrNotFound if any object name is unknown.
func (c *Context) Intents(objects []string) ([]string, error) {
	set, err := c.ObjectSet(objects)
	if err != nil {
		return nil, err
	}

	return c.AttributeNames(c.Intent(set)), nil
}

// Extents returns the objects having all named attributes (attributes′).
// An empty input returns every object.
//
// Errors: ErrNotFound if any attribute name is unknown.
func (c *Context) Extents(attributes []string) ([]string, error) {
	set, err := c.AttributeSet(attributes)
	if err != nil {
		return nil, err
	}

	return c.ObjectNames(c.Extent(set)), nil
}

// ClosureIntents returns Extents(Intents(objects)), i.e. objects′′.
func (c *Context) ClosureIntents(objects []string) ([]string, error) {
	set, err := c.ObjectSet(objects)
	if err != nil {
		return nil, err
	}

	return c.ObjectNames(c.ObjectClosure(set)), nil
}

// ClosureExtents returns Intents(Extents(attributes)), i.e. attributes′′.
func (c *Context) ClosureExtents(attributes []string) ([]string, error) {
	set, err := c.AttributeSet(attributes)
	if err != nil {
		return nil, err
	}

	return c.AttributeNames(c.AttributeClosure(set)), nil
}
