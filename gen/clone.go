package gen

// cloneMemo maps original generator IDs to their clones within one Clone call.
type cloneMemo map[ID]any

func cloneWith[T any](memo cloneMemo, g *Generator[T]) *Generator[T] {
	if c, ok := memo[g.id]; ok {
		return c.(*Generator[T])
	}
	c := &Generator[T]{id: nextID(), node: g.node.rebuild(memo)}
	memo[g.id] = c
	return c
}

// Clone returns an independent, identically distributed twin of g.
//
// Every generator reachable from g is rebuilt with a fresh identity, so g and
// its clone never share a cached value. Sharing inside the subtree is kept: a
// generator referenced twice under g is referenced twice, as one clone, under
// the result.
func (g *Generator[T]) Clone() *Generator[T] {
	return cloneWith(cloneMemo{}, g)
}

// IID is Clone.
func (g *Generator[T]) IID() *Generator[T] {
	return g.Clone()
}
