package migration

import (
	"fmt"
)

// Chain is the validated, ordered migration sequence from root to head.
//
// Construction enforces the chain invariants: unique revisions, exactly one
// root, every predecessor resolves, no revision has two successors, and the
// root-to-head walk covers every registered migration (no cycles, no
// disconnected islands).
type Chain struct {
	ordered []*Migration
	index   map[string]int // revision -> position in ordered
}

func NewChain(migrations []*Migration) (*Chain, error) {
	if len(migrations) == 0 {
		return nil, fmt.Errorf("no migrations registered")
	}

	byRevision := make(map[string]*Migration, len(migrations))
	for _, m := range migrations {
		if m.Revision == "" {
			return nil, fmt.Errorf("migration %q has no revision", m.Label)
		}
		if _, dup := byRevision[m.Revision]; dup {
			return nil, fmt.Errorf("duplicate revision %s", m.Revision)
		}
		byRevision[m.Revision] = m
	}

	// successor[p] is the migration whose DownRevision is p.
	successor := make(map[string]*Migration, len(migrations))
	var root *Migration
	for _, m := range migrations {
		if m.DownRevision == "" {
			if root != nil {
				return nil, fmt.Errorf("multiple roots: %s and %s", root.Revision, m.Revision)
			}
			root = m
			continue
		}
		if _, ok := byRevision[m.DownRevision]; !ok {
			return nil, fmt.Errorf("revision %s references unknown predecessor %s",
				m.Revision, m.DownRevision)
		}
		if prev, taken := successor[m.DownRevision]; taken {
			return nil, fmt.Errorf("branch at %s: both %s and %s declare it as predecessor",
				m.DownRevision, prev.Revision, m.Revision)
		}
		successor[m.DownRevision] = m
	}
	if root == nil {
		return nil, fmt.Errorf("no root migration (every revision declares a predecessor)")
	}

	c := &Chain{index: make(map[string]int, len(migrations))}
	for m := root; m != nil; m = successor[m.Revision] {
		c.index[m.Revision] = len(c.ordered)
		c.ordered = append(c.ordered, m)
	}

	if len(c.ordered) != len(migrations) {
		unreached := map[string]bool{}
		for rev := range byRevision {
			if _, ok := c.index[rev]; !ok {
				unreached[rev] = true
			}
		}
		return nil, fmt.Errorf("chain does not reach revisions %v (cycle or disconnected chain)",
			sortRevisions(unreached))
	}

	return c, nil
}

// Ordered returns the migrations from root to head.
func (c *Chain) Ordered() []*Migration {
	out := make([]*Migration, len(c.ordered))
	copy(out, c.ordered)
	return out
}

func (c *Chain) Root() *Migration { return c.ordered[0] }

func (c *Chain) Head() *Migration { return c.ordered[len(c.ordered)-1] }

// Get returns the migration for a revision, or nil.
func (c *Chain) Get(revision string) *Migration {
	i, ok := c.index[revision]
	if !ok {
		return nil
	}
	return c.ordered[i]
}

// PathTo returns the root-to-target slice of the chain.
func (c *Chain) PathTo(target string) ([]*Migration, error) {
	i, ok := c.index[target]
	if !ok {
		return nil, fmt.Errorf("unknown revision %s", target)
	}
	return c.ordered[:i+1], nil
}

// Pending returns the migrations still to apply to reach target (the head
// when target is empty), given the set of already-applied revisions.
//
// The applied set must form a contiguous prefix of the chain: a gap means
// the tracked state and the chain disagree, and applying out of order is
// refused.
func (c *Chain) Pending(applied map[string]bool, target string) ([]*Migration, error) {
	if target == "" {
		target = c.Head().Revision
	}
	path, err := c.PathTo(target)
	if err != nil {
		return nil, err
	}

	// Applied revisions must all be on the chain.
	for rev := range applied {
		if _, ok := c.index[rev]; !ok {
			return nil, fmt.Errorf("database records unknown revision %s", rev)
		}
	}

	prefix := 0
	for prefix < len(c.ordered) && applied[c.ordered[prefix].Revision] {
		prefix++
	}
	// Anything applied beyond the prefix is a hole in the chain.
	for i := prefix; i < len(c.ordered); i++ {
		if applied[c.ordered[i].Revision] {
			return nil, fmt.Errorf("revision %s is applied but %s is not: chain applied out of order",
				c.ordered[i].Revision, c.ordered[prefix].Revision)
		}
	}

	if prefix >= len(path) {
		return nil, nil
	}
	return path[prefix:], nil
}

// AppliedSuffix returns the applied migrations newest first, for rollback.
// The same contiguity rules as Pending apply.
func (c *Chain) AppliedSuffix(applied map[string]bool) ([]*Migration, error) {
	if _, err := c.Pending(applied, ""); err != nil {
		return nil, err
	}
	var out []*Migration
	for i := len(c.ordered) - 1; i >= 0; i-- {
		if applied[c.ordered[i].Revision] {
			out = append(out, c.ordered[i])
		}
	}
	return out, nil
}
