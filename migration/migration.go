// Package migration defines the revision-chained migration unit, the
// registry migrations install themselves into, and chain validation and
// in-memory simulation over the structured operations in migration/op.
package migration

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"

	"github.com/Khrischatyy/fieldhire-db/migration/op"
)

// Migration is one versioned schema-change unit. Revisions link into a
// single unbranched chain via DownRevision; only the root has an empty
// DownRevision. A migration is authored once and never edited after being
// applied to a shared environment.
type Migration struct {
	Revision     string
	DownRevision string
	Label        string
	Up           []op.Operation
	Down         []op.Operation
}

// UpSQL renders the forward operations as SQL statements.
func (m *Migration) UpSQL() ([]string, error) {
	return renderOps(m.Up)
}

// DownSQL renders the inverse operations as SQL statements.
func (m *Migration) DownSQL() ([]string, error) {
	return renderOps(m.Down)
}

func renderOps(ops []op.Operation) ([]string, error) {
	var stmts []string
	for _, o := range ops {
		s, err := o.Statements()
		if err != nil {
			return nil, fmt.Errorf("%s: %v", o.Describe(), err)
		}
		stmts = append(stmts, s...)
	}
	return stmts, nil
}

// Registry collects migrations before they are linked into a chain.
type Registry struct {
	byRevision map[string]*Migration
	order      []string // registration order, for stable error reporting
}

func NewRegistry() *Registry {
	return &Registry{byRevision: map[string]*Migration{}}
}

func (r *Registry) Register(m *Migration) error {
	if m.Revision == "" {
		return fmt.Errorf("migration %q has no revision", m.Label)
	}
	if _, exists := r.byRevision[m.Revision]; exists {
		return fmt.Errorf("duplicate revision %s", m.Revision)
	}
	r.byRevision[m.Revision] = m
	r.order = append(r.order, m.Revision)
	return nil
}

// MustRegister is the init-time registration hook used by the migrations
// package.
func (r *Registry) MustRegister(m *Migration) {
	if err := r.Register(m); err != nil {
		panic(err)
	}
}

// All returns the registered migrations in registration order.
func (r *Registry) All() []*Migration {
	ms := make([]*Migration, 0, len(r.order))
	for _, rev := range r.order {
		ms = append(ms, r.byRevision[rev])
	}
	return ms
}

// Checksum fingerprints a migration's rendered forward SQL. The runner
// stores it so an amended-after-apply migration is detectable.
func Checksum(m *Migration) (string, error) {
	stmts, err := m.UpSQL()
	if err != nil {
		return "", err
	}
	return fingerprint(strings.Join(stmts, "\n")), nil
}

func fingerprint(content string) string {
	hash := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x", hash)
}

// sortRevisions is a helper used in error messages so output is stable.
func sortRevisions(revs map[string]bool) []string {
	out := make([]string, 0, len(revs))
	for r := range revs {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
