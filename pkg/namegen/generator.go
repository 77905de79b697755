package namegen

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/nameforge/pkg/theme"
)

// Generator produces names from a fragment catalog. Construct with New;
// the zero value is not usable.
type Generator struct {
	catalog *theme.Catalog
	log     *slog.Logger

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand replaces the generator's random source. Pass a seeded source
// for reproducible output in tests; the generator serializes access, so
// the source needs no locking of its own.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithLogger sets the logger for per-candidate scoring diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// New returns a Generator bound to the catalog.
func New(catalog *theme.Catalog, opts ...Option) *Generator {
	g := &Generator{
		catalog: catalog,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// slotsFor maps a structural block count to the slot sequence. The bridge
// only appears in four-block names, between the prefix and the middle.
func slotsFor(count int) []theme.Role {
	switch count {
	case 2:
		return []theme.Role{theme.RolePrefix, theme.RoleSuffix}
	case 3:
		return []theme.Role{theme.RolePrefix, theme.RoleMiddle, theme.RoleSuffix}
	default:
		return []theme.Role{theme.RolePrefix, theme.RoleBridge, theme.RoleMiddle, theme.RoleSuffix}
	}
}

// drawBlockCount picks the number of structural blocks for one name.
// Callers hold the generator lock.
func (g *Generator) drawBlockCount(opts *Options) int {
	valid := make([]int, 0, len(opts.BlockCounts))
	for _, n := range opts.BlockCounts {
		if n >= 2 && n <= 4 {
			valid = append(valid, n)
		}
	}
	if len(valid) > 0 {
		return valid[g.rng.Intn(len(valid))]
	}
	// Unconstrained: short names dominate, four blocks stays rare.
	switch v := g.rng.Intn(10); {
	case v < 5:
		return 2
	case v < 9:
		return 3
	default:
		return 4
	}
}

// Generate produces one name. A nil opts is replaced with DefaultOptions.
// Failures carry a *SlotError naming the slot that could not be filled.
func (g *Generator) Generate(opts *Options) (Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	roles := slotsFor(g.drawBlockCount(opts))
	used := make([]string, 0, len(roles))
	slots := make([]SlotScore, 0, len(roles))
	for _, role := range roles {
		frag, score, err := g.selectFragment(g.catalog.Fragments(role), role, used, opts)
		if err != nil {
			return Result{}, &SlotError{Slot: role, Err: err}
		}
		used = append(used, frag.Text)
		slots = append(slots, score)
	}

	name := strings.Join(used, "")
	name = g.insertFeatures(name, used, opts)
	name = g.modifyGlyphs(name, opts)
	name = Capitalize(name)

	return Result{Name: name, Fragments: used, Slots: slots}, nil
}

// GenerateN produces count names. A failure aborts only the entry it hit:
// the batch keeps going, the returned slice holds every name that
// succeeded, and the error joins the per-entry failures. Invalid options
// fail the whole batch up front.
func (g *Generator) GenerateN(count int, opts *Options) ([]Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, count)
	var errs []error
	for i := 0; i < count; i++ {
		res, err := g.Generate(opts)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}
