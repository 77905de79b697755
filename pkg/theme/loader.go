package theme

import (
	"embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/nameforge/pkg/phonetics"
	"github.com/dmitrymomot/nameforge/pkg/vibe"
)

//go:embed themes
var embeddedThemes embed.FS

// DefaultTheme is the fallback every missing theme or role file resolves to.
const DefaultTheme = "default"

type loaderConfig struct {
	dir    string
	logger *slog.Logger
}

// Option configures theme loading.
type Option func(*loaderConfig)

// WithDir points the loader at an on-disk theme directory. Files found
// there take precedence over the embedded themes.
func WithDir(path string) Option {
	return func(c *loaderConfig) {
		c.dir = path
	}
}

// WithLogger sets the logger used for skipped rows and fallback notices.
func WithLogger(l *slog.Logger) Option {
	return func(c *loaderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// fragmentEntry is one row of a role data file.
type fragmentEntry struct {
	Text        string `yaml:"text"`
	Benevolence int    `yaml:"benevolence"`
	Elegance    int    `yaml:"elegance"`
	Exoticism   int    `yaml:"exoticism"`
	Potency     int    `yaml:"potency"`
	GenderLean  int    `yaml:"gender_lean"`
	VowelFirst  *bool  `yaml:"vowel_first"`
}

// Load resolves the named theme into an immutable Catalog. Each role file
// is resolved independently with fallback to the default theme, so a theme
// only has to override the roles it cares about. An empty name loads the
// default theme. Load never partially mutates a previously returned
// Catalog; callers switch themes by swapping the returned pointer.
func Load(name string, opts ...Option) (*Catalog, error) {
	if name == "" {
		name = DefaultTheme
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidThemeName, name)
	}

	cfg := &loaderConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(cfg)
	}

	cat := &Catalog{name: name}
	for _, role := range Roles() {
		data, source, ok := resolveRoleFile(cfg, name, role)
		if !ok {
			cfg.logger.Debug("no data file for role", "theme", name, "role", role.String())
			continue
		}

		fragments, skipped, err := parseFragments(data, role)
		if err != nil {
			cfg.logger.Warn("unreadable role file, skipping",
				"theme", name, "role", role.String(), "source", source, "error", err)
			continue
		}
		if skipped > 0 {
			cfg.logger.Warn("skipped rows with missing or out-of-scale attributes",
				"theme", name, "role", role.String(), "source", source, "skipped", skipped)
		}
		cat.sets[role] = fragments
	}

	if cat.Empty() {
		return nil, fmt.Errorf("%w: %q", ErrNoThemeData, name)
	}
	return cat, nil
}

// resolveRoleFile walks the fallback chain for one role file: requested
// theme on disk, default theme on disk, requested embedded theme, default
// embedded theme.
func resolveRoleFile(cfg *loaderConfig, name string, role Role) (data []byte, source string, ok bool) {
	file := role.fileName()

	if cfg.dir != "" {
		for _, themeName := range fallbackOrder(name) {
			path := filepath.Join(cfg.dir, themeName, file)
			if b, err := os.ReadFile(path); err == nil {
				return b, path, true
			}
		}
	}

	for _, themeName := range fallbackOrder(name) {
		path := "themes/" + themeName + "/" + file
		if b, err := embeddedThemes.ReadFile(path); err == nil {
			return b, "embedded:" + path, true
		}
	}

	return nil, "", false
}

func fallbackOrder(name string) []string {
	if name == DefaultTheme {
		return []string{DefaultTheme}
	}
	return []string{name, DefaultTheme}
}

// parseFragments decodes a role file, dropping rows whose attributes are
// missing or off the 1–10 scale. For prefixes the vowel_first flag is
// honored when present and derived from the first letter otherwise.
func parseFragments(data []byte, role Role) ([]Fragment, int, error) {
	var entries []fragmentEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, 0, err
	}

	fragments := make([]Fragment, 0, len(entries))
	skipped := 0
	for _, e := range entries {
		text := strings.TrimSpace(e.Text)
		if text == "" {
			skipped++
			continue
		}

		attrs, ok := entryAttrs(e)
		if !ok {
			skipped++
			continue
		}

		f := Fragment{Text: text, Attrs: attrs}
		if role == RolePrefix {
			if e.VowelFirst != nil {
				f.VowelFirst = *e.VowelFirst
			} else {
				f.VowelFirst = phonetics.IsVowel(rune(text[0]))
			}
		}
		fragments = append(fragments, f)
	}
	return fragments, skipped, nil
}

func entryAttrs(e fragmentEntry) (vibe.Attributes, bool) {
	values := [vibe.NumAxes]int{
		vibe.Benevolence: e.Benevolence,
		vibe.Elegance:    e.Elegance,
		vibe.Exoticism:   e.Exoticism,
		vibe.Potency:     e.Potency,
		vibe.GenderLean:  e.GenderLean,
	}

	var attrs vibe.Attributes
	for i, v := range values {
		if v < vibe.ScaleMin || v > vibe.ScaleMax {
			return attrs, false
		}
		attrs[i] = int8(v)
	}
	return attrs, true
}
