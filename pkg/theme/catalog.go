package theme

// Catalog is an immutable snapshot of one theme's fragment sets. Build one
// with Load; never mutate a Catalog that may be visible to an in-flight
// generation; switching themes means loading a fresh Catalog.
type Catalog struct {
	name string
	sets [NumRoles][]Fragment
}

// NewCatalog builds a catalog directly from fragment sets, bypassing the
// file loader. Entries for unknown roles are dropped.
func NewCatalog(name string, sets map[Role][]Fragment) *Catalog {
	c := &Catalog{name: name}
	for role, frags := range sets {
		if role >= 0 && role < NumRoles {
			c.sets[role] = frags
		}
	}
	return c
}

// Name returns the theme name the catalog was resolved for. This is the
// requested name even when individual role files fell back to the default
// theme.
func (c *Catalog) Name() string {
	return c.name
}

// Fragments returns the fragment set for the role. Callers must treat the
// returned slice as read-only.
func (c *Catalog) Fragments(role Role) []Fragment {
	if role < 0 || role >= NumRoles {
		return nil
	}
	return c.sets[role]
}

// Len returns the number of fragments loaded for the role.
func (c *Catalog) Len(role Role) int {
	return len(c.Fragments(role))
}

// Empty reports whether no role has any fragments at all.
func (c *Catalog) Empty() bool {
	for _, set := range c.sets {
		if len(set) > 0 {
			return false
		}
	}
	return true
}
