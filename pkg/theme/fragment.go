package theme

import (
	"encoding/json"

	"github.com/dmitrymomot/nameforge/pkg/vibe"
)

// Role is the structural slot a fragment can fill in a name.
type Role int

const (
	RolePrefix Role = iota
	RoleBridge
	RoleMiddle
	RoleSuffix
)

// NumRoles is the number of structural roles.
const NumRoles = 4

var roleNames = [NumRoles]string{
	RolePrefix: "prefix",
	RoleBridge: "bridge",
	RoleMiddle: "middle",
	RoleSuffix: "suffix",
}

func (r Role) String() string {
	if r < 0 || r >= NumRoles {
		return "unknown"
	}
	return roleNames[r]
}

// MarshalJSON emits the role name so API payloads read "prefix" rather
// than an index.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

var roleFiles = [NumRoles]string{
	RolePrefix: "prefixes.yaml",
	RoleBridge: "bridges.yaml",
	RoleMiddle: "middles.yaml",
	RoleSuffix: "suffixes.yaml",
}

// fileName is the per-role data file inside a theme directory.
func (r Role) fileName() string {
	return roleFiles[r]
}

// Roles returns all roles in slot order.
func Roles() [NumRoles]Role {
	return [NumRoles]Role{RolePrefix, RoleBridge, RoleMiddle, RoleSuffix}
}

// Fragment is one reusable text chunk with its aesthetic annotation.
// Fragments are immutable once loaded; the same text may appear in several
// roles with independent attributes.
type Fragment struct {
	Text  string
	Attrs vibe.Attributes

	// VowelFirst records whether the fragment starts with a vowel. Only
	// meaningful for prefix-role fragments.
	VowelFirst bool
}
