package types

import "fmt"

// Role identifies one of the fixed target job profiles a résumé can be
// evaluated against. The set is closed; new roles require a taxonomy change.
type Role string

// Supported roles
const (
	RoleManualTester        Role = "Manual Tester"
	RoleTestAutomation      Role = "Test Automation Engineer"
	RoleFullStackAutomation Role = "Full Stack Automation Engineer"
)

// AllRoles returns the supported roles in their canonical display order.
func AllRoles() []Role {
	return []Role{RoleManualTester, RoleTestAutomation, RoleFullStackAutomation}
}

// ParseRole resolves a role name to its canonical Role value.
// Matching is exact; unknown names return an error listing valid roles.
func ParseRole(name string) (Role, error) {
	for _, r := range AllRoles() {
		if string(r) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q (valid roles: %v)", name, AllRoles())
}

// String returns the role's display name.
func (r Role) String() string {
	return string(r)
}
