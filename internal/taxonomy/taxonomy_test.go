package taxonomy

import (
	"testing"

	"github.com/jonathan/cv-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestProfileFor_AllRolesPresent(t *testing.T) {
	for _, role := range types.AllRoles() {
		profile, err := ProfileFor(role)
		require.NoError(t, err, "role %s", role)
		assert.Equal(t, role, profile.Role)
		assert.Greater(t, profile.TotalKeywords(), 0)
	}
}

func TestProfileFor_UnknownRole(t *testing.T) {
	_, err := ProfileFor(types.Role("DevRel Advocate"))
	assert.Error(t, err)
}

func TestProfiles_CanonicalOrder(t *testing.T) {
	all := Profiles()
	require.Len(t, all, 3)
	assert.Equal(t, types.RoleManualTester, all[0].Role)
	assert.Equal(t, types.RoleTestAutomation, all[1].Role)
	assert.Equal(t, types.RoleFullStackAutomation, all[2].Role)
}

func TestCategory_Lookup(t *testing.T) {
	profile, err := ProfileFor(types.RoleManualTester)
	require.NoError(t, err)

	cat, ok := profile.Category("Testing Fundamentals")
	require.True(t, ok)
	assert.Contains(t, cat.Keywords, "test case")

	_, ok = profile.Category("Nonexistent")
	assert.False(t, ok)
}
