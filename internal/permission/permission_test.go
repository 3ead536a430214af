package permission

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogTokensFollowNamingConvention(t *testing.T) {
	perms := All()
	require.Len(t, perms, 153)
	for _, p := range perms {
		assert.Contains(t, string(p), "_", "token %s", p)
		assert.NotEmpty(t, p.Category(), "token %s has no category", p)
		assert.Equal(t, string(p), p.Resource()+"_"+p.Action())
	}
}

func TestLookupAndParse(t *testing.T) {
	p, ok := Lookup(" employee_read ")
	require.True(t, ok)
	assert.Equal(t, EmployeeRead, p)

	_, ok = Lookup("employee_fly")
	assert.False(t, ok)

	perms, err := Parse("role_read", "role_create")
	require.NoError(t, err)
	assert.Equal(t, []Permission{RoleRead, RoleCreate}, perms)

	_, err = Parse("role_read", "role_teleport")
	require.Error(t, err)
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "role_teleport", cfgErr.Token)
	assert.True(t, errors.Is(err, ErrUnknownPermission))
}

func TestCategoryTableIsExplicit(t *testing.T) {
	cases := map[Permission]Category{
		UserRead:          CategorySystemAdministration,
		AuditTrailRead:    CategoryReports,
		LeaveRequestRead:  CategoryRequests,
		LeaveBalanceRead:  CategoryLeave,
		DTRAdjustmentRead: CategoryRequests,
		DTRReportRead:     CategoryTimekeeping,
		MeritRead:         CategoryPersonnelInformation,
		KPIRead:           CategoryPerformance,
		JobPostingCreate:  CategoryRecruitment,
	}
	for p, want := range cases {
		assert.Equal(t, want, p.Category(), "category of %s", p)
	}
	assert.Equal(t, Category(""), Permission("nope_read").Category())
}

func TestGroupedCoversCatalogOnce(t *testing.T) {
	seen := make(map[Permission]int)
	for _, entry := range Grouped() {
		for _, p := range entry.Permissions {
			seen[p]++
		}
	}
	assert.Len(t, seen, len(All()))
	for p, n := range seen {
		assert.Equal(t, 1, n, "token %s listed %d times", p, n)
	}
}

func TestDisplayNameAndDescription(t *testing.T) {
	assert.Equal(t, "Leave Request Read", LeaveRequestRead.DisplayName())
	assert.Equal(t, "View leave request information", LeaveRequestRead.Description())
	assert.Equal(t, "Create new employee records", EmployeeCreate.Description())
	assert.Equal(t, "Modify existing role records", RoleUpdate.Description())
	assert.Equal(t, "Remove user records", UserDelete.Description())
	assert.Equal(t, "Generate dtr report", DTRReportGenerate.Description())
}

func TestGroupsOnlyReferenceCatalogTokens(t *testing.T) {
	names := GroupNames()
	require.Len(t, names, 66)
	for _, name := range names {
		perms, err := Group(name)
		require.NoError(t, err, "group %s", name)
		for _, p := range perms {
			assert.True(t, Valid(p), "group %s references %s", name, p)
		}
	}
}

func TestGroupReturnsCopy(t *testing.T) {
	perms := MustGroup(GroupSystemAdmin)
	require.Equal(t, []Permission{UserRead, RoleRead, PermissionRead}, perms)
	perms[0] = ConfigDelete
	assert.Equal(t, UserRead, MustGroup(GroupSystemAdmin)[0])
}

func TestPublicGroupsAreEmpty(t *testing.T) {
	for _, name := range []GroupName{GroupPublicAccess, GroupEmployeeSelfService, GroupHealthWellness} {
		perms, err := Group(name)
		require.NoError(t, err)
		assert.Empty(t, perms, "group %s", name)
		assert.NotNil(t, perms)
	}
}

func TestUnknownGroup(t *testing.T) {
	_, err := Group("NOT_A_GROUP")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPermission))
	assert.True(t, strings.Contains(err.Error(), "NOT_A_GROUP"))
	assert.Panics(t, func() { MustGroup("NOT_A_GROUP") })
}

func TestCombine(t *testing.T) {
	got := Combine(MustGroup(GroupRoleManagement), MustGroup(GroupSystemAdmin))
	assert.Equal(t, []Permission{RoleRead, RoleCreate, RoleUpdate, RoleDelete, UserRead, PermissionRead}, got)
	assert.Equal(t, []Permission{}, Combine())
}

func TestHasAnyGroup(t *testing.T) {
	granted := []Permission{RoleRead, RoleCreate, RoleUpdate, RoleDelete}
	assert.True(t, HasAnyGroup(granted, MustGroup(GroupSystemAdmin), MustGroup(GroupRoleManagement)))
	assert.False(t, HasAnyGroup(granted, MustGroup(GroupSystemAdmin)))
	assert.True(t, HasAnyGroup(nil, MustGroup(GroupPublicAccess)))
	assert.False(t, HasAnyGroup(granted))
}
