package menu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/hris-access/internal/access"
	"github.com/odyssey-erp/hris-access/internal/permission"
	"github.com/odyssey-erp/hris-access/internal/platform/kv"
)

func evaluator(perms ...permission.Permission) *access.Evaluator {
	return access.For(&access.User{Username: "jdoe", Permissions: perms})
}

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func adminTree() []Item {
	return []Item{
		{
			Name:        "System Administration",
			Path:        "/system-administration",
			Permissions: []permission.Permission{permission.UserRead, permission.RoleRead, permission.PermissionRead},
			Children: []Item{
				{Name: "User Management", Path: "/system-administration/user-management", Permissions: permission.MustGroup(permission.GroupUserManagement)},
				{Name: "Role Management", Path: "/system-administration/role-management", Permissions: permission.MustGroup(permission.GroupRoleManagement)},
			},
		},
		{Name: "Dashboard", Path: "/dashboard"},
	}
}

func TestParentKeptForPermittedChild(t *testing.T) {
	got := Filter(adminTree(), evaluator(permission.RoleRead))
	require.Equal(t, []string{"System Administration", "Dashboard"}, names(got))
	assert.Equal(t, []string{"Role Management"}, names(got[0].Children))
}

func TestInaccessibleParentBecomesGroupHeader(t *testing.T) {
	a := evaluator(permission.RoleCreate)
	require.False(t, a.CanAccessRoute(adminTree()[0].Permissions))

	got := Filter(adminTree(), a)
	require.Equal(t, []string{"System Administration", "Dashboard"}, names(got))
	assert.Equal(t, []string{"Role Management"}, names(got[0].Children))
}

func TestUnreachableBranchesAreDropped(t *testing.T) {
	got := Filter(adminTree(), evaluator(permission.PayrollRecordRead))
	assert.Equal(t, []string{"Dashboard"}, names(got))
	assert.NotNil(t, got[0].Children)
	assert.Empty(t, got[0].Children)
}

func TestAccessibleParentWithoutReachableChildren(t *testing.T) {
	items := []Item{{
		Name:        "Payroll Management",
		Permissions: []permission.Permission{permission.PayrollRecordRead},
		Children:    []Item{{Name: "Payroll Run", Permissions: []permission.Permission{permission.PayrollRecordCreate}}},
	}}
	got := Filter(items, evaluator(permission.PayrollRecordRead))
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Children)
}

func TestFilterIsIdempotentAndPure(t *testing.T) {
	source := Default()
	before := Clone(source)
	a := evaluator(permission.EmployeeRead, permission.RoleRead, permission.LeaveBalanceRead)

	once := Filter(source, a)
	twice := Filter(once, a)
	assert.Equal(t, once, twice)
	assert.Equal(t, before, source)

	once[0].Name = "changed"
	if len(once[0].Permissions) > 0 {
		once[0].Permissions[0] = permission.UserDelete
	}
	assert.Equal(t, before, source)
}

func TestDefaultMenuForEmployee(t *testing.T) {
	got := Filter(Default(), evaluator(permission.EmployeeRead, permission.RequestRead))
	assert.Equal(t, []string{
		"Dashboard",
		"Personnel Information",
		"Employee Self-Service",
		"Health & Wellness",
	}, names(got))
	assert.Equal(t, []string{"Admin Dashboard", "Admin Request", "Personnel 201 File", "Personnel Movement"}, names(got[1].Children))
	assert.Equal(t, []string{"My Profile", "My Requests"}, names(got[2].Children))
	assert.Equal(t, "3", got[2].Badge)
}

func TestDefaultMenuWithoutSession(t *testing.T) {
	got := Filter(Default(), access.For(nil))
	assert.Equal(t, []string{"Dashboard", "Employee Self-Service", "Health & Wellness"}, names(got))
	assert.Empty(t, got[1].Children)
}

func TestDefaultMenuPermissions(t *testing.T) {
	items := Default()
	require.Len(t, items, 13)
	assert.Equal(t, permission.MustGroup(permission.GroupSystemAdmin), items[1].Permissions)
	assert.Len(t, Flatten(items), 41)

	for _, item := range Flatten(items) {
		assert.Nil(t, item.Children)
		for _, p := range item.Permissions {
			assert.True(t, permission.Valid(p), "%s: %s", item.Name, p)
		}
	}
}

func TestLoadRejectsUnknownReferences(t *testing.T) {
	_, err := Load("test.yaml", []byte("items:\n  - name: Reports\n    group: NO_SUCH_GROUP\n"))
	require.ErrorIs(t, err, permission.ErrUnknownPermission)

	_, err = Load("test.yaml", []byte("items:\n  - name: Reports\n    children:\n      - name: Export\n        permissions: [report_export_delete]\n"))
	var cfgErr *permission.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "report_export_delete", cfgErr.Token)
	assert.Contains(t, cfgErr.Source, "Export")
}

func TestLoadCombinesGroupAndExplicitPermissions(t *testing.T) {
	items, err := Load("test.yaml", []byte("items:\n  - name: Jobs\n    group: RECRUITMENT_BASIC\n    permissions: [job_posting_read, job_posting_create]\n"))
	require.NoError(t, err)
	assert.Equal(t, []permission.Permission{permission.ApplicantRead, permission.JobPostingRead, permission.JobPostingCreate}, items[0].Permissions)
}

func TestBuilderPublicMode(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemory()
	b := &Builder{Storage: storage, Accessor: evaluator(), Items: adminTree()}

	require.NoError(t, b.EnterPublicMode(ctx))
	got, err := b.Build(ctx, "/online-job-application-portal/jobs/42")
	require.NoError(t, err)
	assert.Equal(t, PublicItems(), got)

	got, err = b.Build(ctx, JobPortalPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Login", "Register"}, names(got))

	got, err = b.Build(ctx, "/login")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dashboard"}, names(got))
	_, ok, _ := storage.Get(ctx, PublicModeKey)
	assert.False(t, ok)

	got, err = b.Build(ctx, JobPortalPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dashboard"}, names(got))
}

func TestFlattenOrder(t *testing.T) {
	flat := Flatten(adminTree())
	assert.Equal(t, []string{"System Administration", "User Management", "Role Management", "Dashboard"}, names(flat))
}
