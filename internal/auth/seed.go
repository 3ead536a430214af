package auth

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/odyssey-erp/hris-access/internal/access"
	"github.com/odyssey-erp/hris-access/internal/permission"
)

// Roles seeded into the development backend.
func SeedRoles() []Role {
	g := permission.MustGroup
	return []Role{
		{Name: "super_admin", Permissions: permission.All()},
		{Name: "hr_manager", Permissions: permission.Combine(
			g(permission.GroupPersonnelFull), g(permission.GroupPersonnelAdmin), g(permission.GroupEmploymentRecords),
			g(permission.GroupRequestManagement), g(permission.GroupLeaveRequestFull), g(permission.GroupLeaveTypeManagement),
			g(permission.GroupLeaveBalanceFull), g(permission.GroupLeaveReports), g(permission.GroupPayrollFull),
			g(permission.GroupSalaryAdjustments), g(permission.GroupLoanManagement), g(permission.GroupRecruitmentBasic),
			g(permission.GroupApplicantFull), g(permission.GroupJobPostingFull), g(permission.GroupApplicationFull),
			g(permission.GroupInterviewSchedule), g(permission.GroupAttendanceBasic),
		)},
		{Name: "employee", Permissions: permission.Combine(
			g(permission.GroupEmployeeProfile), g(permission.GroupEmployeeRequests), g(permission.GroupEmployeeReports),
			g(permission.GroupLeaveBalanceBasic), g(permission.GroupAttendanceBasic),
			[]permission.Permission{permission.RequestCreate, permission.LeaveRequestCreate},
		)},
		{Name: "Applicant", Permissions: []permission.Permission{}},
	}
}

type seedAccount struct {
	id, username, email, password, role string
	personnel                           []access.PersonnelInfo
}

var seedAccounts = []seedAccount{
	{
		id: "00000000-0000-0000-0000-000000000001", username: "admin", email: "admin@hris.local", password: "Admin123!", role: "super_admin",
		personnel: []access.PersonnelInfo{{ID: "P-0001", FirstName: "System", LastName: "Administrator", EmploymentType: "regular",
			Department: &access.Department{ID: "D-IT", DepartmentName: "Information Technology"}, Designation: "Administrator"}},
	},
	{
		id: "00000000-0000-0000-0000-000000000002", username: "hr_manager", email: "hr@hris.local", password: "HR123!", role: "hr_manager",
		personnel: []access.PersonnelInfo{{ID: "P-0002", FirstName: "Helena", LastName: "Reyes", EmploymentType: "regular",
			Department: &access.Department{ID: "D-HR", DepartmentName: "Human Resources"}, Designation: "HR Manager"}},
	},
	{
		id: "00000000-0000-0000-0000-000000000003", username: "employee", email: "employee@hris.local", password: "Employee123!", role: "employee",
		personnel: []access.PersonnelInfo{{ID: "P-0003", FirstName: "Juan", LastName: "Dela Cruz", EmploymentType: "probationary",
			Department: &access.Department{ID: "D-OPS", DepartmentName: "Operations"}, Designation: "Clerk"}},
	},
	{
		id: "00000000-0000-0000-0000-000000000004", username: "applicant", email: "applicant@hris.local", password: "Applicant123!", role: "Applicant",
	},
}

// SeedAccounts builds the demo accounts. cost is the bcrypt cost; tests
// pass bcrypt.MinCost.
func SeedAccounts(cost int, now time.Time) ([]Account, error) {
	roles := make(map[string]Role)
	for _, r := range SeedRoles() {
		roles[r.Name] = r
	}
	out := make([]Account, 0, len(seedAccounts))
	for _, s := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), cost)
		if err != nil {
			return nil, fmt.Errorf("auth: hash seed password for %s: %w", s.username, err)
		}
		out = append(out, Account{
			ID:           s.id,
			Username:     s.username,
			Email:        s.email,
			Status:       StatusActive,
			PasswordHash: string(hash),
			Personnel:    s.personnel,
			Roles:        []string{s.role},
			Permissions:  roles[s.role].Permissions,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return out, nil
}
