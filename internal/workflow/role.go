package workflow

import "sep-workflow/internal/bizerror"

type Role string

const (
	RoleCustomerServiceEmployee Role = "CSE"
	RoleCustomerServiceManager  Role = "CSM"
	RoleFinancialManager        Role = "FIM"
	RoleAdminManager            Role = "ADM"
	RoleProductionManager       Role = "PDM"
	RoleProductionEmployee      Role = "PDE"
	RoleServiceManager          Role = "SDM"
	RoleServiceEmployee         Role = "SDE"
	RoleHRManager               Role = "HRM"
)

// DefaultRole is the role call sites pass when an employee is created without a specific assignment.
const DefaultRole = RoleCustomerServiceEmployee

var roleNames = map[Role]string{
	RoleCustomerServiceEmployee: "Customer Service Employee",
	RoleCustomerServiceManager:  "Customer Service Manager",
	RoleFinancialManager:        "Financial Manager",
	RoleAdminManager:            "Administration Dpt Manager",
	RoleProductionManager:       "Production Dpt Manager",
	RoleProductionEmployee:      "Production Dpt Employee",
	RoleServiceManager:          "Service Dpt Manager",
	RoleServiceEmployee:         "Service Dpt Employee",
	RoleHRManager:               "HR Manager",
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", bizerror.Invalid("role", "unknown role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) Name() string {
	return roleNames[r]
}

// IsDepartmentManager reports whether the role owns production or service teams.
func (r Role) IsDepartmentManager() bool {
	return r == RoleProductionManager || r == RoleServiceManager
}
