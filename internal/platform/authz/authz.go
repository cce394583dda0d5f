// Package authz decides which role may perform which action on which resource group.
package authz

import (
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	ActionRead  = "read"
	ActionWrite = "write"
)

// Resource groups guarded by RequireAccess.
const (
	ObjDepartments   = "departments"
	ObjEmployees     = "employees"
	ObjDocuments     = "documents"
	ObjAttendance    = "attendance"
	ObjLeave         = "leave"
	ObjLeaveApproval = "leave_approval"
	ObjPayroll       = "payroll"
	ObjPerformance   = "performance"
	ObjRecruitment   = "recruitment"
	ObjDashboard     = "dashboard"
	ObjAudit         = "audit"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// Managers inherit every Employee rule.
var policies = [][]string{
	{"Admin", "*", "*"},

	{"Employee", ObjDepartments, ActionRead},
	{"Employee", ObjEmployees, ActionRead},
	{"Employee", ObjAttendance, ActionRead},
	{"Employee", ObjAttendance, ActionWrite},
	{"Employee", ObjLeave, ActionRead},
	{"Employee", ObjLeave, ActionWrite},
	{"Employee", ObjPerformance, ActionRead},
	{"Employee", ObjRecruitment, ActionRead},
	{"Employee", ObjDashboard, ActionRead},

	{"Manager", ObjDocuments, ActionRead},
	{"Manager", ObjPayroll, ActionRead},
	{"Manager", ObjLeaveApproval, ActionWrite},
	{"Manager", ObjPerformance, ActionWrite},
	{"Manager", ObjRecruitment, ActionWrite},
}

var groupings = [][]string{
	{"Manager", "Employee"},
}

type Authorizer struct {
	enforcer *casbin.Enforcer
}

func New() (*Authorizer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	if _, err := enforcer.AddPolicies(policies); err != nil {
		return nil, err
	}
	if _, err := enforcer.AddGroupingPolicies(groupings); err != nil {
		return nil, err
	}
	return &Authorizer{enforcer: enforcer}, nil
}

// Allow reports whether role may perform action on object. Unknown roles are denied.
func (a *Authorizer) Allow(role, object, action string) (bool, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return false, nil
	}
	return a.enforcer.Enforce(role, object, action)
}
