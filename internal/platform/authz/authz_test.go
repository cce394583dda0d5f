package authz

import "testing"

func TestAllow(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatalf("err=%v", err)
	}

	cases := []struct {
		role, obj, act string
		want           bool
	}{
		{"Admin", ObjAudit, ActionRead, true},
		{"Admin", ObjPayroll, ActionWrite, true},
		{"Manager", ObjAudit, ActionRead, false},
		{"Manager", ObjPayroll, ActionRead, true},
		{"Manager", ObjPayroll, ActionWrite, false},
		{"Manager", ObjLeaveApproval, ActionWrite, true},
		{"Manager", ObjAttendance, ActionWrite, true},
		{"Manager", ObjRecruitment, ActionWrite, true},
		{"Employee", ObjLeave, ActionWrite, true},
		{"Employee", ObjLeaveApproval, ActionWrite, false},
		{"Employee", ObjPayroll, ActionRead, false},
		{"Employee", ObjEmployees, ActionWrite, false},
		{"Employee", ObjDashboard, ActionRead, true},
		{"", ObjDashboard, ActionRead, false},
		{"Contractor", ObjDashboard, ActionRead, false},
	}
	for _, tc := range cases {
		got, err := a.Allow(tc.role, tc.obj, tc.act)
		if err != nil {
			t.Fatalf("%s %s %s: err=%v", tc.role, tc.obj, tc.act, err)
		}
		if got != tc.want {
			t.Fatalf("%s %s %s: allowed=%v want %v", tc.role, tc.obj, tc.act, got, tc.want)
		}
	}
}
