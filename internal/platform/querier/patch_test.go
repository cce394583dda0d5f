package querier

import "testing"

func TestPatchNumbersPlaceholdersInOrder(t *testing.T) {
	var p Patch
	if !p.Empty() {
		t.Fatal("expected empty patch")
	}
	p.Set("name", "Finance")
	p.Set("description", nil)
	where := p.Arg(int64(4))

	if p.Clause() != "name = $1, description = $2" {
		t.Fatalf("unexpected clause %q", p.Clause())
	}
	if where != "$3" {
		t.Fatalf("unexpected where placeholder %q", where)
	}
	if len(p.Args()) != 3 || p.Args()[2] != int64(4) {
		t.Fatalf("unexpected args %v", p.Args())
	}
}

func TestPatchRawExpressionReusesPlaceholder(t *testing.T) {
	var p Patch
	status := p.Arg("Terminated")
	p.SetRaw("employment_status", status)
	p.SetRaw("status_changed_at", "CASE WHEN employment_status <> "+status+" THEN now() ELSE status_changed_at END")
	want := "employment_status = $1, status_changed_at = CASE WHEN employment_status <> $1 THEN now() ELSE status_changed_at END"
	if p.Clause() != want {
		t.Fatalf("unexpected clause %q", p.Clause())
	}
}
