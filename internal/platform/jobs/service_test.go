package jobs

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type recordedExec struct {
	sql  string
	args []any
}

type fakeDB struct {
	mu    sync.Mutex
	execs []recordedExec
}

type idRow struct{ id int64 }

func (r idRow) Scan(dest ...any) error {
	*(dest[0].(*int64)) = r.id
	return nil
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.execs = append(f.execs, recordedExec{sql: sql, args: args})
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return idRow{id: 11}
}

func (f *fakeDB) snapshot() []recordedExec {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedExec(nil), f.execs...)
}

func TestRunNowRecordsCompletedRun(t *testing.T) {
	db := &fakeDB{}
	svc := New(db)

	out, err := svc.RunNow(context.Background(), JobPayrollMonthly, func(ctx context.Context) (any, error) {
		return map[string]int{"generated": 2}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.(map[string]int)["generated"] != 2 {
		t.Fatalf("unexpected details: %#v", out)
	}
	execs := db.snapshot()
	if len(execs) != 1 {
		t.Fatalf("expected one update, got %d", len(execs))
	}
	if execs[0].args[0] != statusCompleted || execs[0].args[2] != int64(11) {
		t.Fatalf("unexpected update args: %#v", execs[0].args)
	}
	if !strings.Contains(string(execs[0].args[1].([]byte)), `"generated":2`) {
		t.Fatalf("unexpected details json: %s", execs[0].args[1])
	}
}

func TestRunNowRecordsFailure(t *testing.T) {
	db := &fakeDB{}
	svc := New(db)
	boom := errors.New("boom")

	_, err := svc.RunNow(context.Background(), "x", func(ctx context.Context) (any, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	execs := db.snapshot()
	if len(execs) != 1 || execs[0].args[0] != statusFailed {
		t.Fatalf("expected failed status, got %#v", execs)
	}
}

func TestScheduledJobRunsThroughWorker(t *testing.T) {
	db := &fakeDB{}
	svc := New(db)
	ran := make(chan time.Time, 1)
	svc.Every(JobPayrollMonthly, 5*time.Millisecond, func(now time.Time) RunFunc {
		return func(ctx context.Context) (any, error) {
			select {
			case ran <- now:
			default:
			}
			return nil, nil
		}
	})
	svc.Every("disabled", 0, nil)
	if len(svc.schedules) != 1 {
		t.Fatalf("expected zero interval to be ignored, got %d schedules", len(svc.schedules))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled job never ran")
	}
}

func TestRunNowReportsOutcome(t *testing.T) {
	svc := New(&fakeDB{})
	var gotType string
	var gotErr error
	svc.OnFinish = func(jobType string, err error) {
		gotType, gotErr = jobType, err
	}

	boom := errors.New("boom")
	if _, err := svc.RunNow(context.Background(), JobPayrollMonthly, func(ctx context.Context) (any, error) {
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if gotType != JobPayrollMonthly || !errors.Is(gotErr, boom) {
		t.Fatalf("unexpected hook call %q %v", gotType, gotErr)
	}
}
