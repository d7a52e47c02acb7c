package health

import (
	"context"
	"errors"
	"testing"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockPinger{})

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("expected %s, got %s", Healthy, report.Status)
	}
	if report.Checks["database"] != CheckOK {
		t.Errorf("expected database ok, got %s", report.Checks["database"])
	}
}

func TestCheck_Degraded(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("connection refused")})

	report := svc.Check(context.Background())
	if report.Status != Degraded {
		t.Errorf("expected %s, got %s", Degraded, report.Status)
	}
	if report.Checks["database"] != CheckError {
		t.Errorf("expected database error, got %s", report.Checks["database"])
	}
}
