package component

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type mockComponent struct {
	name     string
	startErr error
	stopErr  error
	health   Health
	order    *[]string
}

func (m *mockComponent) Name() string { return m.name }
func (m *mockComponent) Start(_ context.Context) error {
	if m.order != nil {
		*m.order = append(*m.order, "start:"+m.name)
	}
	return m.startErr
}
func (m *mockComponent) Stop(_ context.Context) error {
	if m.order != nil {
		*m.order = append(*m.order, "stop:"+m.name)
	}
	return m.stopErr
}
func (m *mockComponent) Health(_ context.Context) Health { return m.health }

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.Register(&mockComponent{name: "http"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register(&mockComponent{name: "http"}); err == nil {
		t.Error("expected error for duplicate registration")
	}
	if r.Get("http") == nil || r.Get("missing") != nil {
		t.Error("Get returned the wrong component")
	}
}

func TestStartStopOrder(t *testing.T) {
	var order []string
	r := NewRegistry(nil)
	for _, n := range []string{"a", "b", "c"} {
		_ = r.Register(&mockComponent{name: n, order: &order})
	}

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatal(err)
	}

	want := "start:a,start:b,start:c,stop:c,stop:b,stop:a"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestStartAllErrorSkipsStop(t *testing.T) {
	var order []string
	r := NewRegistry(nil)
	_ = r.Register(&mockComponent{name: "a", order: &order})
	_ = r.Register(&mockComponent{name: "b", order: &order, startErr: errors.New("boom")})
	_ = r.Register(&mockComponent{name: "c", order: &order})

	err := r.StartAll(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to start b") {
		t.Fatalf("unexpected error %v", err)
	}

	order = nil
	_ = r.StopAll(context.Background())
	if strings.Join(order, ",") != "stop:a" {
		t.Errorf("only started components should stop, got %v", order)
	}
}

func TestStopAllJoinsErrors(t *testing.T) {
	stopErr := errors.New("stuck")
	r := NewRegistry(nil)
	_ = r.Register(&mockComponent{name: "a", stopErr: stopErr})
	_ = r.Register(&mockComponent{name: "b", stopErr: stopErr})
	_ = r.StartAll(context.Background())

	err := r.StopAll(context.Background())
	if !errors.Is(err, stopErr) {
		t.Fatalf("expected joined stop error, got %v", err)
	}
	if strings.Count(err.Error(), "stuck") != 2 {
		t.Errorf("expected both failures, got %q", err.Error())
	}
}

func TestHealthAll(t *testing.T) {
	r := NewRegistry(nil)
	_ = r.Register(&mockComponent{name: "a", health: Health{Name: "a", Status: StatusHealthy}})
	_ = r.Register(&mockComponent{name: "b", health: Health{Name: "b", Status: StatusUnhealthy}})

	hs := r.HealthAll(context.Background())
	if len(hs) != 2 || hs[0].Status != StatusHealthy || hs[1].Status != StatusUnhealthy {
		t.Errorf("unexpected health %+v", hs)
	}
}
