package component

import (
	"context"
	"fmt"
	"testing"
)

// fakeComponent implements Component for testing.
type fakeComponent struct {
	name       string
	startErr   error
	stopErr    error
	health     Health
	startOrder *[]string
	stopOrder  *[]string
}

func (f *fakeComponent) Name() string { return f.name }

func (f *fakeComponent) Start(ctx context.Context) error {
	if f.startOrder != nil {
		*f.startOrder = append(*f.startOrder, f.name)
	}
	return f.startErr
}

func (f *fakeComponent) Stop(ctx context.Context) error {
	if f.stopOrder != nil {
		*f.stopOrder = append(*f.stopOrder, f.name)
	}
	return f.stopErr
}

func (f *fakeComponent) Health(ctx context.Context) Health { return f.health }

func TestNewRegistry(t *testing.T) {
	if NewRegistry(nil) == nil {
		t.Fatal("expected non-nil registry")
	}
}

func TestRegister(t *testing.T) {
	r := NewRegistry(nil)
	c := &fakeComponent{name: "wire", health: Health{Name: "wire", Status: StatusHealthy}}

	if err := r.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(&fakeComponent{name: "wire"})

	if err := r.Register(&fakeComponent{name: "wire"}); err == nil {
		t.Error("expected error for duplicate registration")
	}
}

func TestGet(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(&fakeComponent{name: "wire"})

	got := r.Get("wire")
	if got == nil {
		t.Fatal("expected to get registered component")
	}
	if got.Name() != "wire" {
		t.Errorf("expected 'wire', got %q", got.Name())
	}
}

func TestGetNotFound(t *testing.T) {
	r := NewRegistry(nil)
	if r.Get("missing") != nil {
		t.Error("expected nil for unregistered component")
	}
}

func TestStartAllOrder(t *testing.T) {
	r := NewRegistry(nil)
	order := []string{}

	r.Register(&fakeComponent{name: "trust", startOrder: &order})
	r.Register(&fakeComponent{name: "wire", startOrder: &order})

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	if len(order) != 2 || order[0] != "trust" || order[1] != "wire" {
		t.Errorf("expected start order [trust, wire], got %v", order)
	}
}

func TestStartAllError(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(&fakeComponent{name: "wire", startErr: fmt.Errorf("bundle unreadable")})

	if err := r.StartAll(context.Background()); err == nil {
		t.Error("expected error from StartAll")
	}
}

func TestStopAllReverseOrder(t *testing.T) {
	r := NewRegistry(nil)
	order := []string{}

	r.Register(&fakeComponent{name: "trust", stopOrder: &order})
	r.Register(&fakeComponent{name: "wire", stopOrder: &order})

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}
	if len(order) != 2 || order[0] != "wire" || order[1] != "trust" {
		t.Errorf("expected stop order [wire, trust], got %v", order)
	}
}

func TestStopAllSkipsUnstarted(t *testing.T) {
	r := NewRegistry(nil)
	order := []string{}

	r.Register(&fakeComponent{name: "wire", stopOrder: &order})

	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}
	if len(order) != 0 {
		t.Errorf("unstarted components should not be stopped, got %v", order)
	}
}

func TestStopAllCollectsErrors(t *testing.T) {
	r := NewRegistry(nil)
	order := []string{}

	r.Register(&fakeComponent{name: "trust", stopOrder: &order, stopErr: fmt.Errorf("boom")})
	r.Register(&fakeComponent{name: "wire", stopOrder: &order})

	r.StartAll(context.Background())
	err := r.StopAll(context.Background())
	if err == nil {
		t.Error("expected collected stop error")
	}
	if len(order) != 2 {
		t.Errorf("every started component should be stopped, got %v", order)
	}
}

func TestHealthAll(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(&fakeComponent{name: "trust", health: Health{Name: "trust", Status: StatusHealthy}})
	r.Register(&fakeComponent{name: "wire", health: Health{Name: "wire", Status: StatusDegraded, Message: "no bundle"}})

	healths := r.HealthAll(context.Background())
	if len(healths) != 2 {
		t.Fatalf("expected 2 health entries, got %d", len(healths))
	}
	if healths[1].Status != StatusDegraded {
		t.Errorf("expected degraded wire health, got %s", healths[1].Status)
	}
}

func TestAll(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(&fakeComponent{name: "trust"})
	r.Register(&fakeComponent{name: "wire"})

	all := r.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 components, got %d", len(all))
	}
	if all[0].Name() != "trust" || all[1].Name() != "wire" {
		t.Errorf("expected registration order preserved, got [%s, %s]", all[0].Name(), all[1].Name())
	}
}
