package idgen

import (
	"errors"
	"strings"
	"testing"
)

func never(string) (bool, error) { return false, nil }

func TestNewDeliveryID_Format(t *testing.T) {
	id, err := NewDeliveryID(never)
	if err != nil {
		t.Fatalf("NewDeliveryID() error = %v", err)
	}
	if !strings.HasPrefix(id, Prefix) {
		t.Errorf("id %q missing %q prefix", id, Prefix)
	}
	suffix := strings.TrimPrefix(id, Prefix)
	if len(suffix) != 8 {
		t.Errorf("suffix %q length = %d, want 8", suffix, len(suffix))
	}
	if strings.ContainsAny(id, "#/? %") {
		t.Errorf("id %q is not path safe", id)
	}
}

func TestNewDeliveryID_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		id, err := NewDeliveryID(never)
		if err != nil {
			t.Fatalf("NewDeliveryID() error = %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d mints", id, i)
		}
		seen[id] = true
	}
}

func TestNewDeliveryID_RetriesOnCollision(t *testing.T) {
	calls := 0
	taken := func(string) (bool, error) {
		calls++
		return calls <= 2, nil // first two candidates collide
	}
	id, err := NewDeliveryID(taken)
	if err != nil {
		t.Fatalf("NewDeliveryID() error = %v", err)
	}
	if calls != 3 {
		t.Errorf("taken called %d times, want 3", calls)
	}
	if id == "" {
		t.Error("expected an id after retries")
	}
}

func TestNewDeliveryID_Exhausted(t *testing.T) {
	always := func(string) (bool, error) { return true, nil }
	if _, err := NewDeliveryID(always); !errors.Is(err, ErrExhausted) {
		t.Errorf("error = %v, want ErrExhausted", err)
	}
}

func TestNewDeliveryID_StoreError(t *testing.T) {
	boom := errors.New("store down")
	fail := func(string) (bool, error) { return false, boom }
	if _, err := NewDeliveryID(fail); !errors.Is(err, boom) {
		t.Errorf("error = %v, want store error passed through", err)
	}
}
