package dialog

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func TestConfirmAffirm(t *testing.T) {
	b := NewBroker()

	req, result, err := b.ShowConfirm("s1", "delete this product?", ConfirmOptions{Variant: VariantDanger})
	if err != nil {
		t.Fatalf("ShowConfirm error: %v", err)
	}

	if err := b.Resolve("s1", req.ID, true); err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	select {
	case decision := <-result:
		if !decision {
			t.Error("decision = false, want true")
		}
	case <-time.After(time.Second):
		t.Fatal("confirm handle never settled")
	}

	if b.Active("s1") != nil {
		t.Error("request still active after resolution")
	}
}

func TestCloseResolvesConfirmFalse(t *testing.T) {
	b := NewBroker()

	_, result, err := b.ShowConfirm("s1", "proceed?", ConfirmOptions{})
	if err != nil {
		t.Fatalf("ShowConfirm error: %v", err)
	}

	b.Close("s1")

	select {
	case decision := <-result:
		if decision {
			t.Error("decision = true after Close, want false")
		}
	case <-time.After(time.Second):
		t.Fatal("confirm handle never settled after Close")
	}
}

func TestSecondRequestRejected(t *testing.T) {
	b := NewBroker()

	req, result, err := b.ShowConfirm("s1", "first?", ConfirmOptions{})
	if err != nil {
		t.Fatalf("ShowConfirm error: %v", err)
	}

	if _, err := b.ShowAlert("s1", "second", VariantInfo); !errors.Is(err, ErrBusy) {
		t.Errorf("second alert error = %v, want ErrBusy", err)
	}
	if _, _, err := b.ShowConfirm("s1", "second?", ConfirmOptions{}); !errors.Is(err, ErrBusy) {
		t.Errorf("second confirm error = %v, want ErrBusy", err)
	}

	// The first request is untouched and still resolvable.
	if err := b.Resolve("s1", req.ID, true); err != nil {
		t.Fatalf("first request no longer resolvable: %v", err)
	}
	if decision := <-result; !decision {
		t.Error("first confirm lost its decision")
	}
}

func TestSessionsIsolated(t *testing.T) {
	b := NewBroker()

	if _, _, err := b.ShowConfirm("s1", "a?", ConfirmOptions{}); err != nil {
		t.Fatalf("s1 confirm error: %v", err)
	}
	if _, err := b.ShowAlert("s2", "b", VariantSuccess); err != nil {
		t.Errorf("s2 alert blocked by s1: %v", err)
	}
}

func TestAlertAcknowledge(t *testing.T) {
	b := NewBroker()

	req, err := b.ShowAlert("s1", "saved", VariantSuccess)
	if err != nil {
		t.Fatalf("ShowAlert error: %v", err)
	}
	if b.Active("s1") == nil {
		t.Fatal("alert not active")
	}

	if err := b.Resolve("s1", req.ID, false); err != nil {
		t.Fatalf("acknowledge error: %v", err)
	}
	if b.Active("s1") != nil {
		t.Error("alert still active after acknowledgement")
	}
}

func TestResolveErrors(t *testing.T) {
	b := NewBroker()

	if err := b.Resolve("s1", "whatever", true); !errors.Is(err, ErrNoActiveRequest) {
		t.Errorf("Resolve with nothing open = %v, want ErrNoActiveRequest", err)
	}

	req, _, _ := b.ShowConfirm("s1", "x?", ConfirmOptions{})
	if err := b.Resolve("s1", "stale-id", true); !errors.Is(err, ErrRequestMismatch) {
		t.Errorf("Resolve with stale id = %v, want ErrRequestMismatch", err)
	}
	_ = b.Resolve("s1", req.ID, false)
}

func TestCloseIdempotent(t *testing.T) {
	b := NewBroker()
	b.Close("s1") // nothing open

	_, result, _ := b.ShowConfirm("s1", "x?", ConfirmOptions{})
	b.Close("s1")
	b.Close("s1")

	if decision := <-result; decision {
		t.Error("decision = true, want false")
	}
	select {
	case extra := <-result:
		t.Errorf("handle settled twice, second value %v", extra)
	default:
	}
}

// Every confirm settles exactly once across randomized open/dismiss
// sequences.
func TestConfirmAlwaysSettles(t *testing.T) {
	b := NewBroker()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		req, result, err := b.ShowConfirm("s1", "randomized?", ConfirmOptions{})
		if err != nil {
			t.Fatalf("iteration %d: ShowConfirm error: %v", i, err)
		}

		var want bool
		switch rng.Intn(3) {
		case 0:
			want = true
			if err := b.Resolve("s1", req.ID, true); err != nil {
				t.Fatalf("iteration %d: Resolve error: %v", i, err)
			}
		case 1:
			want = false
			if err := b.Resolve("s1", req.ID, false); err != nil {
				t.Fatalf("iteration %d: Resolve error: %v", i, err)
			}
		case 2:
			want = false
			b.Close("s1")
		}

		select {
		case decision := <-result:
			if decision != want {
				t.Fatalf("iteration %d: decision = %v, want %v", i, decision, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("iteration %d: confirm never settled", i)
		}

		if b.Active("s1") != nil {
			t.Fatalf("iteration %d: slot not cleared", i)
		}
	}
}
