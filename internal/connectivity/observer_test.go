package connectivity

import "testing"

func TestObserverInitialState(t *testing.T) {
	if !New(true).IsOnline() {
		t.Fatalf("expected online")
	}
	if New(false).IsOnline() {
		t.Fatalf("expected offline")
	}
}

func TestObserverTransitions(t *testing.T) {
	obs := New(true)
	obs.Set(false)
	if obs.IsOnline() {
		t.Fatalf("expected offline after transition")
	}
	obs.Set(true)
	if !obs.IsOnline() {
		t.Fatalf("expected online after transition")
	}
}
