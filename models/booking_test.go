package models

import "testing"

func TestCanTransition(t *testing.T) {
	if !CanTransition(StatusRequested, StatusConfirmed) {
		t.Fatal("expected REQUESTED -> CONFIRMED to be allowed")
	}
	if !CanTransition(StatusRequested, StatusCancelled) {
		t.Fatal("expected REQUESTED -> CANCELLED to be allowed")
	}
	if !CanTransition(StatusConfirmed, StatusInProgress) {
		t.Fatal("expected CONFIRMED -> IN_PROGRESS to be allowed")
	}
	if !CanTransition(StatusInProgress, StatusCompleted) {
		t.Fatal("expected IN_PROGRESS -> COMPLETED to be allowed")
	}
	if CanTransition(StatusRequested, StatusInProgress) {
		t.Fatal("unexpected transition REQUESTED -> IN_PROGRESS allowed")
	}
	if CanTransition(StatusInProgress, StatusCancelled) {
		t.Fatal("unexpected transition IN_PROGRESS -> CANCELLED allowed")
	}
	if CanTransition(StatusCompleted, StatusCancelled) {
		t.Fatal("COMPLETED must be terminal")
	}
	if CanTransition(StatusCancelled, StatusRequested) {
		t.Fatal("CANCELLED must be terminal")
	}
}

func TestCounterpart(t *testing.T) {
	b := Booking{ParentID: "p1", NannyID: "n1"}

	if got := b.CounterpartID(RoleParent); got != "n1" {
		t.Fatalf("expected parent view counterpart n1, got %s", got)
	}
	if got := b.CounterpartID(RoleNanny); got != "p1" {
		t.Fatalf("expected nanny view counterpart p1, got %s", got)
	}
}
