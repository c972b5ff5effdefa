package domain

import "testing"

func TestIsOwner_Match(t *testing.T) {
	u := &User{UID: "abc123"}
	p := &Post{UID: "p1", Owner: Owner{UID: "abc123"}}

	if !IsOwner(u, p) {
		t.Fatalf("expected owner match to be allowed")
	}
}

func TestIsOwner_Mismatch(t *testing.T) {
	u := &User{UID: "abc123"}
	c := &Comment{UID: "c1", Owner: Owner{UID: "someone-else"}}

	if IsOwner(u, c) {
		t.Fatalf("expected mismatch to be denied")
	}
}

func TestIsOwner_AbsentOwner(t *testing.T) {
	u := &User{UID: "abc123"}
	p := &Post{UID: "p1"}

	if IsOwner(u, p) {
		t.Fatalf("a resource without a recorded owner must deny everyone")
	}
}

func TestIsOwner_NilPrincipal(t *testing.T) {
	p := &Post{UID: "p1", Owner: Owner{UID: "abc123"}}

	if IsOwner(nil, p) {
		t.Fatalf("nil principal must be denied")
	}
}
