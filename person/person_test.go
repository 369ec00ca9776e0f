package person

import "testing"

func TestNew(t *testing.T) {
	p, err := New("Claire")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if p.Name != "Claire" {
		t.Errorf("Expected name Claire, got %s", p.Name)
	}
	if p.IsZero() {
		t.Error("Constructed person should not be zero")
	}
}

func TestNew_EmptyName(t *testing.T) {
	_, err := New("")
	if err != ErrMissingName {
		t.Errorf("Expected ErrMissingName, got %v", err)
	}
}

func TestIsZero(t *testing.T) {
	var p Person
	if !p.IsZero() {
		t.Error("Zero-value person should report IsZero")
	}
}
