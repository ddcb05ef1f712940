package modes

import "testing"

func TestModeString(t *testing.T) {
	if s := ModeProduction.String(); s != "production" {
		t.Fatalf("got %v", s)
	}
	if s := ModeDevelopment.String(); s != "development" {
		t.Fatalf("got %v", s)
	}
	if s := Mode(0).String(); s != "unknown" {
		t.Fatalf("got %v", s)
	}
}
