package strategy

import (
	"testing"

	"github.com/gridsweep/gridsweep/internal/robot"
)

func TestNewFactory(t *testing.T) {
	tests := []struct {
		kind     Kind
		wantName string
	}{
		{KindSweep, "sweep"},
		{KindRandomWalk, "random"},
		{KindSpiral, "spiral"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s, err := New(tt.kind, Options{})
			if err != nil {
				t.Fatalf("New(%q) = %v", tt.kind, err)
			}
			if s.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.wantName)
			}
		})
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New(Kind("mop"), Options{}); err == nil {
		t.Error("New with unknown kind should fail")
	}
}

func TestKindsCoverFactory(t *testing.T) {
	for _, k := range Kinds() {
		if _, err := New(k, Options{}); err != nil {
			t.Errorf("Kinds() lists %q but New rejects it: %v", k, err)
		}
	}
}

var _ robot.Strategy = Sweep{}
var _ robot.Strategy = Spiral{}
var _ robot.Strategy = (*RandomWalk)(nil)
