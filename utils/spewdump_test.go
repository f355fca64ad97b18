package utils

import (
	"strings"
	"testing"
)

func TestSDump(t *testing.T) {
	out := SDump([3]float64{1, 2, 3})
	if strings.Contains(out, "cap=") {
		t.Errorf("capacities not disabled: %q", out)
	}
	if !strings.Contains(out, "(len=3)") {
		t.Errorf("unexpected dump %q", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("dump must be trimmed")
	}
}

func TestSValue(t *testing.T) {
	if out := SValue([]int{1, 2}); out != "[1 2]" {
		t.Errorf("SValue = %q", out)
	}
}
