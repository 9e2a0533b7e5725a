package testutil

import "testing"

func TestScenario(t *testing.T) {
	a, b := Scenario[float32]()
	if len(a) != ScenarioLen || len(b) != ScenarioLen {
		t.Fatalf("len = %d/%d, want %d", len(a), len(b), ScenarioLen)
	}
	for i := range a {
		if a[i] != float32(i) || b[i] != float32(i+1) {
			t.Fatalf("index %d: a=%v b=%v", i, a[i], b[i])
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise[float32](42, 1.0, 64)
	b := DeterministicNoise[float32](42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestReference(t *testing.T) {
	a, b := Scenario[float64]()
	got := Reference(a, b, Sub[float64])
	for i, v := range got {
		if v != -1 {
			t.Fatalf("got[%d] = %v, want -1", i, v)
		}
	}
}

func scalarAdd(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func TestCheckKernelAcceptsScalarLoop(t *testing.T) {
	CheckKernel(t, scalarAdd, Add[float32])
}

func TestSizeStr(t *testing.T) {
	tests := map[int]string{0: "0", 17: "17", 1024: "1K", 4096: "4K"}
	for n, want := range tests {
		if got := SizeStr(n); got != want {
			t.Errorf("SizeStr(%d) = %q, want %q", n, got, want)
		}
	}
}
