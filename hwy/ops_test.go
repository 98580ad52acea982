package hwy

import (
	"testing"
)

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(data)

	if v.NumLanes() == 0 {
		t.Error("Load created empty vector")
	}

	for i := 0; i < v.NumLanes() && i < len(data); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadN(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5}

	v := LoadN(data, 3)
	if v.NumLanes() != 3 {
		t.Fatalf("LoadN(data, 3): got %d lanes, want 3", v.NumLanes())
	}

	// Short source truncates the vector.
	v = LoadN(data[3:], 8)
	if v.NumLanes() != 2 {
		t.Fatalf("LoadN(short, 8): got %d lanes, want 2", v.NumLanes())
	}

	// The vector owns its data.
	v.Data()[0] = 100
	if data[3] != 4 {
		t.Errorf("LoadN aliased its source: data[3] = %d", data[3])
	}
}

func TestSet(t *testing.T) {
	v := Set[float32](42.0)

	if v.NumLanes() == 0 {
		t.Error("Set created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.data[i], 42.0)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()

	if v.NumLanes() == 0 {
		t.Error("Zero created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestAdd(t *testing.T) {
	a := Set[float32](10.0)
	b := Set[float32](5.0)
	result := Add(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 15.0 {
			t.Errorf("Add: lane %d: got %v, want 15.0", i, result.data[i])
		}
	}
}

func TestMul(t *testing.T) {
	a := Set[float32](4.0)
	b := Set[float32](5.0)
	result := Mul(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 20.0 {
			t.Errorf("Mul: lane %d: got %v, want 20.0", i, result.data[i])
		}
	}
}

func TestMulInt(t *testing.T) {
	a := LoadN([]int32{1, -2, 3, 4}, 4)
	b := LoadN([]int32{5, 6, -7, 8}, 4)
	want := []int32{5, -12, -21, 32}

	got := Mul(a, b).Data()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Mul: lane %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestReduceSum(t *testing.T) {
	data := []float32{1, 2, 3, 4}
	v := Load(data)
	sum := ReduceSum(v)

	// Sum should be at least the first MaxLanes elements
	expectedMin := float32(0)
	for i := 0; i < v.NumLanes() && i < len(data); i++ {
		expectedMin += data[i]
	}

	if sum < expectedMin-0.001 || sum > expectedMin+0.001 {
		t.Errorf("ReduceSum: got %v, want ~%v", sum, expectedMin)
	}
}

func TestStore(t *testing.T) {
	v := LoadN([]int64{7, 8, 9}, 3)
	dst := make([]int64, 2)
	Store(v, dst)
	if dst[0] != 7 || dst[1] != 8 {
		t.Errorf("Store into short dst: got %v, want [7 8]", dst)
	}

	dst = make([]int64, 4)
	v.Store(dst)
	if dst[2] != 9 || dst[3] != 0 {
		t.Errorf("Vec.Store: got %v, want [7 8 9 0]", dst)
	}
}

func TestDispatch(t *testing.T) {
	level := CurrentLevel()
	width := CurrentWidth()
	name := CurrentName()

	t.Logf("Dispatch level: %v (%s), width: %d bytes", level, name, width)

	if width <= 0 {
		t.Error("CurrentWidth should be positive")
	}

	if name == "" {
		t.Error("CurrentName should not be empty")
	}
}

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestMaxLanes(t *testing.T) {
	maxF32 := MaxLanes[float32]()
	maxF64 := MaxLanes[float64]()
	maxI32 := MaxLanes[int32]()

	t.Logf("MaxLanes: float32=%d, float64=%d, int32=%d", maxF32, maxF64, maxI32)

	if maxF32 <= 0 {
		t.Error("MaxLanes[float32] should be positive")
	}

	// float64 uses twice as much space, so should have half the lanes
	if maxF64*2 != maxF32 {
		t.Errorf("MaxLanes: expected float64 lanes (%d) to be half of float32 lanes (%d)", maxF64, maxF32)
	}

	if maxI32 != maxF32 {
		t.Errorf("MaxLanes: int32 lanes (%d) should equal float32 lanes (%d)", maxI32, maxF32)
	}
}

func TestSetWidthForTesting(t *testing.T) {
	restore := SetWidthForTesting(64)
	if got := MaxLanes[float64](); got != 8 {
		t.Errorf("MaxLanes[float64] at 64 bytes = %d, want 8", got)
	}
	restore()

	if got := MaxLanes[float64](); got != CurrentWidth()/8 {
		t.Errorf("MaxLanes[float64] after restore = %d, want %d", got, CurrentWidth()/8)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestWidthEnv(t *testing.T) {
	tests := []struct {
		val  string
		want int
	}{
		{"", 0},
		{"16", 16},
		{"32", 32},
		{"64", 64},
		{"24", 0},
		{"wide", 0},
	}
	for _, tt := range tests {
		t.Setenv("HWY_WIDTH", tt.val)
		if got := WidthEnv(); got != tt.want {
			t.Errorf("WidthEnv() with %q = %d, want %d", tt.val, got, tt.want)
		}
	}
}

func TestProcessWithTail(t *testing.T) {
	data := make([]float32, 100)
	for i := range data {
		data[i] = float32(i)
	}

	output := make([]float32, len(data))
	lanes := MaxLanes[float32]()

	fullVectors := 0
	visits := make([]int, len(data))

	ProcessWithTail(len(data), lanes,
		func(offset int) {
			fullVectors++
			v := LoadN(data[offset:], lanes)
			result := Add(v, v) // Double each value
			Store(result, output[offset:])
			for i := offset; i < offset+lanes; i++ {
				visits[i]++
			}
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				output[i] = data[i] + data[i]
				visits[i]++
			}
		},
	)

	if fullVectors != len(data)/lanes {
		t.Errorf("ProcessWithTail: %d full vectors, want %d", fullVectors, len(data)/lanes)
	}

	for i, val := range output {
		if expected := float32(i) * 2; val != expected {
			t.Errorf("ProcessWithTail: output[%d]: got %v, want %v", i, val, expected)
		}
		if visits[i] != 1 {
			t.Errorf("ProcessWithTail: index %d visited %d times", i, visits[i])
		}
	}
}

func TestProcessWithTailEdges(t *testing.T) {
	var full, tail []int

	record := func(size, lanes int) {
		full, tail = nil, nil
		ProcessWithTail(size, lanes,
			func(offset int) { full = append(full, offset) },
			func(offset, count int) { tail = append(tail, offset, count) },
		)
	}

	record(0, 4)
	if full != nil || tail != nil {
		t.Errorf("size 0: full=%v tail=%v, want no calls", full, tail)
	}

	record(3, 4)
	if len(full) != 0 || len(tail) != 2 || tail[0] != 0 || tail[1] != 3 {
		t.Errorf("size 3 lanes 4: full=%v tail=%v", full, tail)
	}

	record(8, 4)
	if len(full) != 2 || full[1] != 4 || tail != nil {
		t.Errorf("size 8 lanes 4: full=%v tail=%v", full, tail)
	}

	record(5, 0)
	if len(full) != 0 || len(tail) != 2 || tail[1] != 5 {
		t.Errorf("lanes 0: full=%v tail=%v", full, tail)
	}
}
