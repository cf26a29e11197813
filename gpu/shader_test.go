package gpu

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/mixrgb/blend"
	"github.com/gogpu/mixrgb/shader"
)

// TestSourceContainsExpectedContent verifies the shader declares its
// bindings and entry point.
func TestSourceContainsExpectedContent(t *testing.T) {
	src := Source()
	required := []string{
		"@compute",
		"@workgroup_size(64)",
		"BlendParams",
		"var<uniform> params",
		"var<storage, read> base",
		"var<storage, read> layer",
		"var<storage, read_write> result",
		"fn to_hsv",
		"fn from_hsv",
		"HSV_EPSILON",
		fixedModeDecl,
	}
	for _, s := range required {
		if !strings.Contains(src, s) {
			t.Errorf("shader source missing %q", s)
		}
	}
}

// TestSourceModeConstants checks that every mode constant in the shader
// matches the host enumeration.
func TestSourceModeConstants(t *testing.T) {
	src := Source()
	for _, m := range blend.Modes() {
		name := strings.ToUpper(strings.ReplaceAll(shader.DisplayName(m), " ", "_"))
		decl := fmt.Sprintf("const MODE_%s: u32 = %du;", name, uint32(m))
		if !strings.Contains(src, decl) {
			t.Errorf("shader source missing %q", decl)
		}
		if !strings.Contains(src, fmt.Sprintf("case MODE_%s:", name)) {
			t.Errorf("shader switch has no case for MODE_%s", name)
		}
	}
}

func TestSpecializedSource(t *testing.T) {
	src, err := SpecializedSource(blend.Overlay)
	if err != nil {
		t.Fatalf("SpecializedSource() error: %v", err)
	}
	if !strings.Contains(src, "const FIXED_MODE: u32 = 4u;") {
		t.Error("specialized source does not fix the mode")
	}
	if strings.Contains(src, fixedModeDecl) {
		t.Error("specialized source still has the dynamic declaration")
	}

	if _, err := SpecializedSource(blend.Mode(18)); !errors.Is(err, blend.ErrInvalidMode) {
		t.Errorf("SpecializedSource(18) error = %v, want ErrInvalidMode", err)
	}
}

func TestNewParams(t *testing.T) {
	p, err := NewParams(blend.Color, 0.25, 1000)
	if err != nil {
		t.Fatalf("NewParams() error: %v", err)
	}
	if p.Mode != 15 || p.Factor != 0.25 || p.Count != 1000 {
		t.Errorf("NewParams() = %+v", p)
	}

	for _, m := range []blend.Mode{18, 200} {
		p, err := NewParams(m, 0.5, 4)
		if !errors.Is(err, blend.ErrInvalidMode) {
			t.Errorf("NewParams(%d) error = %v, want ErrInvalidMode", m, err)
		}
		if p != (Params{}) {
			t.Errorf("NewParams(%d) = %+v, want zero Params", m, p)
		}
	}
	if _, err := NewParams(blend.Mix, 0.5, -1); err == nil {
		t.Error("NewParams with a negative count should fail")
	}
}

func checkSPIRV(t *testing.T, code []uint32) {
	t.Helper()
	if len(code) == 0 {
		t.Fatal("SPIR-V output is empty")
	}
	if code[0] != 0x07230203 {
		t.Errorf("invalid SPIR-V magic: 0x%08X, want 0x07230203", code[0])
	}
}

// TestCompile tests that every specialization compiles to SPIR-V.
func TestCompile(t *testing.T) {
	for _, m := range blend.Modes() {
		t.Run(m.String(), func(t *testing.T) {
			code, err := Compile(m)
			if err != nil {
				skipNagaLimitation(t, err)
				t.Fatalf("Compile(%s) error: %v", m, err)
			}
			checkSPIRV(t, code)
		})
	}
}

// TestCompileDynamic tests the shader that switches on params.mode.
func TestCompileDynamic(t *testing.T) {
	code, err := CompileDynamic()
	if err != nil {
		skipNagaLimitation(t, err)
		t.Fatalf("CompileDynamic() error: %v", err)
	}
	checkSPIRV(t, code)
	t.Logf("dynamic blend shader compiled to %d words of SPIR-V", len(code))
}

func TestCompileInvalidMode(t *testing.T) {
	if _, err := Compile(blend.Mode(200)); !errors.Is(err, blend.ErrInvalidMode) {
		t.Errorf("Compile(200) error = %v, want ErrInvalidMode", err)
	}
}

func skipNagaLimitation(t *testing.T, err error) {
	t.Helper()
	msg := err.Error()
	if strings.Contains(msg, "not yet implemented") || strings.Contains(msg, "not supported") ||
		strings.Contains(msg, "lowering error") {
		t.Skipf("Skipping: naga feature not yet implemented: %v", err)
	}
}

// =============================================================================
// Cache
// =============================================================================

func fakeCompiler(calls *int, mu *sync.Mutex) func(blend.Mode) ([]uint32, error) {
	return func(m blend.Mode) ([]uint32, error) {
		mu.Lock()
		*calls++
		mu.Unlock()
		if m == blend.Burn {
			return nil, ErrCompile
		}
		return []uint32{0x07230203, uint32(m)}, nil
	}
}

func TestCache(t *testing.T) {
	var (
		calls int
		mu    sync.Mutex
	)
	c := NewCache(WithCacheSize(2))
	c.compile = fakeCompiler(&calls, &mu)

	for range 3 {
		code, err := c.Get(blend.Mix)
		if err != nil {
			t.Fatal(err)
		}
		if code[1] != uint32(blend.Mix) {
			t.Errorf("Get(mix) returned code for mode %d", code[1])
		}
	}
	if calls != 1 {
		t.Errorf("compiled %d times, want 1", calls)
	}

	_, _ = c.Get(blend.Add)
	_, _ = c.Get(blend.Hue)
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	// Mix was the least recently used entry and has been evicted.
	_, _ = c.Get(blend.Mix)
	if calls != 4 {
		t.Errorf("compiled %d times, want 4", calls)
	}

	if _, err := c.Get(blend.Burn); !errors.Is(err, ErrCompile) {
		t.Errorf("Get(burn) error = %v, want ErrCompile", err)
	}
	if _, err := c.Get(blend.Burn); err == nil {
		t.Error("failed compile was cached")
	}

	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len() after Purge = %d", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	var (
		calls int
		mu    sync.Mutex
	)
	c := NewCache()
	c.compile = fakeCompiler(&calls, &mu)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, m := range blend.Modes() {
				if m == blend.Burn {
					continue
				}
				if _, err := c.Get(m); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()

	if calls != 17 {
		t.Errorf("compiled %d times, want 17", calls)
	}
}
