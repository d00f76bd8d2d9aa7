package mangler_test

import (
	"testing"

	"github.com/oneapi-go/spirv-ll/mangler"
)

func TestMangleScalarBuiltin(t *testing.T) {
	m := mangler.New()
	got := m.Mangle("fmod", []mangler.ArgType{mangler.Float(32), mangler.Float(32)})
	want := "_Z4fmodff"
	if got != want {
		t.Fatalf("Mangle(fmod, f, f) = %q, want %q", got, want)
	}
}

func TestMangleVectorBuiltin(t *testing.T) {
	m := mangler.New()
	got := m.Mangle("sin", []mangler.ArgType{mangler.Vector(mangler.KindFloat, 32, 4)})
	want := "_Z3sinDv4_f"
	if got != want {
		t.Fatalf("Mangle(sin, float4) = %q, want %q", got, want)
	}
}

func TestMangleVoidBuiltin(t *testing.T) {
	m := mangler.New()
	got := m.Mangle("barrier", nil)
	want := "_Z7barrierv"
	if got != want {
		t.Fatalf("Mangle(barrier) = %q, want %q", got, want)
	}
}

func TestManglePointerBuiltin(t *testing.T) {
	m := mangler.New()
	global := mangler.Pointer(mangler.Int(32, true), mangler.AddressSpaceGlobal, false, false)
	got := m.Mangle("atomic_add", []mangler.ArgType{global, mangler.Int(32, true)})
	want := "_Z10atomic_addPU3AS1ii"
	if got != want {
		t.Fatalf("Mangle(atomic_add, global int*, int) = %q, want %q", got, want)
	}
}

func TestMangleIsDeterministic(t *testing.T) {
	m := mangler.New()
	args := []mangler.ArgType{mangler.Float(32), mangler.Int(32, false)}
	first := m.Mangle("clamp", args)
	second := m.Mangle("clamp", args)
	if first != second {
		t.Fatalf("Mangle is not deterministic: %q != %q", first, second)
	}
}

func TestMangleDistinguishesSignedness(t *testing.T) {
	m := mangler.New()
	signed := m.Mangle("convert", []mangler.ArgType{mangler.Int(32, true)})
	unsigned := m.Mangle("convert", []mangler.ArgType{mangler.Int(32, false)})
	if signed == unsigned {
		t.Fatalf("signed and unsigned int arguments mangled identically: %q", signed)
	}
}
