package videoid

import (
	"math/rand"
	"strings"
	"testing"
)

func TestAlphabet(t *testing.T) {
	if len(Alphabet) != 56 {
		t.Fatalf("len(Alphabet) = %d, want 56", len(Alphabet))
	}

	seen := map[rune]bool{}
	for _, r := range Alphabet {
		if seen[r] {
			t.Errorf("duplicate character %q in alphabet", r)
		}
		seen[r] = true
	}

	for _, r := range "0O1lIo" {
		if strings.ContainsRune(Alphabet, r) {
			t.Errorf("ambiguous character %q in alphabet", r)
		}
	}
}

func TestGenerate(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := Generate()
		if len(id) != Length {
			t.Fatalf("Generate() = %q, want length %d", id, Length)
		}
		if !Valid(id) {
			t.Fatalf("Generate() = %q, contains character outside alphabet", id)
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := New(rand.New(rand.NewSource(42))).Generate()
	b := New(rand.New(rand.NewSource(42))).Generate()

	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}

type fixedSource []int

func (f *fixedSource) Intn(n int) int {
	v := (*f)[0] % n
	*f = append((*f)[1:], (*f)[0])
	return v
}

func TestGenerator_UsesSource(t *testing.T) {
	src := &fixedSource{0}
	if got := New(src).Generate(); got != "AAAAAAAAAAA" {
		t.Errorf("Generate() = %q, want %q", got, "AAAAAAAAAAA")
	}

	src = &fixedSource{55}
	if got := New(src).Generate(); got != "99999999999" {
		t.Errorf("Generate() = %q, want %q", got, "99999999999")
	}
}

func TestGenerate_Collisions(t *testing.T) {
	// 56^11 possible identifiers; a collision in 10k draws is practically impossible
	// but not forbidden, so allow a tiny margin instead of asserting none.
	seen := map[string]struct{}{}
	collisions := 0
	for i := 0; i < 10000; i++ {
		id := Generate()
		if _, ok := seen[id]; ok {
			collisions++
		}
		seen[id] = struct{}{}
	}

	if collisions > 1 {
		t.Errorf("got %d collisions in 10000 identifiers", collisions)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"generated shape", "AbCdEfGh234", true},
		{"too short", "AbCdEfGh23", false},
		{"too long", "AbCdEfGh2345", false},
		{"ambiguous zero", "AbCdEfGh230", false},
		{"lowercase l", "AbCdEfGhl34", false},
		{"dot", "AbCdEfGh.ts", false},
		{"slash", "AbCdE/Gh234", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.id); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
