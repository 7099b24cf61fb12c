package keygen

import (
	"strings"
	"testing"
)

func TestGenerate_Length(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(key) != KeyLength {
		t.Errorf("expected key length %d, got %d", KeyLength, len(key))
	}
}

func TestGenerate_Alphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		key, err := Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, c := range key {
			if !strings.ContainsRune(alphabet, c) {
				t.Fatalf("key %q contains character %q outside [A-Za-z0-9]", key, c)
			}
		}
	}
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		key, err := Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[key] {
			t.Fatalf("duplicate key generated: %s", key)
		}
		seen[key] = true
	}
}

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Generate()
	}
}
