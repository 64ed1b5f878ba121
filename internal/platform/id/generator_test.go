package id

import "testing"

func TestRandomGenerator_NewID(t *testing.T) {
	gen := NewRandomGenerator(0)
	seen := make(map[string]struct{}, 64)
	for i := 0; i < 64; i++ {
		token, err := gen.NewID()
		if err != nil {
			t.Fatalf("NewID error: %v", err)
		}
		if len(token) != defaultTokenBytes*2 {
			t.Fatalf("unexpected token length %d", len(token))
		}
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token %s", token)
		}
		seen[token] = struct{}{}
	}
}
