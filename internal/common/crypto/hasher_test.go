package crypto

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := &BcryptHasher{}

	hash, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pw1" {
		t.Fatalf("hash must not equal the plaintext")
	}

	if err := h.Compare(hash, "pw1"); err != nil {
		t.Errorf("expected matching password to compare, got %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Errorf("expected mismatching password to fail")
	}
}

// Salted hashing never reproduces the same output for the same input.
func TestBcryptHasher_Salted(t *testing.T) {
	h := &BcryptHasher{}

	first, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct salted hashes")
	}
}
