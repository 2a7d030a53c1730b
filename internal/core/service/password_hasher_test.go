package service

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher()

	digest, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "pw123456" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !h.Verify("pw123456", digest) {
		t.Fatalf("expected digest to verify against original password")
	}
	if h.Verify("wrong-password", digest) {
		t.Fatalf("expected verification to fail for wrong password")
	}
}

func TestBcryptHasher_FreshSaltPerHash(t *testing.T) {
	h := NewBcryptHasher()

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must differ (fresh salt)")
	}
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher()

	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$garbage"} {
		if h.Verify("anything", digest) {
			t.Fatalf("malformed digest %q must verify false", digest)
		}
	}
}
