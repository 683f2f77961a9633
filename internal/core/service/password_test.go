package service

import "testing"

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher()

	for _, plain := range []string{"1234", "s3cret!", "한글비밀번호", ""} {
		hash, err := h.Hash(plain)
		if err != nil {
			t.Fatalf("Hash(%q) returned error: %v", plain, err)
		}
		if hash == plain {
			t.Fatalf("hash must not equal plaintext")
		}

		ok, err := h.Verify(plain, hash)
		if err != nil {
			t.Fatalf("Verify returned error: %v", err)
		}
		if !ok {
			t.Fatalf("Verify(%q, hash) = false, want true", plain)
		}
	}
}

func TestPasswordHasher_VerifyMismatch(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("correct")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	ok, err := h.Verify("wrong", hash)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got %v", err)
	}
	if ok {
		t.Fatalf("Verify with wrong password = true, want false")
	}
}

func TestPasswordHasher_VerifyMalformedHash(t *testing.T) {
	h := NewPasswordHasher()

	ok, err := h.Verify("anything", "not-a-bcrypt-hash")
	if err == nil {
		t.Fatalf("expected error for malformed stored hash")
	}
	if ok {
		t.Fatalf("malformed hash must never verify")
	}
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewPasswordHasher()

	h1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (salt)")
	}
}
