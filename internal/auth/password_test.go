package auth

import "testing"

func TestHashPassword_SaltedAndVerifiable(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("Secret123!", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("Secret123!", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("expected distinct hashes for the same input, got identical")
	}
	if !VerifyPassword(h1, "Secret123!") {
		t.Fatalf("first hash did not verify")
	}
	if !VerifyPassword(h2, "Secret123!") {
		t.Fatalf("second hash did not verify")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("Secret123!", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if VerifyPassword(h, "wrong") {
		t.Fatalf("wrong password verified")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if VerifyPassword("not-a-bcrypt-hash", "anything") {
		t.Fatalf("malformed hash verified")
	}
	if VerifyPassword("", "anything") {
		t.Fatalf("empty hash verified")
	}
}
