package security

import (
	"strings"
	"testing"

	"github.com/shiftlinehq/shiftline-backend/pkg/config"
)

func testPasswordConfig() config.PasswordConfig {
	// Small parameters keep the test fast.
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("hunter2", testPasswordConfig())
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash format: %s", encoded)
	}

	ok, err := VerifyPassword("hunter2", encoded)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("expected password to verify")
	}

	ok, err = VerifyPassword("hunter3", encoded)
	if err != nil {
		t.Fatalf("verify wrong password: %v", err)
	}
	if ok {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword("", testPasswordConfig()); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("hunter2", "$bcrypt$nonsense"); err != ErrInvalidHash {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
}

func TestHashesAreSalted(t *testing.T) {
	cfg := testPasswordConfig()
	first, err := HashPassword("hunter2", cfg)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPassword("hunter2", cfg)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct salts to produce distinct hashes")
	}
}
