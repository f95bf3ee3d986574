package xliff

import (
	"errors"
	"testing"
)

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(sampleDocument(Version12))
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	if len(a) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(a))
	}

	b, _ := Fingerprint(sampleDocument(Version20))
	if a != b {
		t.Error("version should not affect the fingerprint")
	}

	changed := sampleDocument(Version12)
	changed.Files[0].Units[0].Target = String("Servus")
	c, _ := Fingerprint(changed)
	if a == c {
		t.Error("changing a target should change the fingerprint")
	}

	if _, err := Fingerprint(nil); err != nil {
		t.Errorf("Fingerprint(nil) failed: %v", err)
	}
}

// TestFingerprintMarshalError verifies marshal failures are returned.
func TestFingerprintMarshalError(t *testing.T) {
	orig := jsonMarshal
	defer func() { jsonMarshal = orig }()
	jsonMarshal = func(any) ([]byte, error) { return nil, errors.New("marshal failed") }

	if _, err := Fingerprint(sampleDocument(Version12)); err == nil {
		t.Error("Fingerprint should return the marshal error")
	}
}
