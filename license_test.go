package lifeadmin

import "testing"

func TestValidLicenseKey(t *testing.T) {
	valid := []string{"DEMO", "ABCD-1234-EFGH-5678", "0000-0000-0000-0000"}
	for _, key := range valid {
		if !ValidLicenseKey(key) {
			t.Errorf("ValidLicenseKey(%q) = false, want true", key)
		}
	}
	invalid := []string{
		"", "demo", "abcd-1234-efgh-5678",
		"ABCD-1234-EFGH", "ABCD1234EFGH5678", "ABCD-1234-EFGH-5678 ",
		"ABC!-1234-EFGH-5678",
	}
	for _, key := range invalid {
		if ValidLicenseKey(key) {
			t.Errorf("ValidLicenseKey(%q) = true, want false", key)
		}
	}
}
