package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{"Pretty is valid", "pretty", false},
		{"CSV is valid", "csv", false},
		{"Empty is invalid", "", true},
		{"Unknown is invalid", "xml", true},
		{"Case sensitive", "Pretty", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateOutputFormat(%q) = nil, want error", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateOutputFormat(%q) = %v, want nil", tt.format, err)
			}
		})
	}
}
