package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty DataDir returns ErrDataDirEmpty",
			config:  Config{DataDir: ""},
			wantErr: ErrDataDirEmpty,
		},
		{
			name:    "valid config",
			config:  Config{DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "seeding flag does not affect validity",
			config:  Config{DataDir: "/tmp/data", SeedCategories: true},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
