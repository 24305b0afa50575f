package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Display.ChartWidth != 60 {
		t.Errorf("Display.ChartWidth = %d, want 60", cfg.Display.ChartWidth)
	}
	if cfg.Display.ChartHeight != 8 {
		t.Errorf("Display.ChartHeight = %d, want 8", cfg.Display.ChartHeight)
	}
	if cfg.Display.PageSize != 15 {
		t.Errorf("Display.PageSize = %d, want 15", cfg.Display.PageSize)
	}

	// Database path defaults to empty, resolved by the store
	if cfg.Database.Path != "" {
		t.Errorf("Database.Path should be empty, got %q", cfg.Database.Path)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errContains string
	}{
		{
			name:        "zero config is valid",
			config:      Config{},
			expectError: false,
		},
		{
			name:        "defaults are valid",
			config:      DefaultConfig(),
			expectError: false,
		},
		{
			name: "negative chart width",
			config: Config{
				Display: DisplayConfig{ChartWidth: -1},
			},
			expectError: true,
			errContains: "chart_width",
		},
		{
			name: "negative page size",
			config: Config{
				Display: DisplayConfig{PageSize: -5},
			},
			expectError: true,
			errContains: "page_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				if err == nil {
					t.Fatal("Validate() error = nil, want error")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Validate() error = %q, want substring %q", err, tt.errContains)
				}
			} else if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}
