package config

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mrosell/deskgate/common"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.MinimizeToTray {
		t.Error("Default().MinimizeToTray = false, want true")
	}
	if !cfg.ShowTray {
		t.Error("Default().ShowTray = false, want true")
	}
	if cfg.Theme != common.ThemeAuto {
		t.Errorf("Default().Theme = %q, want %q", cfg.Theme, common.ThemeAuto)
	}
}

func TestConfig_ValidateTheme(t *testing.T) {
	tests := []struct {
		name  string
		theme string
		want  string
	}{
		{"auto is kept", common.ThemeAuto, common.ThemeAuto},
		{"light is kept", common.ThemeLight, common.ThemeLight},
		{"dark is kept", common.ThemeDark, common.ThemeDark},
		{"unknown falls back", "solarized", common.ThemeAuto},
		{"empty falls back", "", common.ThemeAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Theme: tt.theme}
			cfg.validate()
			if cfg.Theme != tt.want {
				t.Errorf("validate() left Theme = %q, want %q", cfg.Theme, tt.want)
			}
		})
	}
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	original := &Config{
		MinimizeToTray: false,
		ShowTray:       true,
		Theme:          common.ThemeDark,
	}

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded Config
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded != *original {
		t.Errorf("round trip = %+v, want %+v", decoded, *original)
	}
}

func TestConfig_StrictDecoderRejectsUnknownFields(t *testing.T) {
	// Load() decodes with KnownFields(true); mirror that here.
	input := "theme: dark\nunknown_setting: true\n"

	decoder := yaml.NewDecoder(strings.NewReader(input))
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err == nil {
		t.Error("strict decode should reject unknown fields")
	}
}
