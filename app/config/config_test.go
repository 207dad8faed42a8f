package config

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	if cfg.TabWidth != 8 {
		t.Errorf("expected tab width 8, got %d", cfg.TabWidth)
	}
	if !cfg.UseTabstop {
		t.Error("expected UseTabstop true by default")
	}
	if cfg.WrapWidth != 0 {
		t.Errorf("expected wrap width 0, got %d", cfg.WrapWidth)
	}
	if cfg.BreakIndent || cfg.AmbiguousWide || cfg.DebugMode {
		t.Error("expected flags false by default")
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("TAB_WIDTH", "4")
	t.Setenv("USE_TABSTOP", "false")
	t.Setenv("WRAP_WIDTH", "80")
	t.Setenv("BREAK_INDENT", "true")
	t.Setenv("SHOW_BREAK", "> ")
	t.Setenv("AMBIGUOUS_WIDE", "1")
	t.Setenv("DEBUG", "true")

	cfg := LoadConfig()
	if cfg.TabWidth != 4 {
		t.Errorf("expected tab width 4, got %d", cfg.TabWidth)
	}
	if cfg.UseTabstop {
		t.Error("expected UseTabstop false")
	}
	if cfg.WrapWidth != 80 {
		t.Errorf("expected wrap width 80, got %d", cfg.WrapWidth)
	}
	if !cfg.BreakIndent {
		t.Error("expected BreakIndent true")
	}
	if cfg.ShowBreak != "> " {
		t.Errorf("expected show break %q, got %q", "> ", cfg.ShowBreak)
	}
	if !cfg.AmbiguousWide {
		t.Error("expected AmbiguousWide true")
	}
	if !cfg.DebugMode {
		t.Error("expected DebugMode true")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	// 不正な値はデフォルトのまま
	t.Setenv("TAB_WIDTH", "zero")
	t.Setenv("WRAP_WIDTH", "-1")

	cfg := LoadConfig()
	if cfg.TabWidth != 8 {
		t.Errorf("expected tab width 8, got %d", cfg.TabWidth)
	}
	if cfg.WrapWidth != 0 {
		t.Errorf("expected wrap width 0, got %d", cfg.WrapWidth)
	}
}

func TestGetTabWidth(t *testing.T) {
	if w := GetTabWidth(); w != 8 {
		t.Errorf("expected 8, got %d", w)
	}
	t.Setenv("TAB_WIDTH", "2")
	if w := GetTabWidth(); w != 2 {
		t.Errorf("expected 2, got %d", w)
	}
}

func TestLayoutSettings(t *testing.T) {
	cfg := &Config{
		TabWidth:    4,
		UseTabstop:  true,
		WrapWidth:   40,
		BreakIndent: true,
		ShowBreak:   ">",
	}
	settings := cfg.LayoutSettings()
	if settings.TabWidth != 4 || settings.WrapWidth != 40 || !settings.BreakIndent || settings.ShowBreak != ">" {
		t.Errorf("unexpected settings: %+v", settings)
	}
}
