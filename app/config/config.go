package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/wasya-io/go-linewidth/app/usecase/layout"
)

const (
	defaultTabWidth = 8
)

// GetTabWidth はタブ幅を取得する
func GetTabWidth() int {
	if width := os.Getenv("TAB_WIDTH"); width != "" {
		if val, err := strconv.Atoi(width); err == nil && val > 0 {
			return val
		}
	}
	return defaultTabWidth
}

// Config は表示幅計算の設定を保持する構造体
type Config struct {
	TabWidth      int
	UseTabstop    bool
	WrapWidth     int // 1画面行のセル数（0なら折り返しなし）
	BreakIndent   bool
	ShowBreak     string // 折り返し行の先頭に表示する文字列
	AmbiguousWide bool
	DebugMode     bool
}

// LoadConfig は.envファイルから設定を読み込む
func LoadConfig() *Config {
	// .envファイルを読み込む
	godotenv.Load()

	config := &Config{
		TabWidth:      defaultTabWidth,
		UseTabstop:    true,
		WrapWidth:     0,
		BreakIndent:   false,
		ShowBreak:     "",
		AmbiguousWide: false,
		DebugMode:     false,
	}

	// TAB_WIDTHの環境変数を読み込む
	if tabWidth := os.Getenv("TAB_WIDTH"); tabWidth != "" {
		if width, err := strconv.Atoi(tabWidth); err == nil && width > 0 {
			config.TabWidth = width
		}
	}

	// USE_TABSTOP環境変数から設定を読み込む
	if useTabstop := os.Getenv("USE_TABSTOP"); useTabstop != "" {
		config.UseTabstop = useTabstop != "0" && useTabstop != "false"
	}

	// WRAP_WIDTH環境変数から設定を読み込む
	if wrapWidth := os.Getenv("WRAP_WIDTH"); wrapWidth != "" {
		if val, err := strconv.Atoi(wrapWidth); err == nil && val > 0 {
			config.WrapWidth = val
		}
	}

	// BREAK_INDENT環境変数から設定を読み込む
	if breakIndent := os.Getenv("BREAK_INDENT"); breakIndent != "" {
		config.BreakIndent = breakIndent == "true" || breakIndent == "1"
	}

	// SHOW_BREAK環境変数から設定を読み込む
	if showBreak := os.Getenv("SHOW_BREAK"); showBreak != "" {
		config.ShowBreak = showBreak
	}

	// AMBIGUOUS_WIDE環境変数から設定を読み込む
	if ambiguous := os.Getenv("AMBIGUOUS_WIDE"); ambiguous != "" {
		config.AmbiguousWide = ambiguous == "true" || ambiguous == "1"
	}

	// DEBUG環境変数から設定を読み込む
	if debug := os.Getenv("DEBUG"); debug != "" {
		config.DebugMode = debug == "true"
	}

	return config
}

// LayoutSettings は設定を文字幅計算用のSettingsに変換する
func (c *Config) LayoutSettings() layout.Settings {
	return layout.Settings{
		TabWidth:      c.TabWidth,
		UseTabstop:    c.UseTabstop,
		WrapWidth:     c.WrapWidth,
		BreakIndent:   c.BreakIndent,
		ShowBreak:     c.ShowBreak,
		AmbiguousWide: c.AmbiguousWide,
	}
}
