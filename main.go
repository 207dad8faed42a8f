package main

import (
	"fmt"
	"os"

	"github.com/wasya-io/go-linewidth/app/boundary/logger"
	"github.com/wasya-io/go-linewidth/app/boundary/reader"
	"github.com/wasya-io/go-linewidth/app/boundary/writer"
	"github.com/wasya-io/go-linewidth/app/config"
	"github.com/wasya-io/go-linewidth/app/usecase/measure"
)

func main() {
	// 設定の読み込み
	cfg := config.LoadConfig()
	settings := cfg.LayoutSettings()

	// WRAP_WIDTH未指定で端末に接続されている場合は端末幅で折り返す
	if settings.WrapWidth == 0 && isTerminal() {
		if _, cols, err := getWindowSize(); err == nil {
			settings.WrapWidth = cols
		}
	}

	// 入力ソースの選択（引数があればファイル、なければ標準入力）
	var lineReader reader.LineReader
	if len(os.Args) > 1 {
		lineReader = reader.NewFileLineReader(os.Args[1])
	} else {
		lineReader = reader.NewStdinLineReader()
	}

	log := logger.New(cfg.DebugMode)
	defer log.Flush()

	service := measure.NewService(settings, lineReader, writer.NewStandardReportWriter(), log)
	if err := service.Run(); err != nil {
		die(err)
	}
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
