package writer

import (
	"os"
)

// ReportWriter は計測結果の出力先を表すインターフェース
type ReportWriter interface {
	Write(s string) error
}

// StandardReportWriter は標準出力に書き出すReportWriter
type StandardReportWriter struct {
}

// NewStandardReportWriter は新しいStandardReportWriterを作成する
func NewStandardReportWriter() *StandardReportWriter {
	return &StandardReportWriter{}
}

func (w *StandardReportWriter) Write(s string) error {
	_, err := os.Stdout.Write([]byte(s))
	return err
}
