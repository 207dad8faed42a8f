package measure

import (
	"fmt"

	"github.com/wasya-io/go-linewidth/app/boundary/logger"
	"github.com/wasya-io/go-linewidth/app/boundary/reader"
	"github.com/wasya-io/go-linewidth/app/boundary/writer"
	"github.com/wasya-io/go-linewidth/app/entity/textline"
	"github.com/wasya-io/go-linewidth/app/usecase/layout"
)

// Service はテキストを行単位で読み取り、表示セル幅を計測して出力する
type Service struct {
	settings layout.Settings
	reader   reader.LineReader
	writer   writer.ReportWriter
	logger   *logger.Logger
}

// NewService は新しいServiceを作成する
func NewService(settings layout.Settings, r reader.LineReader, w writer.ReportWriter, l *logger.Logger) *Service {
	return &Service{
		settings: settings,
		reader:   r,
		writer:   w,
		logger:   l,
	}
}

// Result は1行分の計測結果を表す
type Result struct {
	Row   int // 0始まりの行番号
	Width int // 表示セル幅（折り返し装飾を含む）
	Rows  int // 折り返しを考慮した画面行数
}

// Run は入力の全行を計測し、1行ごとの結果と合計をレポートに書き出す
func (s *Service) Run() error {
	lines, err := s.reader.ReadLines()
	if err != nil {
		return fmt.Errorf("measure: %w", err)
	}

	total := 0
	maxWidth := 0
	for i, text := range lines {
		result := s.MeasureLine(i, text)
		if err := s.writer.Write(fmt.Sprintf("%6d\t%6d\t%4d\n", result.Row+1, result.Width, result.Rows)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		s.logger.LogMeasure(result.Row, result.Width, text)

		total += result.Width
		if result.Width > maxWidth {
			maxWidth = result.Width
		}
	}

	if err := s.writer.Write(fmt.Sprintf("total\t%6d\tmax\t%6d\n", total, maxWidth)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	s.logger.Flush()
	return nil
}

// MeasureLine は1行分の表示セル幅と画面行数を計測する
func (s *Service) MeasureLine(row int, text string) Result {
	line := textline.New(text)
	width := layout.WindowLineWidth(s.settings, row, line, nil, -1)
	return Result{
		Row:   row,
		Width: width,
		Rows:  s.screenRows(width),
	}
}

// screenRows は折り返しを考慮した画面行数を返す。
// 幅には折り返し装飾が含まれるため、単純にWrapWidthで割り上げればよい
func (s *Service) screenRows(width int) int {
	if s.settings.WrapWidth <= 0 || width <= s.settings.WrapWidth {
		return 1
	}
	return (width + s.settings.WrapWidth - 1) / s.settings.WrapWidth
}
