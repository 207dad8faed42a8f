package measure

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/wasya-io/go-linewidth/app/boundary/logger"
	mock_reader "github.com/wasya-io/go-linewidth/app/boundary/reader/mock"
	mock_writer "github.com/wasya-io/go-linewidth/app/boundary/writer/mock"
	"github.com/wasya-io/go-linewidth/app/usecase/layout"
)

func testSettings() layout.Settings {
	return layout.Settings{
		TabWidth:   8,
		UseTabstop: true,
	}
}

func TestService_Run(t *testing.T) {
	// モックコントローラーの作成
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := mock_reader.NewMockLineReader(ctrl)
	mockWriter := mock_writer.NewMockReportWriter(ctrl)

	// 2行の入力に対して行ごとの結果2回と合計1回の出力を期待する
	mockReader.EXPECT().ReadLines().Return([]string{"ab", "あ"}, nil)
	mockWriter.EXPECT().Write(gomock.Any()).Return(nil).Times(3)

	service := NewService(testSettings(), mockReader, mockWriter, logger.New(false))
	if err := service.Run(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestService_Run_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := mock_reader.NewMockLineReader(ctrl)
	mockWriter := mock_writer.NewMockReportWriter(ctrl)

	// 読み取りに失敗した場合は何も出力せずエラーを返す
	readErr := errors.New("boom")
	mockReader.EXPECT().ReadLines().Return(nil, readErr)

	service := NewService(testSettings(), mockReader, mockWriter, logger.New(false))
	if err := service.Run(); !errors.Is(err, readErr) {
		t.Errorf("expected wrapped read error, got %v", err)
	}
}

func TestService_Run_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := mock_reader.NewMockLineReader(ctrl)
	mockWriter := mock_writer.NewMockReportWriter(ctrl)

	mockReader.EXPECT().ReadLines().Return([]string{"ab"}, nil)
	writeErr := errors.New("closed")
	mockWriter.EXPECT().Write(gomock.Any()).Return(writeErr)

	service := NewService(testSettings(), mockReader, mockWriter, logger.New(false))
	if err := service.Run(); !errors.Is(err, writeErr) {
		t.Errorf("expected wrapped write error, got %v", err)
	}
}

func TestService_MeasureLine(t *testing.T) {
	service := NewService(testSettings(), nil, nil, logger.New(false))

	// タブ込みの幅: a(1) + タブ(7) + b(1) = 9セル
	result := service.MeasureLine(0, "a\tb")
	if result.Width != 9 {
		t.Errorf("expected width 9, got %d", result.Width)
	}
	if result.Rows != 1 { // 折り返しなしなら常に1画面行
		t.Errorf("expected 1 row, got %d", result.Rows)
	}
}

func TestService_MeasureLine_Wrapped(t *testing.T) {
	settings := testSettings()
	settings.WrapWidth = 10
	service := NewService(settings, nil, nil, logger.New(false))

	// 25セルは10セルの画面行3行に折り返される
	result := service.MeasureLine(0, "aaaaaaaaaaaaaaaaaaaaaaaaa")
	if result.Width != 25 {
		t.Errorf("expected width 25, got %d", result.Width)
	}
	if result.Rows != 3 {
		t.Errorf("expected 3 rows, got %d", result.Rows)
	}
}
