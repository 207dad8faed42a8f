package reader

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LineReader は計測対象のテキストを行単位で読み取るインターフェース
type LineReader interface {
	ReadLines() ([]string, error)
}

// FileLineReader はファイルから行を読み取るLineReader
type FileLineReader struct {
	path string
}

// NewFileLineReader は新しいFileLineReaderを作成する
func NewFileLineReader(path string) *FileLineReader {
	return &FileLineReader{path: path}
}

// ReadLines はファイル全体を読み取り、改行コードを除いた行の並びを返す
func (r *FileLineReader) ReadLines() ([]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return []string{}, nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// StdinLineReader は標準入力から行を読み取るLineReader
type StdinLineReader struct{}

// NewStdinLineReader は新しいStdinLineReaderを作成する
func NewStdinLineReader() *StdinLineReader {
	return &StdinLineReader{}
}

// ReadLines は標準入力から読み取り、改行コードを除いた行の並びを返す
func (r *StdinLineReader) ReadLines() ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("input error: %w", err)
	}
	return lines, nil
}
