package textline

import (
	"github.com/wasya-io/go-linewidth/app/entity/charwidth"
)

// Line は1行のテキストと文字位置情報を保持する。
// 生成後は不変で、複数の計算から読み取り専用で参照できる
type Line struct {
	text    string
	offsets []int // 各文字のバイトオフセット（長さは文字数+1）
}

// New は新しいLine構造体を作成する
func New(text string) *Line {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	return &Line{
		text:    text,
		offsets: offsets,
	}
}

// Text は行の内容を文字列として返す
func (l *Line) Text() string {
	return l.text
}

// RuneCount は行の文字数を返す
func (l *Line) RuneCount() int {
	return len(l.offsets) - 1
}

// ByteOffset は指定された文字位置のバイトオフセットを返す。
// 文字数以上の位置を指定した場合は行末のオフセットを返す
func (l *Line) ByteOffset(col int) int {
	if col < 0 {
		return 0
	}
	if col >= len(l.offsets) {
		return len(l.text)
	}
	return l.offsets[col]
}

// LeadingIndentWidth は行頭の空白（スペースとタブ）のセル幅を返す。
// breakindentで折り返し行に引き継ぐインデント量の計算に使う
func (l *Line) LeadingIndentWidth(tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	indent := 0
	for _, r := range l.text {
		switch r {
		case ' ':
			indent++
		case '\t':
			indent += tabWidth - indent%tabWidth // 次のタブストップまで進める
		default:
			return indent
		}
	}
	return indent
}

// IsPlainASCII は行がタブを含まない印字可能ASCII文字のみで
// 構成されているかを返す。trueなら全文字が1セル幅で確定する
func (l *Line) IsPlainASCII() bool {
	for i := 0; i < len(l.text); i++ {
		if l.text[i] < ' ' || l.text[i] > '~' {
			return false
		}
	}
	return true
}

// CellWidth は行全体の表示セル幅を返す（タブ・装飾を考慮しない素の幅）
func (l *Line) CellWidth() int {
	return charwidth.StringWidth(l.text)
}
