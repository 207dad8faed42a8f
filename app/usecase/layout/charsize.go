package layout

import (
	"math"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/wasya-io/go-linewidth/app/entity/annotation"
	"github.com/wasya-io/go-linewidth/app/entity/charwidth"
	"github.com/wasya-io/go-linewidth/app/entity/textline"
)

// CSType は文字幅計算の方式を表す
type CSType int

const (
	// CharsizeRegular はタブ・全角文字・仮想テキストを考慮する通常の計算方式
	CharsizeRegular CSType = iota
	// CharsizeFast は全文字が1セル幅で確定している行向けの高速な計算方式
	CharsizeFast
)

// indentWidth が未計算であることを示す番兵値
const indentUnknown = math.MinInt

// CharSize は1文字が画面上で占めるセル数を表す
type CharSize struct {
	Width int // 先頭装飾を含めた合計セル数
	Head  int // Widthのうち折り返し装飾（showbreak/breakindent）が占めるセル数
}

// Settings はウィンドウの表示設定を保持する。
// 元のウィンドウ状態への参照を持たず、計算に必要な値だけを明示的に渡す
type Settings struct {
	TabWidth      int    // タブストップの間隔
	UseTabstop    bool   // falseの場合タブを制御文字表示（^I = 2セル）として扱う
	WrapWidth     int    // 1画面行のセル数（0なら折り返しなし）
	BreakIndent   bool   // 折り返し行に行頭インデントを引き継ぐ
	ShowBreak     string // 折り返し行の先頭に表示する文字列
	AmbiguousWide bool   // East Asian Ambiguousを全角として扱う
}

// wrapDecorActive は折り返し行の先頭装飾が有効かを返す
func (s Settings) wrapDecorActive() bool {
	return s.WrapWidth > 0 && (s.BreakIndent || s.ShowBreak != "")
}

// Context は1行分の文字幅計算に使う状態を保持する。
// 1つのContextは1回の行走査専用で、別の行や並行する計算で再利用してはならない
type Context struct {
	line     *textline.Line
	settings Settings

	indentWidth int // showbreak+breakindentのセル幅（indentUnknownなら未計算）

	VirtRow int // 仮想テキストを参照する行番号（-1なら仮想テキストなし）

	CurTextWidthLeft  int // 基準桁の左に表示される仮想テキストの幅
	CurTextWidthRight int // 基準桁の右に表示される仮想テキストの幅

	// MaxHeadVcol は折り返し装飾をHeadとして数える上限を制御する。
	// 正ならその桁の手前まで、負ならCursorVcolの手前まで、0なら常に数える
	MaxHeadVcol  int
	CursorVcol   int // MaxHeadVcolが負のときの基準桁
	CursorOffset int // 左右の仮想テキスト幅カウンタの基準バイトオフセット（-1なら無効）

	iter annotation.Iter
}

// NewContext は行の内容と表示設定を1回だけ調べて計算方式を決め、
// 行走査用のContextを作成する
func NewContext(settings Settings, row int, line *textline.Line, overlay *annotation.Overlay) (CSType, *Context) {
	ctx := &Context{
		line:         line,
		settings:     settings,
		indentWidth:  indentUnknown,
		VirtRow:      -1,
		CursorOffset: -1,
		iter:         overlay.Iter(),
	}
	if !overlay.IsEmpty() {
		ctx.VirtRow = row
	}
	if line.IsPlainASCII() && ctx.VirtRow < 0 && !settings.wrapDecorActive() {
		return CharsizeFast, ctx
	}
	return CharsizeRegular, ctx
}

// CharWidth はvcol桁目に置かれた1文字が占めるセル数を返す。
// offsetは行テキスト内のバイトオフセット、rはその位置の文字。
// CharsizeFastでは常に幅1・装飾なしを返す
func CharWidth(cstype CSType, vcol int, offset int, r rune, ctx *Context) CharSize {
	if cstype == CharsizeFast {
		return CharSize{Width: 1}
	}
	return ctx.regularCharWidth(vcol, offset, r)
}

// regularCharWidth はタブ・全角文字・仮想テキスト・折り返し装飾を
// すべて考慮した文字幅を計算する
func (ctx *Context) regularCharWidth(vcol, offset int, r rune) CharSize {
	var size int
	if r == '\t' && ctx.settings.UseTabstop {
		size = tabstopPadding(vcol, ctx.settings.TabWidth)
	} else {
		size = ctx.runeCells(r)
	}

	// インライン仮想テキストの幅を加算する
	if ctx.VirtRow >= 0 {
		for _, a := range ctx.iter.TakeAt(offset) {
			w := a.Width()
			size += w
			if ctx.CursorOffset >= 0 && offset == ctx.CursorOffset {
				if a.RightGravity {
					ctx.CurTextWidthRight += w
				} else {
					ctx.CurTextWidthLeft += w
				}
			}
		}
	}

	// 折り返し行の先頭装飾。この文字が画面行の先頭になる、
	// または行境界を跨ぐごとにインデント幅をHeadとして加える
	head := 0
	if ctx.settings.WrapWidth > 0 && size > 0 {
		iw := ctx.wrapIndentWidth()
		w1 := ctx.settings.WrapWidth
		if iw > 0 && iw < w1 {
			end := vcol + size
			b := vcol / w1 * w1
			if b < vcol || b == 0 {
				b += w1 // 先頭の画面行には装飾が付かない
			}
			for b == vcol || b < end {
				if !ctx.headAllowed(b) {
					break
				}
				head += iw
				end += iw
				b += w1
			}
		}
	}

	return CharSize{Width: size + head, Head: head}
}

// headAllowed はvcol桁の折り返し装飾をHeadとして数えてよいかを返す
func (ctx *Context) headAllowed(vcol int) bool {
	switch {
	case ctx.MaxHeadVcol > 0:
		return vcol < ctx.MaxHeadVcol
	case ctx.MaxHeadVcol < 0:
		return vcol < ctx.CursorVcol
	default:
		return true
	}
}

// runeCells は文字単体の表示セル数を返す。
// タブを含む制御文字は^X形式の2セル表示として扱う
func (ctx *Context) runeCells(r rune) int {
	if r < ' ' {
		return 2
	}
	return charwidth.RuneWidthAmbiguous(r, ctx.settings.AmbiguousWide)
}

// wrapIndentWidth は折り返し行の先頭装飾のセル幅を返す。
// 初回の呼び出しで計算し、以降はContext内に記憶した値を使う
func (ctx *Context) wrapIndentWidth() int {
	if ctx.indentWidth == indentUnknown {
		iw := charwidth.StringWidth(ctx.settings.ShowBreak)
		if ctx.settings.BreakIndent {
			iw += ctx.line.LeadingIndentWidth(ctx.settings.TabWidth)
		}
		ctx.indentWidth = iw
	}
	return ctx.indentWidth
}

// tabstopPadding はvcol桁から次のタブストップまでのセル数を返す
func tabstopPadding(vcol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	return tabWidth - vcol%tabWidth
}

// LineWidth は行のstartCol文字目からlength文字分の表示セル幅を合計する。
// lengthが負の場合は行末までを対象とする。
// タブ幅は桁位置に依存するため、走査自体は常に行頭から行う
func LineWidth(cstype CSType, ctx *Context, startCol, length int) int {
	remain := Max(ctx.line.RuneCount()-startCol, 0)
	if length < 0 {
		length = remain
	}
	length = Min(length, remain)
	if cstype == CharsizeFast {
		// 全文字が1セル幅なので文字数がそのまま表示幅になる
		return length
	}

	text := ctx.line.Text()
	vcol := 0
	total := 0
	col := 0
	counted := 0
	for offset := 0; offset < len(text) && counted < length; {
		r, n := utf8.DecodeRuneInString(text[offset:])
		cs := ctx.regularCharWidth(vcol, offset, r)
		vcol += cs.Width
		if col >= startCol {
			total += cs.Width
			counted++
		}
		col++
		offset += n
	}
	return total
}

// WindowLineWidth は表示設定に従って行全体の表示セル幅を返す。
// lengthが負の場合は行末までを対象とする
func WindowLineWidth(settings Settings, row int, line *textline.Line, overlay *annotation.Overlay, length int) int {
	cstype, ctx := NewContext(settings, row, line, overlay)
	return LineWidth(cstype, ctx, 0, length)
}

// StringCellWidth は文字列単体の表示セル幅を返す。
// タブは指定幅のタブストップで展開し、それ以外は書記素クラスタ単位で数える
func StringCellWidth(s string, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	vcol := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if g.Str() == "\t" {
			vcol += tabWidth - vcol%tabWidth
			continue
		}
		vcol += charwidth.StringWidth(g.Str())
	}
	return vcol
}
