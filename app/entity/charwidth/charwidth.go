package charwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/width"
)

// RuneWidth は1文字の表示セル幅を返す。
// 結合文字やゼロ幅文字は0、全角文字は2、それ以外は1となる
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// RuneWidthAmbiguous はEast Asian Ambiguousの扱いを指定して表示セル幅を返す。
// ambiguousWideがtrueの場合、曖昧幅の文字（§やαなど）を全角として扱う
func RuneWidthAmbiguous(r rune, ambiguousWide bool) int {
	if ambiguousWide {
		p := width.LookupRune(r)
		if p.Kind() == width.EastAsianAmbiguous {
			return 2
		}
	}
	return runewidth.RuneWidth(r)
}

// StringWidth は文字列の表示セル幅を返す。
// 書記素クラスタ単位で数え、各クラスタは最初の非ゼロ幅ルーンの幅を採用する
func StringWidth(s string) int {
	total := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := 0
		for _, r := range g.Runes() {
			w = runewidth.RuneWidth(r)
			if w > 0 {
				break
			}
		}
		total += w
	}
	return total
}
