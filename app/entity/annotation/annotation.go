package annotation

import (
	"sort"

	"github.com/wasya-io/go-linewidth/app/entity/charwidth"
)

// Annotation は行内に挿入されるインライン仮想テキストを表す。
// Offsetは行テキスト内のバイトオフセットで、その文字の直前に表示される
type Annotation struct {
	Offset       int
	Text         string
	RightGravity bool // 基準桁上ではカーソルの右側に表示する
}

// Width は仮想テキストの表示セル幅を返す
func (a Annotation) Width() int {
	return charwidth.StringWidth(a.Text)
}

// Overlay は1行分の仮想テキストをオフセット順に保持する
type Overlay struct {
	anns []Annotation
}

// NewOverlay は仮想テキストの集合から新しいOverlayを作成する。
// 入力はコピーしてオフセット順にソートする
func NewOverlay(anns []Annotation) *Overlay {
	sorted := make([]Annotation, len(anns))
	copy(sorted, anns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return &Overlay{anns: sorted}
}

// IsEmpty は仮想テキストが1つもないかを返す
func (o *Overlay) IsEmpty() bool {
	return o == nil || len(o.anns) == 0
}

// Iter は行頭から走査するためのイテレータを返す
func (o *Overlay) Iter() Iter {
	if o == nil {
		return Iter{}
	}
	return Iter{anns: o.anns}
}

// Iter はOverlayを前方のみに走査するイテレータ。
// 1回の行走査の中で後戻りしない
type Iter struct {
	anns []Annotation
	idx  int
}

// TakeAt は指定オフセットちょうどに位置する仮想テキストを返し、
// イテレータをその先へ進める。それより手前の未消費要素は読み飛ばす
func (it *Iter) TakeAt(offset int) []Annotation {
	for it.idx < len(it.anns) && it.anns[it.idx].Offset < offset {
		it.idx++
	}
	start := it.idx
	for it.idx < len(it.anns) && it.anns[it.idx].Offset == offset {
		it.idx++
	}
	if start == it.idx {
		return nil
	}
	return it.anns[start:it.idx]
}
