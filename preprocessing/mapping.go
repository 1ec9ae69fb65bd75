package preprocessing

import (
	"sort"
)

// rankMapping は1特徴量分の学習済み単調写像
// Values と Positions は同じ長さの平行スライスで、どちらも狭義単調増加
// Positions の全要素は開区間 (-1, 1) に収まる
type rankMapping struct {
	// Values は学習データに出現した値（重複除去済み、昇順）
	Values []float64

	// Positions は各値に割り当てられたランク位置
	Positions []float64
}

// fitRankMapping は1列分の学習データからランク写像を構築する
//
// 値を昇順にソートし、重複する値は1エントリに集約する。集約時のランクは
// 重複区間の平均ランク（midrank）を使用する。ランク r（0始まり、全n行）は
//
//	position = -1 + 2*(r+0.5)/n
//
// で (-1, 1) の一様間隔に変換される。n ≥ 1 である限り ±1 ちょうどには
// 到達しない（逆誤差関数は ±1 で発散するため、この除外が不変条件）。
// 全値が同一の列は (値, 0) の1点のみを持つ縮退写像になる。
//
// 入力スライスは変更されない。
func fitRankMapping(col []float64) rankMapping {
	n := len(col)

	sorted := make([]float64, n)
	copy(sorted, col)
	sort.Float64s(sorted)

	values := make([]float64, 0, n)
	positions := make([]float64, 0, n)

	for i := 0; i < n; {
		j := i
		for j < n && sorted[j] == sorted[i] {
			j++
		}
		// 重複区間 [i, j) の平均ランク
		midrank := float64(i+j-1) / 2.0
		values = append(values, sorted[i])
		positions = append(positions, -1.0+2.0*(midrank+0.5)/float64(n))
		i = j
	}

	return rankMapping{Values: values, Positions: positions}
}

// degenerate は学習データが単一の値しか持たなかったかどうかを返す
func (m rankMapping) degenerate() bool {
	return len(m.Values) == 1
}

// position は値 v に対応するランク位置を返す（値空間 → 位置空間）
// 学習範囲外の値は最近傍の境界位置にフラットクリップされるため、
// 戻り値は常に (-1, 1) の内側に収まる
func (m rankMapping) position(v float64) float64 {
	return interpolate(m.Values, m.Positions, v)
}

// value はランク位置 p に対応する近似的な元の値を返す（位置空間 → 値空間）
// クリップ方針は position と鏡像で、学習時の位置範囲外はフラットクリップされる
func (m rankMapping) value(p float64) float64 {
	return interpolate(m.Positions, m.Values, p)
}

// interpolate は平行スライス (xs, ys) が定義する区分線形単調関数を評価する
// xs は狭義単調増加であること。範囲外の x は境界の y にフラットクリップされる
func interpolate(xs, ys []float64, x float64) float64 {
	last := len(xs) - 1
	if last == 0 || x <= xs[0] {
		return ys[0]
	}
	if x >= xs[last] {
		return ys[last]
	}

	// xs[i-1] < x <= xs[i] となる i を二分探索で求める
	i := sort.SearchFloat64s(xs, x)
	if xs[i] == x {
		return ys[i]
	}

	t := (x - xs[i-1]) / (xs[i] - xs[i-1])
	return ys[i-1] + t*(ys[i]-ys[i-1])
}
