// Package preprocessing はテーブルデータの前処理変換器を提供する
package preprocessing

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gaussrank/core/model"
	"github.com/YuminosukeSato/gaussrank/core/parallel"
	"github.com/YuminosukeSato/gaussrank/pkg/errors"
	"github.com/YuminosukeSato/gaussrank/pkg/log"
)

// 列数がこの値を超えた場合のみ列単位の並列処理を行う
const parallelColumnThreshold = 8

var _ model.InverseTransformer = (*GaussRankScaler)(nil)

// GaussRankScaler は特徴量ごとのランクベース正規化変換器（RankGauss）
// 各特徴量を経験分布のランクに基づいて近似的な正規分布へ変換する
//
// 変換は3段階からなる:
//  1. Fit時に各列の値を昇順ランクへ変換し、(-1, 1) の一様間隔に配置する
//  2. Transform時に学習済みの (値, 位置) 対を区分線形補間して位置を求める
//     学習範囲外の値は最近傍の境界位置にフラットクリップされる
//  3. 位置に逆誤差関数 erfinv を適用してガウス形状へ整形する
//
// 出力のスケールは erfinv そのまま（√2倍しない）であり、標準正規分布の
// 1/√2 倍の標準偏差を持つ近似正規分布となる。
//
// 列の識別は位置（列インデックス）で行い、Fit時の列順がTransform時にも
// そのまま適用される。Fit後の内部状態は読み取り専用であり、複数goroutine
// からの同時Transformは安全。FitとTransformの並行実行は呼び出し側で
// 直列化すること。
type GaussRankScaler struct {
	model.BaseEstimator

	// NFeatures は学習した特徴量の数
	NFeatures int

	// NSamples は学習に使用したサンプル数
	NSamples int

	mappings []rankMapping
}

// NewGaussRankScaler は新しいGaussRankScalerを作成する
//
// 使用例:
//
//	scaler := preprocessing.NewGaussRankScaler()
//	err := scaler.Fit(X)
//	XScaled, err := scaler.Transform(X)
func NewGaussRankScaler() *GaussRankScaler {
	return &GaussRankScaler{}
}

// Fit は訓練データから各特徴量のランク写像を構築する
//
// 各列を独立に処理する: 値を昇順ソートし、重複値を平均ランクで1エントリに
// 集約した上で、ランクを (-1, 1) の一様間隔に変換して保持する。
// 再Fitは以前の状態を完全に置き換える。入力行列は変更されない。
//
// 単一の値しか持たない列は有効な入力として受理され（Transformは常に0を
// 返す）、ConstantFeatureWarningが警告ハンドラ経由で通知される。
//
// エラー:
//   - 空の行列（0行または0列）: ModelError (ErrEmptyData)
//   - NaN/±Inf を含む入力: NonFiniteError
func (s *GaussRankScaler) Fit(X mat.Matrix) error {
	start := time.Now()

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("GaussRankScaler.Fit", "empty data", errors.ErrEmptyData)
	}
	if err := errors.CheckFiniteMatrix("GaussRankScaler.Fit", X, r, c); err != nil {
		return err
	}

	mappings := make([]rankMapping, c)
	parallel.ColumnsWithThreshold(c, parallelColumnThreshold, func(j int) {
		mappings[j] = fitRankMapping(mat.Col(nil, j, X))
	})

	// 警告は列順を保つため並列区間の外で出す
	for j, m := range mappings {
		if m.degenerate() {
			errors.Warn(errors.NewConstantFeatureWarning(j, m.Values[0], r))
		}
	}

	s.mappings = mappings
	s.NFeatures = c
	s.NSamples = r
	s.SetFitted()

	logger := log.GetLoggerWithName("preprocessing")
	logger.Debug().
		Str(log.ModelNameKey, "GaussRankScaler").
		Str(log.OperationKey, "fit").
		Int(log.SamplesKey, r).
		Int(log.FeaturesKey, c).
		Int64(log.DurationMsKey, time.Since(start).Milliseconds()).
		Msg("fitted rank mappings")

	return nil
}

// Transform は学習済みのランク写像でデータをガウス形状へ変換する
//
// 入力はFit時と同じ列数・同じ列順であること。各値は学習済みの
// (値, 位置) 対の区分線形補間で位置に変換され、学習範囲外の値は境界位置に
// フラットクリップされた後、erfinvでガウス形状に整形される。位置は常に
// (-1, 1) の内側に収まるため、出力は必ず有限値になる。
//
// 入力行列と内部状態は変更されない（純粋な変換）。
//
// エラー:
//   - Fit未実行: NotFittedError
//   - 列数不一致: DimensionError
//   - NaN/±Inf を含む入力: NonFiniteError
func (s *GaussRankScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("GaussRankScaler", "Transform")
	}

	_, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("GaussRankScaler.Transform", s.NFeatures, c, 1)
	}

	return s.transform("GaussRankScaler.Transform", X, allColumns(s.NFeatures))
}

// TransformColumns は学習済み特徴量の部分集合だけを変換する
//
// Xのk番目の列は、Fit時の列インデックス cols[k] の特徴量として解釈される。
// 列数の少ないテーブルを既存の学習結果で変換する場合に使用する。
//
// エラー:
//   - Fit未実行: NotFittedError
//   - Xの列数と len(cols) の不一致: DimensionError
//   - 範囲外または重複した列インデックス: ValidationError
func (s *GaussRankScaler) TransformColumns(X mat.Matrix, cols []int) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("GaussRankScaler", "TransformColumns")
	}
	if err := s.checkColumns("TransformColumns", X, cols); err != nil {
		return nil, err
	}

	return s.transform("GaussRankScaler.TransformColumns", X, cols)
}

// InverseTransform は変換済みデータから近似的な元の値を復元する
//
// 各値に誤差関数 erf を適用して (-1, 1) の位置に戻し、学習済みの
// (位置, 値) 対を逆方向に区分線形補間する。位置はFit時の範囲に
// フラットクリップされる（Transformと鏡像の方針）。
//
// 復元は近似である: Fit時に重複値が1エントリに集約されること、および
// 補間とクリップが非可逆であることから、ビット一致の逆変換にはならない。
// Fit時に存在した値については小さな数値誤差の範囲で復元される。
//
// エラー条件はTransformと同じ。
func (s *GaussRankScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("GaussRankScaler", "InverseTransform")
	}

	_, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("GaussRankScaler.InverseTransform", s.NFeatures, c, 1)
	}

	return s.inverseTransform("GaussRankScaler.InverseTransform", X, allColumns(s.NFeatures))
}

// InverseTransformColumns は学習済み特徴量の部分集合だけを逆変換する
// 列の解釈とエラー条件はTransformColumnsと同じ
func (s *GaussRankScaler) InverseTransformColumns(X mat.Matrix, cols []int) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("GaussRankScaler", "InverseTransformColumns")
	}
	if err := s.checkColumns("InverseTransformColumns", X, cols); err != nil {
		return nil, err
	}

	return s.inverseTransform("GaussRankScaler.InverseTransformColumns", X, cols)
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (s *GaussRankScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// FeatureMapping は列 feature の学習済み (値, 位置) 対のコピーを返す
// 検査・デバッグ用途
func (s *GaussRankScaler) FeatureMapping(feature int) (values, positions []float64, err error) {
	if !s.IsFitted() {
		return nil, nil, errors.NewNotFittedError("GaussRankScaler", "FeatureMapping")
	}
	if feature < 0 || feature >= s.NFeatures {
		return nil, nil, errors.NewValidationError("feature", "fitted feature index out of range", feature)
	}

	m := s.mappings[feature]
	values = append([]float64(nil), m.Values...)
	positions = append([]float64(nil), m.Positions...)
	return values, positions, nil
}

// transform は cols で指定された学習済み写像を使ってXを変換する
func (s *GaussRankScaler) transform(op string, X mat.Matrix, cols []int) (mat.Matrix, error) {
	r, c := X.Dims()
	if err := errors.CheckFiniteMatrix(op, X, r, c); err != nil {
		return nil, err
	}

	result := mat.NewDense(r, c, nil)
	parallel.ColumnsWithThreshold(c, parallelColumnThreshold, func(k int) {
		m := s.mappings[cols[k]]
		for i := 0; i < r; i++ {
			result.Set(i, k, math.Erfinv(m.position(X.At(i, k))))
		}
	})

	return result, nil
}

// inverseTransform は cols で指定された学習済み写像を逆方向に適用する
func (s *GaussRankScaler) inverseTransform(op string, X mat.Matrix, cols []int) (mat.Matrix, error) {
	r, c := X.Dims()
	if err := errors.CheckFiniteMatrix(op, X, r, c); err != nil {
		return nil, err
	}

	result := mat.NewDense(r, c, nil)
	parallel.ColumnsWithThreshold(c, parallelColumnThreshold, func(k int) {
		m := s.mappings[cols[k]]
		for i := 0; i < r; i++ {
			result.Set(i, k, m.value(math.Erf(X.At(i, k))))
		}
	})

	return result, nil
}

// checkColumns は部分変換の列指定を検証する
func (s *GaussRankScaler) checkColumns(op string, X mat.Matrix, cols []int) error {
	_, c := X.Dims()
	if c != len(cols) {
		return errors.NewDimensionError("GaussRankScaler."+op, len(cols), c, 1)
	}
	if len(cols) == 0 {
		return errors.NewValidationError("cols", "must not be empty", cols)
	}

	seen := make(map[int]bool, len(cols))
	for _, j := range cols {
		if j < 0 || j >= s.NFeatures {
			return errors.NewValidationError("cols", "fitted feature index out of range", j)
		}
		if seen[j] {
			return errors.NewValidationError("cols", "duplicate feature index", j)
		}
		seen[j] = true
	}
	return nil
}

func allColumns(n int) []int {
	cols := make([]int, n)
	for j := range cols {
		cols[j] = j
	}
	return cols
}

// GetParams は変換器のパラメータを取得する
// RankGauss変換に調整可能なハイパーパラメータはなく、補間・クリップ方針を
// 情報として返す
func (s *GaussRankScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"interpolation": "linear",
		"extrapolation": "clip",
	}
}

// String は変換器の文字列表現を返す
func (s *GaussRankScaler) String() string {
	if !s.IsFitted() {
		return "GaussRankScaler()"
	}
	return fmt.Sprintf("GaussRankScaler(n_features=%d, n_samples=%d)", s.NFeatures, s.NSamples)
}
