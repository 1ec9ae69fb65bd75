// Package metrics は分布形状の診断指標を提供する
package metrics

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/gaussrank/pkg/errors"
)

// Skewness は標本歪度（3次標準化モーメント、補正付き）を計算する
// 正規分布に従うデータでは0に近い値になる
func Skewness(x mat.Vector) (float64, error) {
	values, err := vectorValues("Skewness", x)
	if err != nil {
		return 0, err
	}
	return stat.Skew(values, nil), nil
}

// ExcessKurtosis は標本超過尖度（4次標準化モーメント - 3、補正付き）を計算する
// 正規分布に従うデータでは0に近い値になる
func ExcessKurtosis(x mat.Vector) (float64, error) {
	values, err := vectorValues("ExcessKurtosis", x)
	if err != nil {
		return 0, err
	}
	return stat.ExKurtosis(values, nil), nil
}

// JarqueBera はJarque-Bera正規性検定の統計量を計算する
//
//	JB = n/6 * (S² + K²/4)
//
// Sは歪度、Kは超過尖度。データが正規分布に近いほど0に近づき、
// 帰無仮説（正規分布）の下では自由度2のカイ二乗分布に漸近的に従う
func JarqueBera(x mat.Vector) (float64, error) {
	values, err := vectorValues("JarqueBera", x)
	if err != nil {
		return 0, err
	}

	n := float64(len(values))
	s := stat.Skew(values, nil)
	k := stat.ExKurtosis(values, nil)
	return n / 6.0 * (s*s + k*k/4.0), nil
}

// vectorValues はベクトルを検証してスライスに展開する
// モーメント推定には最低4サンプル必要
func vectorValues(op string, x mat.Vector) ([]float64, error) {
	n := x.Len()
	if n == 0 {
		return nil, errors.NewValueError(op, "empty vector")
	}
	if n < 4 {
		return nil, errors.NewValueError(op, "at least 4 samples are required for moment estimates")
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = x.AtVec(i)
	}
	if err := errors.CheckFinite(op, 0, values); err != nil {
		return nil, err
	}
	return values, nil
}
