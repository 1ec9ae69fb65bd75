package model

// BaseEstimator は全ての変換器・推定器の基底となる構造体
// 学習状態（fitted / not fitted）の管理のみを担当する
type BaseEstimator struct {
	fitted bool
}

// IsFitted はFitが完了しているかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.fitted
}

// SetFitted は学習済み状態に設定する
// Fitの最後で呼び出すこと
func (e *BaseEstimator) SetFitted() {
	e.fitted = true
}

// Reset は未学習状態に戻す
func (e *BaseEstimator) Reset() {
	e.fitted = false
}
