package runner

import "context"

// Action はジョブ本体の処理です
// 戻り値の bool は「期待する成果物が生成されたか」を表し、
// error は処理自体が実行できなかったことを表します
type Action func(ctx context.Context) (bool, error)

// Job は1つの独立した作業単位を表します
// 投入後は不変で、他のジョブと状態を共有しません
type Job struct {
	// Name はログ・レポートで使う識別名
	Name string
	// Action は実行する処理
	Action Action
}
