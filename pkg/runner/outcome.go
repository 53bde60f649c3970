package runner

import (
	"time"

	"github.com/google/uuid"
)

// OutcomeKind はジョブの終了種別を表します
type OutcomeKind string

const (
	// OutcomeSuccess はアクションが true を返した（成果物が生成された）
	OutcomeSuccess OutcomeKind = "success"
	// OutcomeFailure はアクションが false を返した（期待する成果物が無い）
	OutcomeFailure OutcomeKind = "failure"
	// OutcomeError はアクションがエラーを返した（実行自体に失敗した）
	OutcomeError OutcomeKind = "error"
)

// JobOutcome は1つのジョブの終了結果を表します
// ジョブ1件につき必ず1回だけ記録されます
type JobOutcome struct {
	JobName  string        `json:"jobName"`
	Kind     OutcomeKind   `json:"kind"`
	Detail   string        `json:"detail,omitempty"` // エラー詳細（OutcomeError時）
	Duration time.Duration `json:"duration"`
}

// RunReport は1バッチ分の全ジョブ結果を表します
// Outcomes は完了順（投入順ではない）に並びます
type RunReport struct {
	RunID    uuid.UUID     `json:"runID"`
	Outcomes []JobOutcome  `json:"outcomes"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Len は記録された結果の件数を返します
func (r *RunReport) Len() int {
	return len(r.Outcomes)
}

// Succeeded は成功したジョブ数を返します
func (r *RunReport) Succeeded() int {
	count := 0
	for _, o := range r.Outcomes {
		if o.Kind == OutcomeSuccess {
			count++
		}
	}
	return count
}

// Failed は成功しなかったジョブ名の一覧を完了順で返します
func (r *RunReport) Failed() []string {
	var names []string
	for _, o := range r.Outcomes {
		if o.Kind != OutcomeSuccess {
			names = append(names, o.JobName)
		}
	}
	return names
}

// Outcome はジョブ名に対応する結果を返します
func (r *RunReport) Outcome(name string) (JobOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.JobName == name {
			return o, true
		}
	}
	return JobOutcome{}, false
}
