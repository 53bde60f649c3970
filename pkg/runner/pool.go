package runner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultConcurrency はワーカープールの既定の同時実行数
const DefaultConcurrency = 4

// Pool は固定サイズのワーカープールでジョブを並列実行します
// 一部のジョブが失敗しても、残りのジョブは継続されます
type Pool struct {
	concurrency int
	logger      *slog.Logger
}

// NewPool は新しいPoolを作成します
// concurrency が0以下の場合はデフォルト値を使用します
func NewPool(concurrency int, logger *slog.Logger) *Pool {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Pool{
		concurrency: concurrency,
		logger:      logger,
	}
}

// Run は全ジョブをワーカープールに投入し、すべてが終了するまで待機して
// RunReport を返します。同時に実行されるジョブは concurrency 件を超えません。
// 各ジョブの結果は完了した時点で即座にログ出力・記録されます（完了順）。
// contextがキャンセルされた場合、未開始のジョブは OutcomeError として記録されます
func (p *Pool) Run(ctx context.Context, jobs []Job) *RunReport {
	report := &RunReport{
		RunID:    uuid.New(),
		Outcomes: make([]JobOutcome, 0, len(jobs)),
	}
	if len(jobs) == 0 {
		return report
	}

	startTime := time.Now()

	// 結果は完了順に追加する
	var mu sync.Mutex
	record := func(o JobOutcome) {
		mu.Lock()
		report.Outcomes = append(report.Outcomes, o)
		mu.Unlock()

		switch o.Kind {
		case OutcomeSuccess:
			p.logger.Info("ジョブ成功",
				slog.String("job", o.JobName),
				slog.Duration("duration", o.Duration),
			)
		case OutcomeFailure:
			p.logger.Error("ジョブ失敗（期待する出力が生成されていない）",
				slog.String("job", o.JobName),
				slog.Duration("duration", o.Duration),
			)
		case OutcomeError:
			p.logger.Error("ジョブエラー",
				slog.String("job", o.JobName),
				slog.String("detail", o.Detail),
				slog.Duration("duration", o.Duration),
			)
		}
	}

	// ワーカープールで並列実行
	semaphore := make(chan struct{}, p.concurrency)
	var wg sync.WaitGroup

	for _, job := range jobs {
		wg.Add(1)

		go func(job Job) {
			defer wg.Done()

			// セマフォを取得（並列度を制限）
			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-ctx.Done():
				// コンテキストがキャンセルされた場合
				record(JobOutcome{
					JobName: job.Name,
					Kind:    OutcomeError,
					Detail:  ctx.Err().Error(),
				})
				return
			}

			record(p.execute(ctx, job))
		}(job)
	}

	// すべてのワーカーが完了するまで待機
	wg.Wait()

	report.Elapsed = time.Since(startTime)
	return report
}

// execute は1つのジョブを実行して結果を返します
// アクション内の panic は OutcomeError として回収し、バッチを止めません
func (p *Pool) execute(ctx context.Context, job Job) (outcome JobOutcome) {
	jobStartTime := time.Now()

	defer func() {
		if r := recover(); r != nil {
			outcome = JobOutcome{
				JobName:  job.Name,
				Kind:     OutcomeError,
				Detail:   fmt.Sprintf("panic: %v", r),
				Duration: time.Since(jobStartTime),
			}
		}
	}()

	ok, err := job.Action(ctx)

	outcome = JobOutcome{
		JobName:  job.Name,
		Duration: time.Since(jobStartTime),
	}
	switch {
	case err != nil:
		outcome.Kind = OutcomeError
		outcome.Detail = err.Error()
	case ok:
		outcome.Kind = OutcomeSuccess
	default:
		outcome.Kind = OutcomeFailure
	}

	return outcome
}
