package kicad

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// CommandRunner は外部コマンドの実行を抽象化します（テストで差し替え可能）
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// execRunner は os/exec によるCommandRunnerの実装です
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// ツール自体は起動したが非ゼロ終了した
			return &ToolError{
				Args:   append([]string{name}, args...),
				Output: strings.TrimSpace(string(output)),
				Err:    err,
			}
		}
		return fmt.Errorf("failed to invoke %s: %w", name, err)
	}

	return nil
}

// ToolError は外部ツールが非ゼロ終了したことを表します
// コマンド自体が起動できなかった場合（PATHに無い等）とは区別されます
type ToolError struct {
	Args   []string
	Output string
	Err    error
}

func (e *ToolError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("command failed: %s: %v", strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("command failed: %s: %v: %s", strings.Join(e.Args, " "), e.Err, e.Output)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// CLI は kicad-cli コマンドのラッパーです
type CLI struct {
	binPath string
	runner  CommandRunner
	logger  *slog.Logger
}

// NewCLI は新しいCLIを作成します
func NewCLI(binPath string, logger *slog.Logger) *CLI {
	return NewCLIWithRunner(binPath, execRunner{}, logger)
}

// NewCLIWithRunner はCommandRunnerを指定してCLIを作成します（テスト用）
func NewCLIWithRunner(binPath string, runner CommandRunner, logger *slog.Logger) *CLI {
	if binPath == "" {
		binPath = "kicad-cli"
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CLI{
		binPath: binPath,
		runner:  runner,
		logger:  logger,
	}
}

// Run は kicad-cli をサブコマンド引数付きで実行します
func (c *CLI) Run(ctx context.Context, args ...string) error {
	c.logger.Info("コマンド実行",
		slog.String("command", c.binPath+" "+strings.Join(args, " ")),
	)

	err := c.runner.Run(ctx, c.binPath, args...)

	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		c.logger.Error("コマンド失敗", slog.String("detail", toolErr.Error()))
	}

	return err
}

// CheckAvailable は kicad-cli が利用可能かを確認します
// 利用できない場合は致命的前提条件エラーとして呼び出し側で即座に中断します
func (c *CLI) CheckAvailable(ctx context.Context) error {
	if err := c.runner.Run(ctx, c.binPath, "--version"); err != nil {
		return fmt.Errorf("kicad-cli is not installed or not in PATH: %w", err)
	}
	return nil
}
