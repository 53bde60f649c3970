package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jinford/fab-export/cmd/fab-export/commands"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 構造化ログの設定
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	app := &cli.Command{
		Name:  "fab-export",
		Usage: "KiCadプロジェクトの製造出力（回路図・ガーバー・BOM等）自動エクスポートツール",
		Commands: []*cli.Command{
			{
				Name:  "export",
				Usage: "製造出力エクスポートコマンド",
				Commands: []*cli.Command{
					{
						Name:  "run",
						Usage: "全製造出力をエクスポートしてREADMEを生成",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
							&cli.StringFlag{
								Name:  "project-dir",
								Usage: "プロジェクトディレクトリ（省略時はカレントディレクトリ）",
							},
							&cli.StringFlag{
								Name:  "output",
								Usage: "出力ディレクトリ（省略時は環境変数またはデフォルトの output）",
							},
							&cli.IntFlag{
								Name:  "workers",
								Usage: "ワーカープールの同時実行数（省略時は環境変数またはデフォルトの4）",
							},
							&cli.StringFlag{
								Name:  "skip",
								Usage: "除外する出力種別（カンマ区切り。例: erc,drc,render_3d）",
							},
							&cli.BoolFlag{
								Name:  "no-readme",
								Usage: "README.mdを生成しない",
							},
							&cli.StringFlag{
								Name:  "report",
								Usage: "実行レポートをJSON形式でエクスポート（ファイルパス）",
							},
						},
						Action: commands.ExportRunAction,
					},
					{
						Name:  "list",
						Usage: "エクスポート対象のジョブ一覧を表示",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
							&cli.StringFlag{
								Name:  "project-dir",
								Usage: "プロジェクトディレクトリ（省略時はカレントディレクトリ）",
							},
							&cli.StringFlag{
								Name:  "output",
								Usage: "出力ディレクトリ（省略時は環境変数またはデフォルトの output）",
							},
						},
						Action: commands.ExportListAction,
					},
				},
			},
			{
				Name:  "readme",
				Usage: "README生成コマンド",
				Commands: []*cli.Command{
					{
						Name:  "generate",
						Usage: "既存の出力からREADME.mdを再生成",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
							&cli.StringFlag{
								Name:  "project-dir",
								Usage: "プロジェクトディレクトリ（省略時はカレントディレクトリ）",
							},
							&cli.StringFlag{
								Name:  "output",
								Usage: "出力ディレクトリ（省略時は環境変数またはデフォルトの output）",
							},
						},
						Action: commands.ReadmeGenerateAction,
					},
				},
			},
			{
				Name:  "release",
				Usage: "エクスポート済みガーバーを製造用zipにまとめる",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "env",
						Usage: "環境変数ファイルパス",
						Value: ".env",
					},
					&cli.StringFlag{
						Name:  "project-dir",
						Usage: "プロジェクトディレクトリ（省略時はカレントディレクトリ）",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "出力ディレクトリ（省略時は環境変数またはデフォルトの output）",
					},
				},
				Action: commands.ReleaseAction,
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
