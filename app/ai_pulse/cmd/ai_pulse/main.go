package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/config"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/engine"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/logger"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/model"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/render"
)

var (
	configFile string
	outputDir  string
	printJSON  bool
)

var rootCmd = &cobra.Command{
	Use:           "ai_pulse",
	Short:         "每日 AI 趋势简报",
	Long:          `联网检索当天的 AI 动态，整理为结构化报告并生成静态页面。`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "拉取今日报告并写入输出目录",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}

		e, err := engine.NewEngine(cfg)
		if err != nil {
			return err
		}

		start := time.Now()
		state := e.Load(cmd.Context())
		logger.Log.Infof("拉取结束，状态: %s，耗时 %s", state.Status(), time.Since(start).Round(time.Millisecond))

		if err := writeOutput(cfg.OutputDir, state); err != nil {
			return err
		}

		if printJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(state); err != nil {
				return err
			}
		}

		if d, failed := state.Failure(); failed {
			return fmt.Errorf("%s: %s", d.Code, d.Message)
		}
		return nil
	},
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "打印今日使用的 prompt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), engine.BuildPrompt(engine.FormatDate(time.Now())))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "configs/config.yaml", "配置文件路径")
	fetchCmd.Flags().StringVarP(&outputDir, "out", "o", "", "输出目录，覆盖配置中的 output_dir")
	fetchCmd.Flags().BoolVar(&printJSON, "json", false, "同时将页面状态以 JSON 打印到标准输出")
	rootCmd.AddCommand(fetchCmd, promptCmd)
}

// loadConfig 读取配置并初始化日志；配置文件不存在时使用默认配置
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Log.Warnf("配置文件 %s 不存在，使用默认配置", configFile)
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("无法加载配置文件: %w", err)
	}

	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		return nil, fmt.Errorf("无法初始化日志: %w", err)
	}
	return cfg, nil
}

// writeOutput 写入页面；报告加载成功时同时写入 report.json
func writeOutput(dir string, state model.AppState) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	page, err := render.PageBytes(state, render.Options{})
	if err != nil {
		return fmt.Errorf("渲染页面失败: %w", err)
	}
	htmlPath := filepath.Join(dir, "index.html")
	if err := os.WriteFile(htmlPath, page, 0o644); err != nil {
		return err
	}
	logger.Log.Infof("页面已写入 %s", htmlPath)

	report, ok := state.Report()
	if !ok {
		return nil
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	jsonPath := filepath.Join(dir, "report.json")
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return err
	}
	logger.Log.Infof("报告已写入 %s", jsonPath)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Log.Error(err)
		os.Exit(1)
	}
}
