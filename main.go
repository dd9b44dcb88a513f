// main.go
// Copyright (c) 2026 Ichijo Hodaka
// Coilgun Designer（1段コイルガンの設計値計算）
// - 巻枠・ワイヤ・コンデンサの値から ターン数 / 抵抗 / インダクタンス / 最大電流 / 磁力 を出す
// - 巻線は「ワイヤ長から」または「層数から」のどちらかで決める
// - 時間発展のシミュレーションはしない（閉じた式を1回評価するだけ）
// - 入力と結果はテキストに追記（tsv / xlsx も可）
//
// 表示は有効数字4桁（%.4g）

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, opts, err := LoadConfig(args)
	if err != nil {
		return err
	}

	log, flush, err := NewLogger(opts.Verbosity)
	if err != nil {
		return err
	}
	defer flush()

	if opts.InitFile != "" {
		if err := WriteTemplate(opts.InitFile, cfg); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "config written:", opts.InitFile)
		return nil
	}

	d, err := Evaluate(cfg, log)
	if err != nil {
		return err
	}

	in := cfg.InputParams()
	out := d.OutputParams()

	PrintParamTable(stdout, "=== Inputs ===", in)
	PrintParamTable(stdout, "=== Outputs ===", out)
	PrintSummary(stdout, d)
	if cfg.Plot {
		PlotLayers(stdout, d.Winding)
	}

	// 保存に失敗しても他の出力は続ける
	var errs []error
	save := func(kind, filename string, fn func() error) {
		if filename == "" {
			return
		}
		if err := fn(); err != nil {
			log.Error(err, "save failed", "kind", kind, "file", filename)
			errs = append(errs, fmt.Errorf("%s save: %w", kind, err))
			return
		}
		fmt.Fprintf(stdout, "%s saved: %s\n", kind, filename)
	}
	save("log", cfg.LogFile, func() error { return AppendLog(cfg.LogFile, in, out) })
	save("tsv", cfg.TSVFile, func() error { return AppendTSV(cfg.TSVFile, cfg.Mode, in, out) })
	save("xlsx", cfg.XLSXFile, func() error { return AppendXLSX(cfg.XLSXFile, cfg.Mode, in, out) })

	return errors.Join(errs...)
}
