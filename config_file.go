// config_file.go
// 設定の読み込み順（上ほど優先）
//   フラグ > 環境変数 COILGUN_* > 設定ファイル (--config) > LocalOverride > DefaultConfig
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "COILGUN"

// Options: 設定値ではなく「実行のしかた」に関するフラグ
type Options struct {
	ConfigFile string
	InitFile   string // 指定されたら設定を YAML で書き出して終了
	Verbosity  int
}

// viper のキー → フラグ名
var flagKeys = map[string]string{
	"mode":      "mode",
	"log_file":  "log-file",
	"tsv_file":  "tsv",
	"xlsx_file": "xlsx",
	"plot":      "plot",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("coilgun", pflag.ContinueOnError)
	fs.String("config", "", "config file (yaml, toml or json)")
	fs.String("init", "", "write the effective config as YAML to this file and exit")
	fs.IntP("verbosity", "v", 0, "log verbosity (1: intermediate values)")
	fs.String("mode", "", "winding mode: length | layers")
	fs.String("log-file", "", "append inputs/outputs to this text file")
	fs.String("tsv", "", "append one row per run to this TSV file")
	fs.String("xlsx", "", "append one row per run to this xlsx workbook")
	fs.Bool("plot", false, "plot turns per layer")
	return fs
}

func LoadConfig(args []string) (Config, Options, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, Options{}, err
	}

	var opts Options
	opts.ConfigFile, _ = fs.GetString("config")
	opts.InitFile, _ = fs.GetString("init")
	opts.Verbosity, _ = fs.GetInt("verbosity")

	base := DefaultConfig()
	if LocalOverride != nil {
		LocalOverride(&base)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", string(base.Mode))
	v.SetDefault("log_file", base.LogFile)
	v.SetDefault("tsv_file", base.TSVFile)
	v.SetDefault("xlsx_file", base.XLSXFile)
	v.SetDefault("plot", base.Plot)

	for key, name := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return Config{}, Options{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, Options{}, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	}

	// 入力の既定値はモードで変わるので、モードが確定してから入れる。
	// モードを切り替えた場合、LocalOverride で変えた入力は使われない。
	inputs := base.Inputs
	if mode := Mode(v.GetString("mode")); mode != base.Mode {
		inputs = DefaultInputs(mode)
	}
	for k, val := range inputs.settings() {
		v.SetDefault("inputs."+k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, Options{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, opts, nil
}

// settings: Inputs をタグ名のキーで並べたもの（viper の既定値用）
func (in Inputs) settings() map[string]any {
	return map[string]any{
		"C":                 in.Capacitance,
		"V0":                in.Voltage,
		"wire_area":         in.WireArea,
		"wire_diameter":     in.WireDiameter,
		"insulation":        in.Insulation,
		"wire_length":       in.WireLength,
		"coil_length":       in.CoilLength,
		"inner_diameter":    in.InnerDiameter,
		"projectile_radius": in.ProjectileRadius,
		"bore_clearance":    in.BoreClearance,
		"layers":            in.Layers,
		"mu_r":              in.MuR,
		"projectile_mass":   in.ProjectileMass,
	}
}

// WriteTemplate: 現在の設定を YAML で書き出す。編集して --config で読み戻せる。
func WriteTemplate(filename string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}
