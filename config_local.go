// config.go を直接さわらずにここで差し替え

package main

func init() {
	LocalOverride = func(cfg *Config) {

		// コメントアウトでデフォルト値が使われる。

		// 巻線モード（"length": ワイヤ長から / "layers": 層数から）
		// cfg.Mode = ModeLayers
		// cfg.Inputs = DefaultInputs(cfg.Mode)

		// 入出力の記録（追記）。"" なら保存しない
		cfg.LogFile = "coilgun_log.txt"
		// cfg.TSVFile = "coilgun.tsv"
		// cfg.XLSXFile = "coilgun.xlsx"

		// 層ごとのターン数をグラフ表示
		// cfg.Plot = true

		// --- 入力（SI 単位） ---
		// cfg.Inputs.Voltage = 12
		// cfg.Inputs.WireLength = 3.0
		// cfg.Inputs.ProjectileMass = 5e-3
	}
}
