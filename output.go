// output.go
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/xuri/excelize/v2"
)

func fmt4(x float64) string { return fmt.Sprintf("%10.4g", x) }

// PrintParamTable: Key / 説明 / 値 の罫線付き表。値は表示単位に換算してから出す。
func PrintParamTable(w io.Writer, title string, params []Param) {
	fmt.Fprintln(w, title)
	if len(params) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}

	headers := []string{"Key", "Description", "Value"}

	// 各セルの文字列を先に作る
	rows := make([][]string, len(params))
	for i, p := range params {
		rows[i] = []string{p.Key, p.Label, fmt4(p.Display())}
	}

	// 列幅を決定（ヘッダ or 中身の最大）。µ や ² があるので rune 数で数える
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for j, cell := range row {
			if n := len([]rune(cell)); n > widths[j] {
				widths[j] = n
			}
		}
	}

	printLine := func() {
		fmt.Fprint(w, "+")
		for _, n := range widths {
			fmt.Fprint(w, strings.Repeat("-", n+2)+"+")
		}
		fmt.Fprintln(w)
	}
	padRight := func(s string, n int) string {
		return s + strings.Repeat(" ", n-len([]rune(s)))
	}

	// ヘッダ行
	printLine()
	fmt.Fprint(w, "|")
	for i, h := range headers {
		fmt.Fprintf(w, " %s |", padRight(h, widths[i]))
	}
	fmt.Fprintln(w)
	printLine()

	// データ行（値だけ右寄せ）
	for _, row := range rows {
		fmt.Fprint(w, "|")
		for j, cell := range row {
			if j == len(row)-1 {
				fmt.Fprintf(w, " %*s |", widths[j], cell)
			} else {
				fmt.Fprintf(w, " %s |", padRight(cell, widths[j]))
			}
		}
		fmt.Fprintln(w)
	}
	printLine()
	fmt.Fprintln(w)
}

// PrintSummary: 主要な結果だけを短く表示
func PrintSummary(w io.Writer, d Design) {
	r := d.Winding
	switch d.Mode {
	case ModeLength:
		fmt.Fprintf(w, "Completed layers: %d\n", r.CompletedLayers)
		fmt.Fprintf(w, "Total layers: %.2f\n", r.Layers)
		fmt.Fprintf(w, "Turns per layer (max): %.2f\n", r.TurnsPerLayer)
		fmt.Fprintf(w, "Turns in last layer: %.2f\n", r.PartialTurns)
		fmt.Fprintf(w, "Total turns: %.2f\n", r.TotalTurns)
		fmt.Fprintf(w, "Wire left after last layer: %.4f m\n", r.LeftoverLength)
	case ModeLayers:
		fmt.Fprintf(w, "Layers: %d\n", r.CompletedLayers)
		fmt.Fprintf(w, "Total turns: %.0f\n", r.TotalTurns)
		fmt.Fprintf(w, "Turns per layer: %.0f\n", r.TurnsPerLayer)
		fmt.Fprintf(w, "Coil inner radius: %.3f cm\n", r.InnerRadius*1e2)
		fmt.Fprintf(w, "Coil outer radius: %.3f cm\n", r.OuterRadius*1e2)
		fmt.Fprintf(w, "Wire length: %.3f m\n", r.WireLength)
	}
	fmt.Fprintf(w, "Peak current: %.4f A\n", d.Discharge.PeakCurrent)
	fmt.Fprintf(w, "Magnetic force: %.4f N\n", d.Discharge.Force)
	fmt.Fprintf(w, "Acceleration: %.2f m/s² (projectile %.4g g)\n\n",
		d.Discharge.Acceleration, d.ProjectileMass*1e3)
}

// PlotLayers: 層ごとのターン数（最後は端数層）
func PlotLayers(w io.Writer, r WindingResult) {
	data := r.LayerTurns
	if len(data) == 0 {
		fmt.Fprintln(w, "(no turns)")
		return
	}
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}
	fmt.Fprintln(w, asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Caption("turns per layer (inner → outer)")))
	fmt.Fprintln(w)
}

// AppendLog: 入力と出力をテキストに追記する（実行ごとに区切り線）
func AppendLog(filename string, in, out []Param) (err error) {
	if filename == "" {
		return nil
	}

	fp, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()

	var b strings.Builder
	b.WriteString("Inputs:\n")
	for _, p := range in {
		fmt.Fprintf(&b, "%s (%s): %.3e\n", p.Label, p.Key, p.Display())
	}
	b.WriteString("\nOutputs:\n")
	for _, p := range out {
		fmt.Fprintf(&b, "%s (%s): %.3e\n", p.Label, p.Key, p.Display())
	}
	b.WriteString("\n" + strings.Repeat("-", 50) + "\n\n")

	_, err = fp.WriteString(b.String())
	return err
}

// AppendTSV: 1 実行 = 1 行。ヘッダはファイルを新しく作ったときだけ書く。
// 入力キーはモードで変わるので、モードごとに別ファイルにすること。
func AppendTSV(filename string, mode Mode, in, out []Param) (err error) {
	if filename == "" {
		return nil
	}

	_, statErr := os.Stat(filename)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	fp, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(fp)
	w.Comma = '\t'

	all := append(append([]Param{}, in...), out...)
	if isNew {
		header := []string{"mode"}
		for _, p := range all {
			header = append(header, p.Label)
		}
		if err := w.Write(header); err != nil {
			return err
		}
	}

	row := []string{string(mode)}
	for _, p := range all {
		row = append(row, fmt.Sprintf("%.6g", p.Display()))
	}
	if err := w.Write(row); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

const summarySheet = "Summary"

// AppendXLSX: モードごとのシートに 1 行追記する。xlsx は元単位（SI）で保存。
// Summary シートにはモードごとの実行回数を持つ。
func AppendXLSX(filename string, mode Mode, in, out []Param) error {
	if filename == "" {
		return nil
	}

	var f *excelize.File
	if _, err := os.Stat(filename); err == nil {
		f, err = excelize.OpenFile(filename)
		if err != nil {
			return err
		}
	} else if errors.Is(err, fs.ErrNotExist) {
		f = excelize.NewFile()
		if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
			return err
		}
		f.SetCellValue(summarySheet, "A1", "Mode")
		f.SetCellValue(summarySheet, "B1", "Runs")
	} else {
		return err
	}
	defer f.Close()

	sheet := string(mode)
	all := append(append([]Param{}, in...), out...)

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	if idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		f.SetCellValue(sheet, "A1", "No")
		for i, p := range all {
			cell, _ := excelize.CoordinatesToCellName(i+2, 1)
			f.SetCellValue(sheet, cell, p.Key)
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	row := len(rows) + 1
	runs := row - 1

	cell, _ := excelize.CoordinatesToCellName(1, row)
	f.SetCellValue(sheet, cell, runs)
	for i, p := range all {
		cell, _ := excelize.CoordinatesToCellName(i+2, row)
		f.SetCellValue(sheet, cell, p.Value)
	}

	if err := updateRunCount(f, sheet, runs); err != nil {
		return err
	}
	return f.SaveAs(filename)
}

func updateRunCount(f *excelize.File, mode string, runs int) error {
	rows, err := f.GetRows(summarySheet)
	if err != nil {
		return err
	}
	row := len(rows) + 1
	for i, r := range rows {
		if len(r) > 0 && r[0] == mode {
			row = i + 1
			break
		}
	}
	a, _ := excelize.CoordinatesToCellName(1, row)
	b, _ := excelize.CoordinatesToCellName(2, row)
	if err := f.SetCellValue(summarySheet, a, mode); err != nil {
		return err
	}
	return f.SetCellValue(summarySheet, b, runs)
}
