// errors.go
package main

import (
	"errors"
	"fmt"
)

// 前提条件違反の分類。計算の途中で Inf/NaN や無限ループになる前にここで止める。
var (
	// ErrInvalidGeometry: 巻枠の寸法が巻線できない値（高さ<=0, 線径>高さ など）
	ErrInvalidGeometry = errors.New("invalid bobbin geometry")

	// ErrInvalidWire: 線径・断面積・線長が不正
	ErrInvalidWire = errors.New("invalid wire spec")

	// ErrInvalidCircuit: C<=0 など、インピーダンス・力の式がゼロ割りになる値
	ErrInvalidCircuit = errors.New("invalid circuit parameters")

	ErrInvalidMode = errors.New("invalid winding mode")
)

// ParamError は「どのキーがなぜダメか」を持つ。errors.Is で分類を判定できる。
type ParamError struct {
	Key    string
	Value  float64
	Reason string
	Err    error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("param %s: %s (got %g)", e.Key, e.Reason, e.Value)
}

func (e *ParamError) Unwrap() error { return e.Err }

func paramErr(kind error, key string, v float64, reason string) error {
	return &ParamError{Key: key, Value: v, Reason: reason, Err: kind}
}
