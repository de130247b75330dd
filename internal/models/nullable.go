package models

import (
	"encoding/json"
	"fmt"
)

// Nullable 區分請求中「沒有這個欄位」與「欄位是 null」
// Set 為 false 表示沒有提供，Set 為 true 且 Value 為 nil 表示 null
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// Some 建立有值的欄位
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null 建立明確為 null 的欄位
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// column 把可為 null 的欄位加入 changes，null 會寫入 NULL
func column[T any](changes map[string]any, name string, n Nullable[T]) {
	if !n.Set {
		return
	}
	if n.Value == nil {
		changes[name] = nil
		return
	}
	changes[name] = *n.Value
}

// requiredColumn 用於 not null 欄位：提供時不可為 null 或空字串
func requiredColumn(changes map[string]any, name string, n Nullable[string]) error {
	if !n.Set {
		return nil
	}
	if n.Value == nil {
		return fmt.Errorf("%s must not be null", name)
	}
	if *n.Value == "" {
		return fmt.Errorf("%s must not be empty", name)
	}
	changes[name] = *n.Value
	return nil
}
