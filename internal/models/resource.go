package models

// Entity 是所有資源共用的能力：由資料庫分配的主鍵
type Entity interface {
	GetID() uint
}

// CreateInput 將建立請求轉成要寫入的資料列
type CreateInput[T Entity] interface {
	Model() *T
}

// UpdateInput 回傳要更新的欄位（欄位名稱 -> 新值），只包含請求中有提供的欄位，
// 明確的 null 會對應到 nil
type UpdateInput interface {
	Changes() (map[string]any, error)
}

// All 回傳需要自動遷移的模型
func All() []interface{} {
	return []interface{}{&Zoo{}, &Bear{}}
}
