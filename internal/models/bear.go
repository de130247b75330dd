package models

// Bear 表示一隻熊，與 Zoo 沒有關聯
type Bear struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"uniqueIndex;not null" json:"name"`
	Species *string `json:"species,omitempty"`
}

func (Bear) TableName() string { return "bears" }

func (b Bear) GetID() uint { return b.ID }

// BearInput 定義建立熊請求的結構
type BearInput struct {
	Name    string  `json:"name" binding:"required"`
	Species *string `json:"species"`
}

func (in BearInput) Model() *Bear {
	return &Bear{Name: in.Name, Species: in.Species}
}

// BearUpdate 定義更新熊請求的結構
type BearUpdate struct {
	Name    Nullable[string] `json:"name"`
	Species Nullable[string] `json:"species"`
}

func (in BearUpdate) Changes() (map[string]any, error) {
	changes := map[string]any{}
	if err := requiredColumn(changes, "name", in.Name); err != nil {
		return nil, err
	}
	column(changes, "species", in.Species)
	return changes, nil
}
