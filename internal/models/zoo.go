package models

// Zoo 表示一座動物園
type Zoo struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"uniqueIndex;not null" json:"name"`
	Location *string `json:"location,omitempty"`
}

func (Zoo) TableName() string { return "zoos" }

func (z Zoo) GetID() uint { return z.ID }

// ZooInput 定義建立動物園請求的結構
type ZooInput struct {
	Name     string  `json:"name" binding:"required"`
	Location *string `json:"location"`
}

func (in ZooInput) Model() *Zoo {
	return &Zoo{Name: in.Name, Location: in.Location}
}

// ZooUpdate 定義更新動物園請求的結構，沒有提供的欄位不修改
type ZooUpdate struct {
	Name     Nullable[string] `json:"name"`
	Location Nullable[string] `json:"location"`
}

func (in ZooUpdate) Changes() (map[string]any, error) {
	changes := map[string]any{}
	if err := requiredColumn(changes, "name", in.Name); err != nil {
		return nil, err
	}
	column(changes, "location", in.Location)
	return changes, nil
}
