package db_models

// POI is a named point on the 2-D plane. Rows are never updated or deleted.
type POI struct {
	BaseModel
	Name string  `gorm:"uniqueIndex;not null" json:"name"`
	X    float64 `gorm:"column:x;not null;index:idx_tb_poi_xy,priority:1" json:"x"`
	Y    float64 `gorm:"column:y;not null;index:idx_tb_poi_xy,priority:2" json:"y"`
}

func (POI) TableName() string { return "tb_poi" }
