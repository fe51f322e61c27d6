package model

// Category groups products. Names are unique (case-sensitive).
type Category struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:255;uniqueIndex;not null"`
}

func (Category) TableName() string { return "categories" }

func (c *Category) PrimaryKey() int64 { return c.ID }
func (c *Category) SetPrimaryKey(id int64) { c.ID = id }
func (c *Category) UniqueName() string { return c.Name }
