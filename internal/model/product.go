package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a stock-keeping item. CategoryID is a nullable reference to
// Category; the FK is declared ON DELETE SET NULL so removing a category
// orphans its products instead of deleting them.
type Product struct {
	ID          int64           `gorm:"primaryKey"`
	Name        string          `gorm:"size:255;uniqueIndex;not null"`
	Description string          `gorm:"size:255;not null;default:''"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null"`
	CategoryID  *int64          `gorm:"index"`
	CreatedAt   time.Time       `gorm:"not null"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (Product) TableName() string { return "products" }

func (p *Product) PrimaryKey() int64 { return p.ID }
func (p *Product) SetPrimaryKey(id int64) { p.ID = id }
func (p *Product) UniqueName() string { return p.Name }
func (p *Product) SetCreatedAt(t time.Time) { p.CreatedAt = t }
