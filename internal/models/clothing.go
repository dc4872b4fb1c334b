package models

import "time"

type Category string

const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryDresses     Category = "dresses"
	CategoryOuterwear   Category = "outerwear"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
)

type Size string

const (
	SizePP  Size = "pp"
	SizeP   Size = "p"
	SizeM   Size = "m"
	SizeG   Size = "g"
	SizeGG  Size = "gg"
	SizeXGG Size = "xgg"
)

type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like-new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
)

// ClothingItem is a donated piece listed by its owner (the donor).
// Listings are immutable: no update or delete exists, and availability
// is fixed at creation.
type ClothingItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Title       string    `gorm:"size:190;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Category    Category  `gorm:"size:30;not null" json:"category"`
	Size        Size      `gorm:"size:10;not null" json:"size"`
	Condition   Condition `gorm:"size:20;not null" json:"condition"`
	ImageURL    *string   `gorm:"size:500" json:"image_url"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClothingItemView is the browse/detail projection: the item enriched
// with the donor's name and location via an inner join on users.
type ClothingItemView struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Category      Category  `json:"category"`
	Size          Size      `json:"size"`
	Condition     Condition `json:"condition"`
	ImageURL      *string   `json:"image_url"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
	DonorName     string    `json:"donor_name"`
	DonorLocation *string   `json:"donor_location"`
}

func IsValidCategory(c Category) bool {
	switch c {
	case CategoryTops, CategoryBottoms, CategoryDresses, CategoryOuterwear, CategoryShoes, CategoryAccessories:
		return true
	}
	return false
}

func IsValidSize(s Size) bool {
	switch s {
	case SizePP, SizeP, SizeM, SizeG, SizeGG, SizeXGG:
		return true
	}
	return false
}

func IsValidCondition(c Condition) bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair:
		return true
	}
	return false
}
