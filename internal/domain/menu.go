package domain

import "time"

// MenuItem represents a dish on the restaurant menu
type MenuItem struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    string
	Active      bool
	ImagePath   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MenuFilter фильтр для выборки позиций меню
type MenuFilter struct {
	Category   *string
	ActiveOnly bool
}
