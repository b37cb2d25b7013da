package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/GH-ReservationService/internal/domain"
)

var (
	// ErrNameRequired возвращается при пустом названии блюда
	ErrNameRequired = errors.New("name is required")

	// ErrCategoryRequired возвращается при пустой категории
	ErrCategoryRequired = errors.New("category is required")

	// ErrInvalidPrice возвращается при отрицательной цене
	ErrInvalidPrice = errors.New("price must not be negative")
)

// Request модели

// CreateMenuItemRequest запрос на создание позиции меню
type CreateMenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Active      *bool   `json:"active,omitempty"` // По умолчанию позиция активна
	ImagePath   *string `json:"imagePath,omitempty"`
}

// ToDomain конвертирует request в domain модель с валидацией
func (r *CreateMenuItemRequest) ToDomain() (*domain.MenuItem, error) {
	if err := validateItemFields(r.Name, r.Category, r.Price); err != nil {
		return nil, err
	}

	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &domain.MenuItem{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Price:       r.Price,
		Category:    strings.TrimSpace(r.Category),
		Active:      active,
		ImagePath:   r.ImagePath,
	}, nil
}

// UpdateMenuItemRequest запрос на обновление позиции меню
type UpdateMenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Active      bool    `json:"active"`
	ImagePath   *string `json:"imagePath,omitempty"`
}

// ToDomain конвертирует request в domain модель с валидацией
func (r *UpdateMenuItemRequest) ToDomain(id int64) (*domain.MenuItem, error) {
	if err := validateItemFields(r.Name, r.Category, r.Price); err != nil {
		return nil, err
	}

	return &domain.MenuItem{
		ID:          id,
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Price:       r.Price,
		Category:    strings.TrimSpace(r.Category),
		Active:      r.Active,
		ImagePath:   r.ImagePath,
	}, nil
}

func validateItemFields(name, category string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(category) == "" {
		return ErrCategoryRequired
	}
	if price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Response модели

// MenuItemResponse ответ с данными позиции меню
type MenuItemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Active      bool    `json:"active"`
	ImagePath   *string `json:"imagePath,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MenuListResponse ответ со списком позиций меню
type MenuListResponse struct {
	Items []MenuItemResponse `json:"items"`
}

// Методы конвертации

// FromDomainMenuItem конвертирует domain модель в DTO
func FromDomainMenuItem(item *domain.MenuItem) *MenuItemResponse {
	if item == nil {
		return nil
	}

	return &MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Active:      item.Active,
		ImagePath:   item.ImagePath,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// FromDomainMenuList конвертирует список domain моделей в DTO
func FromDomainMenuList(items []*domain.MenuItem) *MenuListResponse {
	if items == nil {
		return &MenuListResponse{Items: []MenuItemResponse{}}
	}

	resp := &MenuListResponse{
		Items: make([]MenuItemResponse, len(items)),
	}

	for i, item := range items {
		if dto := FromDomainMenuItem(item); dto != nil {
			resp.Items[i] = *dto
		}
	}

	return resp
}
