package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	menuRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/menu"
	"github.com/m04kA/GH-ReservationService/internal/service/menu/models"
)

// Service сервис для работы с меню ресторана
type Service struct {
	menuRepo MenuRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса меню
func NewService(menuRepo MenuRepository, logger Logger) *Service {
	return &Service{
		menuRepo: menuRepo,
		logger:   logger,
	}
}

// GetPublicMenu получает активные позиции меню для публичной страницы
func (s *Service) GetPublicMenu(ctx context.Context, category *string) (*models.MenuListResponse, error) {
	s.logger.Info("GetPublicMenu: fetching active menu items, category=%v", category)

	items, err := s.menuRepo.GetWithFilter(ctx, domain.MenuFilter{
		Category:   category,
		ActiveOnly: true,
	})
	if err != nil {
		s.logger.Error("GetPublicMenu: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPublicMenu - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMenuList(items), nil
}

// GetAll получает все позиции меню для админки, включая скрытые
func (s *Service) GetAll(ctx context.Context) (*models.MenuListResponse, error) {
	s.logger.Info("GetAll: fetching all menu items")

	items, err := s.menuRepo.GetWithFilter(ctx, domain.MenuFilter{})
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMenuList(items), nil
}

// Create создает новую позицию меню
func (s *Service) Create(ctx context.Context, req *models.CreateMenuItemRequest) (*models.MenuItemResponse, error) {
	s.logger.Info("Create: creating menu item name=%q, category=%q", req.Name, req.Category)

	item, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.menuRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created menu item id=%d", created.ID)
	return models.FromDomainMenuItem(created), nil
}

// Update обновляет позицию меню, включая флаг видимости
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateMenuItemRequest) (*models.MenuItemResponse, error) {
	s.logger.Info("Update: updating menu item id=%d", id)

	item, err := req.ToDomain(id)
	if err != nil {
		s.logger.Warn("Update: validation failed for menu item id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.menuRepo.Update(ctx, item)
	if err != nil {
		if errors.Is(err, menuRepo.ErrItemNotFound) {
			s.logger.Warn("Update: menu item id=%d not found", id)
			return nil, ErrMenuItemNotFound
		}
		s.logger.Error("Update: repository error for menu item id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated menu item id=%d", id)
	return models.FromDomainMenuItem(updated), nil
}

// Delete удаляет позицию меню
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting menu item id=%d", id)

	if err := s.menuRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, menuRepo.ErrItemNotFound) {
			s.logger.Warn("Delete: menu item id=%d not found", id)
			return ErrMenuItemNotFound
		}
		s.logger.Error("Delete: repository error for menu item id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted menu item id=%d", id)
	return nil
}
