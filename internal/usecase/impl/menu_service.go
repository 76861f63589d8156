package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/service"
	"crave/internal/state"
	"crave/internal/usecase"

	"github.com/pkg/errors"
)

// menuService implements the MenuUsecase interface. It caches the last
// fetched menu so browsing filters run locally; mutations reload or
// optimistically extend the cache.
type menuService struct {
	menuAPI service.MenuAPI
	store   *state.Store
	logger  *slog.Logger

	mu     sync.RWMutex
	items  []*entity.MenuItem
	loaded bool
}

// NewMenuService is the constructor for menuService.
func NewMenuService(
	menuAPI service.MenuAPI,
	store *state.Store,
	logger *slog.Logger,
) usecase.MenuUsecase {
	return &menuService{
		menuAPI: menuAPI,
		store:   store,
		logger:  logger,
	}
}

// Browse returns the menu filtered by search text and category.
func (srv *menuService) Browse(ctx context.Context, query *usecase.BrowseQuery) (*usecase.MenuView, error) {
	items, err := srv.menu(ctx)
	if err != nil {
		return nil, err
	}

	view := &usecase.MenuView{Items: make([]*entity.MenuItem, 0, len(items))}
	seen := make(map[string]struct{})

	search := strings.ToLower(strings.TrimSpace(query.Search))
	for _, item := range items {
		if _, ok := seen[item.Category]; !ok {
			seen[item.Category] = struct{}{}
			view.Categories = append(view.Categories, item.Category)
		}

		if query.Category != "" && item.Category != query.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		view.Items = append(view.Items, item)
	}

	return view, nil
}

// ItemDetails returns one menu item with its reviews.
func (srv *menuService) ItemDetails(ctx context.Context, menuItemID string) (*entity.MenuItem, error) {
	items, err := srv.menu(ctx)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.ID == menuItemID {
			return item, nil
		}
	}

	return nil, errors.Wrap(domainerrors.ErrNotFound, "menu item not found")
}

// CreateMenuItem creates a menu item and appends it to the cache without
// waiting for the next full fetch.
func (srv *menuService) CreateMenuItem(ctx context.Context, input *usecase.CreateMenuItemInput) (*entity.MenuItem, error) {
	user, ok := srv.store.User()
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}
	if !user.Role.IsAdmin() {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	srv.logger.Info("Creating menu item", "name", input.Name)

	created, err := srv.menuAPI.CreateMenuItem(ctx, service.CreateMenuItemInput{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Image:       input.Image,
		Price:       input.Price,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create menu item")
	}

	srv.mu.Lock()
	if srv.loaded {
		srv.items = append(srv.items, created)
	}
	srv.mu.Unlock()

	return created, nil
}

// SubmitReview appends a review and reloads the menu so the new rating
// aggregate is reflected.
func (srv *menuService) SubmitReview(ctx context.Context, input *usecase.SubmitReviewInput) error {
	if _, ok := srv.store.User(); !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	if err := srv.menuAPI.CreateReview(ctx, input.MenuItemID, input.Rating, input.Comment); err != nil {
		return errors.Wrap(err, "failed to submit review")
	}

	if err := srv.reload(ctx); err != nil {
		// The review was accepted; a failed reload only leaves the cache stale.
		srv.logger.Warn("Menu reload after review failed", "error", err)
	}

	return nil
}

// menu returns the cached menu, fetching it on first use.
func (srv *menuService) menu(ctx context.Context) ([]*entity.MenuItem, error) {
	srv.mu.RLock()
	if srv.loaded {
		items := srv.items
		srv.mu.RUnlock()

		return items, nil
	}
	srv.mu.RUnlock()

	if err := srv.reload(ctx); err != nil {
		return nil, err
	}

	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.items, nil
}

func (srv *menuService) reload(ctx context.Context) error {
	items, err := srv.menuAPI.ListMenu(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to fetch menu")
	}

	srv.mu.Lock()
	srv.items = items
	srv.loaded = true
	srv.mu.Unlock()

	return nil
}
