package impl

import (
	"context"
	"log/slog"
	"sync"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/service"
	"crave/internal/state"
	"crave/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var decimalTwo = decimal.NewFromInt(2)

// cartService implements the CartUsecase interface. Cart lines live in
// the state container; the coupon and the coin toggle are cart-session
// state owned here and reset when the cart empties.
type cartService struct {
	couponAPI service.CouponAPI
	store     *state.Store
	logger    *slog.Logger

	mu       sync.Mutex
	coupon   *entity.Coupon
	useCoins bool
}

// NewCartService is the constructor for cartService.
func NewCartService(
	couponAPI service.CouponAPI,
	store *state.Store,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		couponAPI: couponAPI,
		store:     store,
		logger:    logger,
	}
}

// View returns the current cart with its derived price summary.
func (srv *cartService) View(_ context.Context) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.view(), nil
}

// AddItem merges a line into the cart. An existing (item, variant) pair
// gains quantity instead of duplicating.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddItemInput) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	err := srv.store.AddCartItem(ctx, entity.CartItem{
		MenuItemID: input.MenuItemID,
		Name:       input.Name,
		Variant:    input.Variant,
		UnitPrice:  input.UnitPrice,
		Quantity:   input.Quantity,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	return srv.view(), nil
}

// RemoveItem drops the line matching (menuItemID, variant). Emptying the
// cart clears the active coupon as well.
func (srv *cartService) RemoveItem(ctx context.Context, menuItemID, variant string) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.store.RemoveCartItem(ctx, menuItemID, variant); err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	if srv.store.Cart().IsEmpty() {
		srv.coupon = nil
	}

	return srv.view(), nil
}

// Clear empties the cart and resets the coupon and coin toggle.
func (srv *cartService) Clear(ctx context.Context) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.clearLocked(ctx); err != nil {
		return nil, err
	}

	return srv.view(), nil
}

func (srv *cartService) clearLocked(ctx context.Context) error {
	if err := srv.store.ClearCart(ctx); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}
	srv.coupon = nil
	srv.useCoins = false

	return nil
}

// ApplyCoupon validates the code against the raw subtotal and records
// the granted discount. Only one coupon may be active; a second
// application is rejected until the first is removed.
func (srv *cartService) ApplyCoupon(ctx context.Context, code string) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart := srv.store.Cart()
	if cart.IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrCartEmpty)
	}
	if srv.coupon != nil {
		return nil, errors.WithStack(domainerrors.ErrCouponAlreadyApplied)
	}

	coupon, err := srv.couponAPI.Validate(ctx, code, cart.Subtotal())
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate coupon")
	}

	srv.logger.Info("Coupon applied", "code", coupon.Code, "discount", coupon.Discount.String())
	srv.coupon = coupon

	return srv.view(), nil
}

// RemoveCoupon drops the active coupon. Removing when none is active is
// a no-op.
func (srv *cartService) RemoveCoupon(_ context.Context) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.coupon = nil

	return srv.view(), nil
}

// SetUseCoins toggles loyalty-coin redemption. Requires a session: the
// balance belongs to the authenticated user.
func (srv *cartService) SetUseCoins(_ context.Context, useCoins bool) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, ok := srv.store.User(); !ok && useCoins {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}
	srv.useCoins = useCoins

	return srv.view(), nil
}

// view assembles the CartView. Callers must hold srv.mu.
func (srv *cartService) view() *usecase.CartView {
	cart := srv.store.Cart()

	var balance int64
	if user, ok := srv.store.User(); ok {
		balance = user.Coins
	}

	view := &usecase.CartView{
		Items:       cart.Items,
		Coupon:      srv.coupon,
		UseCoins:    srv.useCoins,
		CoinBalance: balance,
		Summary:     computeSummary(cart, srv.coupon, srv.useCoins, balance),
	}

	return view
}

// computeSummary derives the full pricing breakdown from scratch; no
// running totals are kept anywhere.
func computeSummary(cart *entity.Cart, coupon *entity.Coupon, useCoins bool, coinBalance int64) usecase.PriceSummary {
	subtotal := cart.Subtotal()

	couponDiscount := decimal.Zero
	if coupon != nil {
		couponDiscount = coupon.Discount
	}

	afterCoupon := subtotal.Sub(couponDiscount)
	if afterCoupon.IsNegative() {
		afterCoupon = decimal.Zero
	}

	coinDiscount := decimal.Zero
	if useCoins {
		// Coins cover at most half of the discounted total.
		halfTotal := afterCoupon.Div(decimalTwo)
		coinDiscount = decimal.NewFromInt(coinBalance)
		if coinDiscount.GreaterThan(halfTotal) {
			coinDiscount = halfTotal
		}
	}

	return usecase.PriceSummary{
		Subtotal:       subtotal,
		CouponDiscount: couponDiscount,
		CoinDiscount:   coinDiscount,
		FinalTotal:     afterCoupon.Sub(coinDiscount),
	}
}
