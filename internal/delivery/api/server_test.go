package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recyclemart/config"
	"recyclemart/internal/delivery/api/middleware"
	"recyclemart/internal/delivery/api/router"
	"recyclemart/internal/delivery/api/router/handler"
	"recyclemart/internal/domain/entity"
	domainerrors "recyclemart/internal/domain/errors"
	mockUsecase "recyclemart/internal/mocks/usecase"
	"recyclemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubHealth struct {
	degraded bool
}

func (s stubHealth) Degraded() bool { return s.degraded }

type apiFixture struct {
	echo      *echo.Echo
	session   *mockUsecase.MockSessionUsecase
	user      *mockUsecase.MockUserUsecase
	quote     *mockUsecase.MockQuoteUsecase
	inventory *mockUsecase.MockInventoryUsecase
	voucher   *mockUsecase.MockVoucherUsecase
	market    *mockUsecase.MockMarketUsecase
	order     *mockUsecase.MockOrderUsecase
	dashboard *mockUsecase.MockDashboardUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newAPIFixture(t *testing.T, health stubHealth) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &apiFixture{
		session:   mockUsecase.NewMockSessionUsecase(t),
		user:      mockUsecase.NewMockUserUsecase(t),
		quote:     mockUsecase.NewMockQuoteUsecase(t),
		inventory: mockUsecase.NewMockInventoryUsecase(t),
		voucher:   mockUsecase.NewMockVoucherUsecase(t),
		market:    mockUsecase.NewMockMarketUsecase(t),
		order:     mockUsecase.NewMockOrderUsecase(t),
		dashboard: mockUsecase.NewMockDashboardUsecase(t),
	}

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	f.echo = NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:       handler.NewAuthHandler(handler.AuthHandlerParams{SessionUC: f.session, UserUC: f.user, Logger: logger}),
		UserHandler:       handler.NewUserHandler(handler.UserHandlerParams{UserUC: f.user, Logger: logger}),
		QuoteHandler:      handler.NewQuoteHandler(handler.QuoteHandlerParams{QuoteUC: f.quote, Logger: logger}),
		InventoryHandler:  handler.NewInventoryHandler(handler.InventoryHandlerParams{InventoryUC: f.inventory, Logger: logger}),
		VoucherHandler:    handler.NewVoucherHandler(handler.VoucherHandlerParams{VoucherUC: f.voucher, Logger: logger}),
		MarketHandler:     handler.NewMarketHandler(handler.MarketHandlerParams{MarketUC: f.market, Logger: logger}),
		OrderHandler:      handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: f.order, Logger: logger}),
		DashboardHandler:  handler.NewDashboardHandler(handler.DashboardHandlerParams{DashboardUC: f.dashboard, Health: health, Logger: logger}),
		SessionMiddleware: middleware.NewSessionMiddleware(f.session),
	})

	return f
}

func (f *apiFixture) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	f.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (f *apiFixture) loggedInAs(role entity.Role) {
	actor := &entity.Actor{Email: "someone@recyclemart.io", Role: role}
	f.session.EXPECT().Current(mock.Anything).Return(actor, nil).Maybe()
}

func (f *apiFixture) allow(roles ...entity.Role) {
	args := make([]interface{}, 0, len(roles))
	for _, role := range roles {
		args = append(args, role)
	}
	f.session.EXPECT().Require(mock.Anything, args...).
		Return(&entity.Actor{Email: "someone@recyclemart.io", Role: roles[0]}, nil).Maybe()
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name         string
		degraded     bool
		wantStatus   string
		wantDegraded bool
	}{
		{"durable storage", false, "ok", false},
		{"degraded storage", true, "degraded", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t, stubHealth{degraded: tt.degraded})

			rec, env := f.do(t, http.MethodGet, "/health", "")

			assert.Equal(t, http.StatusOK, rec.Code)
			var health handler.HealthResponse
			require.NoError(t, json.Unmarshal(env.Data, &health))
			assert.Equal(t, tt.wantStatus, health.Status)
			assert.Equal(t, tt.wantDegraded, health.Degraded)
			assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}

func TestUnauthenticatedRequestIsRejected(t *testing.T) {
	f := newAPIFixture(t, stubHealth{})
	f.session.EXPECT().Current(mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUnauthenticated, "no session"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/mine", nil)
	req.Header.Set("X-Request-Id", "trace-123")
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "trace-123", rec.Header().Get("X-Request-Id"))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
	assert.Equal(t, "trace-123", env.Meta.RequestID)
}

func TestForbiddenRoleHidesDetails(t *testing.T) {
	f := newAPIFixture(t, stubHealth{})
	f.loggedInAs(entity.RoleCustomer)
	f.session.EXPECT().Require(mock.Anything, entity.RoleAdmin).
		Return(nil, domainerrors.ErrForbidden.WithDetails("role customer is not allowed"))

	rec, env := f.do(t, http.MethodGet, "/api/v1/dashboard", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestLogin(t *testing.T) {
	t.Run("missing password fails validation", func(t *testing.T) {
		f := newAPIFixture(t, stubHealth{})

		rec, env := f.do(t, http.MethodPost, "/api/v1/auth/login", `{"email":"ana@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Message, "Password is required")
	})

	t.Run("wrong credentials", func(t *testing.T) {
		f := newAPIFixture(t, stubHealth{})
		f.session.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "ana@example.com", Password: "nope"}).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

		rec, env := f.do(t, http.MethodPost, "/api/v1/auth/login", `{"email":"ana@example.com","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	})

	t.Run("success", func(t *testing.T) {
		f := newAPIFixture(t, stubHealth{})
		f.session.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "ana@example.com", Password: "Sup3rSecret!"}).
			Return(&entity.User{Email: "ana@example.com", Role: entity.RoleCustomer, PasswordHash: "hash"}, nil)

		rec, env := f.do(t, http.MethodPost, "/api/v1/auth/login", `{"email":"ana@example.com","password":"Sup3rSecret!"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"email":"ana@example.com"`)
		assert.NotContains(t, string(env.Data), "hash")
	})
}

func TestInventoryListParsesQuery(t *testing.T) {
	f := newAPIFixture(t, stubHealth{})
	f.loggedInAs(entity.RoleCompany)
	f.allow(entity.RoleCompany, entity.RoleAdmin)

	maxPrice := decimal.NewFromInt(600)
	f.inventory.EXPECT().List(mock.Anything, mock.MatchedBy(func(q usecase.InventoryQuery) bool {
		return assert.ObjectsAreEqual([]entity.DeviceType{entity.DeviceLaptop, entity.DeviceTablet}, q.Filter.Types) &&
			assert.ObjectsAreEqual([]string{"Apple"}, q.Filter.Brands) &&
			q.Filter.MaxPrice != nil && q.Filter.MaxPrice.Equal(maxPrice) &&
			q.Filter.MinPrice == nil &&
			q.Filter.AvailableOnly &&
			q.Filter.SearchTerm == "pro" &&
			q.Sort == usecase.SortPriceAsc &&
			q.Page == 2
	})).Return(&usecase.InventoryPage{TotalCount: 5, TotalPages: 3, Page: 2}, nil)

	rec, env := f.do(t, http.MethodGet,
		"/api/v1/inventory?type=Laptop,Tablet&brand=Apple&max_price=600&available=true&q=%20pro%20&sort=price-asc&page=2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var page handler.InventoryPageResponse
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 5, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
}

func TestInventoryListRejectsBadPrice(t *testing.T) {
	f := newAPIFixture(t, stubHealth{})
	f.loggedInAs(entity.RoleAdmin)
	f.allow(entity.RoleCompany, entity.RoleAdmin)

	rec, env := f.do(t, http.MethodGet, "/api/v1/inventory?min_price=cheap", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUERY", env.Error.Code)
	assert.Equal(t, "min_price must be a number", env.Error.Message)
}

func TestSetStatusInvalidTransition(t *testing.T) {
	f := newAPIFixture(t, stubHealth{})
	f.loggedInAs(entity.RoleAdmin)
	f.allow(entity.RoleAdmin)

	id := uuid.New()
	f.quote.EXPECT().SetStatus(mock.Anything, id, entity.RequestPending).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidTransition.WithDetails("Completed -> Pending")))

	rec, env := f.do(t, http.MethodPut, "/api/v1/quotes/"+id.String()+"/status", `{"status":"Pending"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_TRANSITION", env.Error.Code)
	assert.Equal(t, "Completed -> Pending", env.Error.Details)
}

func TestAddToCartCoordinates(t *testing.T) {
	deviceID := uuid.New()

	t.Run("latitude without longitude", func(t *testing.T) {
		f := newAPIFixture(t, stubHealth{})
		f.loggedInAs(entity.RoleCompany)
		f.allow(entity.RoleCompany)

		body := `{"device_id":"` + deviceID.String() + `","shipping_method":"pickup","location":"Depot","latitude":51.5}`
		rec, env := f.do(t, http.MethodPost, "/api/v1/cart", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("point is longitude first", func(t *testing.T) {
		f := newAPIFixture(t, stubHealth{})
		f.loggedInAs(entity.RoleCompany)
		f.allow(entity.RoleCompany)

		f.order.EXPECT().AddToCart(mock.Anything, mock.MatchedBy(func(in usecase.AddToCartInput) bool {
			return in.DeviceID == deviceID &&
				in.ShippingMethod == entity.ShippingPickup &&
				in.Coordinates != nil && in.Coordinates.Lon() == -0.12 && in.Coordinates.Lat() == 51.5
		})).Return([]*usecase.CartLine{}, nil)

		body := `{"device_id":"` + deviceID.String() + `","shipping_method":"pickup","location":"Depot","latitude":51.5,"longitude":-0.12}`
		rec, _ := f.do(t, http.MethodPost, "/api/v1/cart", body)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPickupLabelIsPNG(t *testing.T) {
	f := newAPIFixture(t, stubHealth{})
	f.loggedInAs(entity.RoleCompany)
	f.allow(entity.RoleCompany, entity.RoleAdmin)

	orderID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}
	f.order.EXPECT().PickupLabel(mock.Anything, orderID).Return(png, nil)

	rec, _ := f.do(t, http.MethodGet, "/api/v1/orders/"+orderID.String()+"/label", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestRedeemVoucher(t *testing.T) {
	f := newAPIFixture(t, stubHealth{})
	f.loggedInAs(entity.RoleCustomer)
	f.allow(entity.RoleCustomer)

	f.voucher.EXPECT().Redeem(mock.Anything, 1).
		Return(nil, errors.Wrap(domainerrors.ErrInsufficientPoints, "redeem"))

	rec, env := f.do(t, http.MethodPost, "/api/v1/vouchers/1/redeem", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INSUFFICIENT_POINTS", env.Error.Code)

	rec, env = f.do(t, http.MethodPost, "/api/v1/vouchers/first/redeem", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INDEX", env.Error.Code)
}

func TestAddVoucherDefaultsCurrency(t *testing.T) {
	f := newAPIFixture(t, stubHealth{})
	f.loggedInAs(entity.RoleAdmin)
	f.allow(entity.RoleAdmin)

	f.voucher.EXPECT().Add(mock.Anything, mock.MatchedBy(func(in usecase.AddVoucherInput) bool {
		return in.Market == "Carrefour" && in.Value == 100 && in.Discount.Equal(decimal.NewFromInt(10)) && in.Currency == ""
	})).Return(&entity.Voucher{
		Market:   "Carrefour",
		Value:    100,
		Discount: decimal.NewFromInt(10),
		Currency: entity.DefaultCurrency,
	}, nil)

	rec, env := f.do(t, http.MethodPost, "/api/v1/vouchers", `{"market":"Carrefour","value":100,"discount":"10"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var voucher entity.Voucher
	require.NoError(t, json.Unmarshal(env.Data, &voucher))
	assert.Equal(t, "$", voucher.Currency)
}

func TestDiscountRejectsNegativeAmounts(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "negative cart total", body: `{"cart_total":"-50","voucher_balance":"20"}`},
		{name: "negative voucher balance", body: `{"cart_total":"50","voucher_balance":"-20"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t, stubHealth{})
			f.loggedInAs(entity.RoleCustomer)

			rec, env := f.do(t, http.MethodPost, "/api/v1/vouchers/discount", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		})
	}

	t.Run("non-negative amounts are allocated", func(t *testing.T) {
		f := newAPIFixture(t, stubHealth{})
		f.loggedInAs(entity.RoleCustomer)
		f.voucher.EXPECT().CalculateDiscount(mock.Anything, mock.Anything).
			Return(entity.CalculateDiscount(decimal.NewFromInt(50), decimal.NewFromInt(20)))

		rec, env := f.do(t, http.MethodPost, "/api/v1/vouchers/discount", `{"cart_total":"50","voucher_balance":"20"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var result entity.DiscountResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.True(t, result.DiscountApplied.Equal(decimal.NewFromInt(20)))
	})
}

func TestPreviewRejectsNegativeVoucherBalance(t *testing.T) {
	f := newAPIFixture(t, stubHealth{})
	f.loggedInAs(entity.RoleCustomer)
	f.allow(entity.RoleCustomer)

	body := `{"product_ids":["` + uuid.NewString() + `"],"voucher_balance":"-5"}`
	rec, env := f.do(t, http.MethodPost, "/api/v1/market/preview", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestStorageFailureIsInsufficientStorage(t *testing.T) {
	f := newAPIFixture(t, stubHealth{})
	f.loggedInAs(entity.RoleAdmin)
	f.allow(entity.RoleAdmin)

	f.dashboard.EXPECT().Stats(mock.Anything).
		Return(nil, domainerrors.NewStorageExecuteError(errors.New("quota exceeded"), "write users"))

	rec, env := f.do(t, http.MethodGet, "/api/v1/dashboard", "")

	assert.Equal(t, http.StatusInsufficientStorage, rec.Code)
	assert.Equal(t, "STORAGE_ERROR", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestUnknownRoute(t *testing.T) {
	f := newAPIFixture(t, stubHealth{})

	rec, env := f.do(t, http.MethodGet, "/nowhere", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestMeResolvesSessionActor(t *testing.T) {
	f := newAPIFixture(t, stubHealth{})
	f.loggedInAs(entity.RoleCustomer)
	f.user.EXPECT().GetProfile(mock.Anything, "someone@recyclemart.io").
		Return(&entity.User{Email: "someone@recyclemart.io", Role: entity.RoleCustomer}, nil).Twice()

	for _, target := range []string{"/api/v1/auth/me", "/api/v1/users/me"} {
		rec, env := f.do(t, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code, target)

		var user entity.User
		require.NoError(t, json.Unmarshal(env.Data, &user))
		assert.Equal(t, "someone@recyclemart.io", user.Email)
		assert.Equal(t, entity.RoleCustomer, user.Role)
	}
}
