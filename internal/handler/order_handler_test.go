package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"storefront/internal/domain/model"
	"storefront/internal/handler"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"
)

// =====================
// Mocks（handlerテスト用）
// =====================

type HProductRepoMock struct{ mock.Mock }

func (m *HProductRepoMock) ListActive(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	panic("not used")
}

func (m *HProductRepoMock) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	panic("not used")
}

func (m *HProductRepoMock) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

type HInventoryRepoMock struct{ mock.Mock }

func (m *HInventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

type HOrderRepoMock struct{ mock.Mock }

func (m *HOrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *HOrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

type HOrderItemRepoMock struct{ mock.Mock }

func (m *HOrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *HOrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

type HLocationRepoMock struct{ mock.Mock }

func (m *HLocationRepoMock) ListActive(ctx context.Context) ([]model.DeliveryLocation, error) {
	panic("not used")
}

func (m *HLocationRepoMock) FindByID(ctx context.Context, locationID int64) (model.DeliveryLocation, error) {
	args := m.Called(ctx, locationID)
	l, _ := args.Get(0).(model.DeliveryLocation)
	return l, args.Error(1)
}

type hTxRepos struct {
	orders     *HOrderRepoMock
	orderItems *HOrderItemRepoMock
	products   *HProductRepoMock
	inventory  *HInventoryRepoMock
}

func (r *hTxRepos) Orders() repo.OrderRepository         { return r.orders }
func (r *hTxRepos) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *hTxRepos) Products() repo.ProductRepository     { return r.products }
func (r *hTxRepos) Inventory() repo.InventoryRepository  { return r.inventory }

type hTxManager struct{ repos *hTxRepos }

func (m *hTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

type noopNotifier struct{}

func (noopNotifier) NotifyOrderCreated(context.Context, model.Order, []model.OrderItem) bool {
	return true
}

// =====================
// helpers
// =====================

func newFixture() (*hTxManager, *echo.Echo) {
	tx := &hTxManager{repos: &hTxRepos{
		orders:     new(HOrderRepoMock),
		orderItems: new(HOrderItemRepoMock),
		products:   new(HProductRepoMock),
		inventory:  new(HInventoryRepoMock),
	}}

	gen := func() (string, error) { return "ORD-TEST0001", nil }
	uc := usecase.NewOrderUsecase(tx, new(HLocationRepoMock), noopNotifier{}, gen, zap.NewNop())
	h := handler.NewOrderHandler(uc)

	e := echo.New()
	h.RegisterRoutes(e.Group("/v1"))
	return tx, e
}

func doJSON(e *echo.Echo, method string, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// =====================
// POST /v1/orders
// =====================

func TestOrderHandler_Create_Success(t *testing.T) {
	tx, e := newFixture()

	tx.repos.products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "Widget", Price: decimal.RequireFromString("10.00"), Quantity: 5, IsActive: true}, nil)
	tx.repos.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(2)).Return(true, nil)
	tx.repos.orders.On("Create", mock.Anything, mock.Anything).Return(int64(42), nil)
	tx.repos.orderItems.On("CreateBulk", mock.Anything, int64(42), mock.Anything).Return(nil)

	rec := doJSON(e, http.MethodPost, "/v1/orders", `{
		"shipping_address": {"name":"Jane","phone":"555","address":"1 Main St"},
		"payment_method": "cash",
		"items": [{"product_id":1,"quantity":2}]
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Order   struct {
			OrderNumber string `json:"order_number"`
			Total       string `json:"total"`
		} `json:"order"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Order created successfully", resp.Message)
	assert.Equal(t, "ORD-TEST0001", resp.Order.OrderNumber)
	assert.Equal(t, "20.00", resp.Order.Total)
}

func TestOrderHandler_Create_ValidationError(t *testing.T) {
	_, e := newFixture()

	//nameとitemsが無い
	rec := doJSON(e, http.MethodPost, "/v1/orders", `{
		"shipping_address": {"phone":"555","address":"1 Main St"},
		"payment_method": "cash",
		"items": []
	}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "shipping_address.name")
	assert.Contains(t, resp.Errors, "items")
}

func TestOrderHandler_Create_InsufficientStock(t *testing.T) {
	tx, e := newFixture()

	tx.repos.products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "Widget", Price: decimal.RequireFromString("10.00"), Quantity: 1, IsActive: true}, nil)
	tx.repos.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(2)).Return(false, nil)

	rec := doJSON(e, http.MethodPost, "/v1/orders", `{
		"shipping_address": {"name":"Jane","phone":"555","address":"1 Main St"},
		"payment_method": "cash",
		"items": [{"product_id":1,"quantity":2}]
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Insufficient quantity for Widget")
}

// =====================
// GET /v1/orders/:id
// =====================

func TestOrderHandler_Detail_NotFound(t *testing.T) {
	tx, e := newFixture()

	tx.repos.orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{}, repo.ErrNotFound)

	rec := doJSON(e, http.MethodGet, "/v1/orders/9", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Order not found", resp.Message)
}

func TestOrderHandler_Detail_InvalidID(t *testing.T) {
	_, e := newFixture()

	rec := doJSON(e, http.MethodGet, "/v1/orders/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
