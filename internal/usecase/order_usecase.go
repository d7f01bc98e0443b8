package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/internal/domain/model"
	"storefront/internal/ordernum"
	repo "storefront/internal/repository"
)

// 商品が非公開
type UnavailableProductError struct {
	Name string
}

func (e *UnavailableProductError) Error() string {
	return fmt.Sprintf("Product %s is not available", e.Name)
}

// 在庫不足
type InsufficientStockError struct {
	Name      string
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient quantity for %s (available: %d)", e.Name, e.Available)
}

// 注文番号が既に使われていた。トランザクションごと作り直す合図。
var errOrderNumberTaken = errors.New("order number taken")

// OrderNotifierは注文確定後の通知。配送結果は注文の成否に影響させない。
type OrderNotifier interface {
	NotifyOrderCreated(ctx context.Context, order model.Order, items []model.OrderItem) bool
}

type OrderUsecase struct {
	tx        repo.TransactionManager
	locations repo.DeliveryLocationRepository
	notifier  OrderNotifier
	newNumber ordernum.Generator
	logger    *zap.Logger
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	locations repo.DeliveryLocationRepository,
	notifier OrderNotifier,
	newNumber ordernum.Generator,
	logger *zap.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		tx:        tx,
		locations: locations,
		notifier:  notifier,
		newNumber: newNumber,
		logger:    logger,
	}
}

type AddressInput struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Email      string `json:"email"`
}

type OrderItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type PlaceOrderInput struct {
	ShippingAddress    AddressInput
	BillingAddress     *AddressInput
	PaymentMethod      string
	DeliveryLocationID *int64
	RequiresDelivery   bool
	Items              []OrderItemInput
}

type OrderItemOutput struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type OrderOutput struct {
	ID                 int64             `json:"id"`
	OrderNumber        string            `json:"order_number"`
	Status             string            `json:"status"`
	Subtotal           decimal.Decimal   `json:"subtotal"`
	Tax                decimal.Decimal   `json:"tax"`
	Shipping           decimal.Decimal   `json:"shipping"`
	Total              decimal.Decimal   `json:"total"`
	ShippingAddress    model.Address     `json:"shipping_address"`
	BillingAddress     model.Address     `json:"billing_address"`
	PaymentMethod      string            `json:"payment_method"`
	PaymentStatus      string            `json:"payment_status"`
	DeliveryLocationID *int64            `json:"delivery_location_id,omitempty"`
	RequiresDelivery   bool              `json:"requires_delivery"`
	CreatedAt          time.Time         `json:"created_at"`
	Items              []OrderItemOutput `json:"items"`
}

// 入力検証。DBには触らない。
func validatePlaceOrder(in PlaceOrderInput) error {
	fe := fieldErrors{}

	ship := in.ShippingAddress
	if strings.TrimSpace(ship.Name) == "" {
		fe.add("shipping_address.name", "The name field is required.")
	} else if len(ship.Name) > 255 {
		fe.add("shipping_address.name", "The name may not be greater than 255 characters.")
	}
	if strings.TrimSpace(ship.Phone) == "" {
		fe.add("shipping_address.phone", "The phone field is required.")
	} else if len(ship.Phone) > 20 {
		fe.add("shipping_address.phone", "The phone may not be greater than 20 characters.")
	}
	if strings.TrimSpace(ship.Address) == "" {
		fe.add("shipping_address.address", "The address field is required.")
	} else if len(ship.Address) > 500 {
		fe.add("shipping_address.address", "The address may not be greater than 500 characters.")
	}

	if strings.TrimSpace(in.PaymentMethod) == "" {
		fe.add("payment_method", "The payment method field is required.")
	} else if len(in.PaymentMethod) > 50 {
		fe.add("payment_method", "The payment method may not be greater than 50 characters.")
	}

	if len(in.Items) == 0 {
		fe.add("items", "The items field is required.")
	}
	for i, it := range in.Items {
		if it.ProductID <= 0 {
			fe.add(fmt.Sprintf("items.%d.product_id", i), "The product id field is required.")
		}
		if it.Quantity < 1 {
			fe.add(fmt.Sprintf("items.%d.quantity", i), "The quantity must be at least 1.")
		}
	}

	return fe.err()
}

func toAddress(in AddressInput) model.Address {
	return model.Address{
		Name:       in.Name,
		Phone:      in.Phone,
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Email:      in.Email,
	}
}

func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderOutput, error) {
	if err := validatePlaceOrder(in); err != nil {
		return OrderOutput{}, err
	}

	//配送先が指定されていれば存在＋公開チェック
	if in.DeliveryLocationID != nil {
		loc, err := u.locations.FindByID(ctx, *in.DeliveryLocationID)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if errors.Is(err, repo.ErrNotFound) || !loc.IsActive {
			fe := fieldErrors{}
			fe.add("delivery_location_id", "The selected delivery location is invalid.")
			return OrderOutput{}, fe.err()
		}
	}

	shipping := toAddress(in.ShippingAddress)
	billing := shipping
	if in.BillingAddress != nil {
		billing = toAddress(*in.BillingAddress)
	}

	var (
		created model.Order
		items   []model.OrderItem
	)

	//注文処理はトランザクション。
	//一意制約違反の出たトランザクションはそれ以上使えないので、
	//注文番号が衝突したら番号を作り直して新しいトランザクションで最初からやり直す。
	for attempt := 0; ; attempt++ {
		num, err := u.newNumber()
		if err != nil {
			return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "order number error")
		}

		err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
			subtotal := decimal.Zero
			orderItems := make([]model.OrderItem, 0, len(in.Items))

			for i, it := range in.Items {
				//商品取得
				p, err := r.Products().FindByID(ctx, it.ProductID)
				if errors.Is(err, repo.ErrNotFound) {
					fe := fieldErrors{}
					fe.add(fmt.Sprintf("items.%d.product_id", i), "The selected product id is invalid.")
					return fe.err()
				}
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				if !p.IsActive {
					return &UnavailableProductError{Name: p.Name}
				}

				//在庫減算（足りないなら false）
				ok, err := r.Inventory().DecreaseStockIfEnough(ctx, p.ID, it.Quantity)
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				if !ok {
					return &InsufficientStockError{Name: p.Name, Available: p.Quantity}
				}

				//サーバー側の現在価格で再計算（クライアント価格は信用しない）
				line := p.Price.Mul(decimal.NewFromInt(it.Quantity))
				subtotal = subtotal.Add(line)

				//スナップショット
				orderItems = append(orderItems, model.OrderItem{
					ProductID:           p.ID,
					ProductNameSnapshot: p.Name,
					UnitPriceSnapshot:   p.Price,
					Quantity:            it.Quantity,
					CreatedAt:           time.Now(),
				})
			}

			tax := decimal.Zero
			//配送料は別エンドポイントの表示用で、合計には入れない
			shippingFee := decimal.Zero
			total := subtotal.Add(tax).Add(shippingFee)

			order := model.Order{
				OrderNumber:        num,
				Status:             model.OrderStatusPending,
				Subtotal:           subtotal,
				Tax:                tax,
				Shipping:           shippingFee,
				Total:              total,
				ShippingAddress:    shipping,
				BillingAddress:     billing,
				PaymentMethod:      in.PaymentMethod,
				PaymentStatus:      model.PaymentStatusPending,
				DeliveryLocationID: in.DeliveryLocationID,
				RequiresDelivery:   in.RequiresDelivery,
				CreatedAt:          time.Now(),
				UpdatedAt:          time.Now(),
			}

			orderID, err := r.Orders().Create(ctx, order)
			if errors.Is(err, repo.ErrDuplicate) {
				return errOrderNumberTaken
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			order.ID = orderID

			//注文明細一括作成
			if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			for i := range orderItems {
				orderItems[i].OrderID = orderID
			}

			created = order
			items = orderItems
			return nil
		})
		if errors.Is(err, errOrderNumberTaken) {
			if attempt < 2 {
				continue
			}
			return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "order number conflict")
		}
		if err != nil {
			return OrderOutput{}, err
		}
		break
	}

	//コミット後に通知。失敗してもログだけ残して注文は成功のまま。
	if u.notifier != nil {
		if ok := u.notifier.NotifyOrderCreated(ctx, created, items); !ok {
			u.logger.Warn("order notification delivery incomplete",
				zap.String("order_number", created.OrderNumber))
		}
	}

	return toOrderOutput(created, items), nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductNameSnapshot,
			UnitPrice: it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
			LineTotal: it.UnitPriceSnapshot.Mul(decimal.NewFromInt(it.Quantity)),
		})
	}

	return OrderOutput{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		Status:             string(o.Status),
		Subtotal:           o.Subtotal,
		Tax:                o.Tax,
		Shipping:           o.Shipping,
		Total:              o.Total,
		ShippingAddress:    o.ShippingAddress,
		BillingAddress:     o.BillingAddress,
		PaymentMethod:      o.PaymentMethod,
		PaymentStatus:      string(o.PaymentStatus),
		DeliveryLocationID: o.DeliveryLocationID,
		RequiresDelivery:   o.RequiresDelivery,
		CreatedAt:          o.CreatedAt,
		Items:              outItems,
	}
}
