package store

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/storefront-client/internal/api"
	"github.com/iliyamo/storefront-client/internal/model"
	"github.com/iliyamo/storefront-client/internal/storage"
)

// fakeBackend is a stateful echo fixture standing in for the storefront
// backend: a fixed catalog, a real cart with server-computed totals and
// password-checked auth.  It only implements what the stores exercise.
type fakeBackend struct {
	mu         sync.Mutex
	catalog    []model.ProductSummary
	items       []model.CartItem
	nextItemID  int64
	orders      []model.Order
	nextOrderID int64

	// slowGate, when non-nil, blocks listing requests whose search term
	// is "slow" until the channel is closed.  Used to force wall-clock
	// completion order in race tests.
	slowGate chan struct{}
}

const (
	testEmail    = "ada@example.com"
	testPassword = "correct-horse"
	testToken    = "test-session-token"
)

func testUser() *model.User {
	return &model.User{
		ID:    5,
		Email: testEmail,
		Roles: []model.Role{{ID: 1, Name: model.RoleCustomer}},
	}
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		catalog: []model.ProductSummary{
			{ID: 1, Name: "Vitamin D3", Price: price("12.00"), Stock: 10, CategoryID: 1, CategoryName: "Vitamins"},
			{ID: 2, Name: "Omega-3", Price: price("18.50"), Stock: 4, CategoryID: 2, CategoryName: "Supplements"},
			{ID: 3, Name: "Protein Powder", Price: price("49.99"), Stock: 7, CategoryID: 3, CategoryName: "Protein"},
			{ID: 4, Name: "Zinc", Price: price("5.25"), Stock: 30, CategoryID: 1, CategoryName: "Vitamins"},
			{ID: 5, Name: "Collagen", Price: price("25.00"), Stock: 0, CategoryID: 2, CategoryName: "Supplements"},
		},
		nextItemID: 100,
	}
}

func (b *fakeBackend) handler() http.Handler {
	e := echo.New()

	e.POST("/auth/login", func(c echo.Context) error {
		var req model.Credentials
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
		}
		if req.Email != testEmail || req.Password != testPassword {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
		}
		return c.JSON(http.StatusOK, echo.Map{"jwt": testToken, "user": testUser()})
	})

	e.GET("/auth/me", func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") != "Bearer "+testToken {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		return c.JSON(http.StatusOK, testUser())
	})

	e.GET("/api/products", b.listProducts)
	e.GET("/api/products/featured", func(c echo.Context) error {
		return c.JSON(http.StatusOK, b.catalog[:2])
	})
	e.GET("/api/products/search", func(c echo.Context) error {
		b.waitIfSlow(c.QueryParam("query"))
		return c.JSON(http.StatusOK, b.match(c.QueryParam("query")))
	})
	e.GET("/api/products/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		for _, p := range b.catalog {
			if p.ID == id {
				return c.JSON(http.StatusOK, model.Product{
					ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock,
					Category: model.Category{ID: p.CategoryID, Name: p.CategoryName},
				})
			}
		}
		return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
	})
	e.GET("/api/categories", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []model.Category{
			{ID: 1, Name: "Vitamins"}, {ID: 2, Name: "Supplements"}, {ID: 3, Name: "Protein"},
		})
	})

	auth := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") != "Bearer "+testToken {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			return next(c)
		}
	}

	e.GET("/api/cart", auth(func(c echo.Context) error {
		return c.JSON(http.StatusOK, b.cart())
	}))
	e.POST("/api/cart/add", auth(func(c echo.Context) error {
		var req struct {
			ProductID int64 `json:"productId"`
			Quantity  int   `json:"quantity"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
		}
		if err := b.add(req.ProductID, req.Quantity); err != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err})
		}
		return c.JSON(http.StatusOK, b.cart())
	}))
	e.PUT("/api/cart/update", auth(func(c echo.Context) error {
		var req struct {
			ItemID   int64 `json:"itemId"`
			Quantity int   `json:"quantity"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
		}
		if err := b.update(req.ItemID, req.Quantity); err != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err})
		}
		return c.JSON(http.StatusOK, b.cart())
	}))
	e.DELETE("/api/cart/remove/:id", auth(func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		b.remove(id)
		return c.NoContent(http.StatusNoContent)
	}))
	e.DELETE("/api/cart/clear", auth(func(c echo.Context) error {
		b.mu.Lock()
		b.items = nil
		b.mu.Unlock()
		return c.NoContent(http.StatusNoContent)
	}))

	e.GET("/api/orders", auth(func(c echo.Context) error {
		b.mu.Lock()
		defer b.mu.Unlock()
		return c.JSON(http.StatusOK, b.orders)
	}))
	e.POST("/api/orders", auth(func(c echo.Context) error {
		var req model.OrderRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
		}
		cart := b.cart()
		if len(cart.Items) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "cart is empty"})
		}
		b.mu.Lock()
		b.nextOrderID++
		order := model.Order{
			ID:            b.nextOrderID,
			UserID:        cart.UserID,
			TotalAmount:   cart.TotalAmount,
			Status:        model.OrderPending,
			PaymentMethod: req.PaymentMethod,
		}
		for _, it := range cart.Items {
			order.Items = append(order.Items, model.OrderItem{
				ID: it.ID, ProductID: it.ProductID, ProductName: it.ProductName,
				Price: it.Price, Quantity: it.Quantity, Subtotal: it.Subtotal,
			})
		}
		b.orders = append(b.orders, order)
		b.items = nil // checkout consumes the cart
		b.mu.Unlock()
		return c.JSON(http.StatusCreated, order)
	}))
	e.PUT("/api/orders/:id/status", auth(func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		var req struct {
			Status string `json:"status"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.orders {
			if b.orders[i].ID == id {
				b.orders[i].Status = req.Status
				return c.JSON(http.StatusOK, b.orders[i])
			}
		}
		return c.JSON(http.StatusNotFound, echo.Map{"message": "order not found"})
	}))
	e.POST("/api/payments/create-session", auth(func(c echo.Context) error {
		var req struct {
			OrderID int64 `json:"orderId"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
		}
		return c.JSON(http.StatusOK, model.PaymentSession{
			SessionID:  "sess_1",
			SessionURL: "https://pay.example.com/sess_1",
		})
	}))

	return e
}

func (b *fakeBackend) waitIfSlow(query string) {
	b.mu.Lock()
	gate := b.slowGate
	b.mu.Unlock()
	if gate != nil && query == "slow" {
		<-gate
	}
}

func (b *fakeBackend) match(query string) []model.ProductSummary {
	out := []model.ProductSummary{}
	for _, p := range b.catalog {
		if query == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out
}

func (b *fakeBackend) listProducts(c echo.Context) error {
	b.waitIfSlow(c.QueryParam("search"))

	out := b.match(c.QueryParam("search"))
	if v := c.QueryParam("minPrice"); v != "" {
		min := price(v)
		out = filterPrice(out, func(p decimal.Decimal) bool { return p.GreaterThanOrEqual(min) })
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		max := price(v)
		out = filterPrice(out, func(p decimal.Decimal) bool { return p.LessThanOrEqual(max) })
	}
	if c.QueryParam("sort") == "price" {
		asc := c.QueryParam("order") != "desc"
		sort.Slice(out, func(i, j int) bool {
			if asc {
				return out[i].Price.LessThan(out[j].Price)
			}
			return out[j].Price.LessThan(out[i].Price)
		})
	}
	return c.JSON(http.StatusOK, model.Page[model.ProductSummary]{
		Content:       out,
		TotalElements: int64(len(out)),
		TotalPages:    1,
		Size:          len(out),
		Number:        0,
	})
}

func filterPrice(in []model.ProductSummary, keep func(decimal.Decimal) bool) []model.ProductSummary {
	out := in[:0:0]
	for _, p := range in {
		if keep(p.Price) {
			out = append(out, p)
		}
	}
	return out
}

func (b *fakeBackend) add(productID int64, quantity int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.catalog {
		if p.ID != productID {
			continue
		}
		if quantity > p.Stock {
			return "insufficient stock"
		}
		for i := range b.items {
			if b.items[i].ProductID == productID {
				b.items[i].Quantity += quantity
				b.items[i].Subtotal = b.items[i].Price.Mul(decimal.NewFromInt(int64(b.items[i].Quantity)))
				return ""
			}
		}
		b.nextItemID++
		b.items = append(b.items, model.CartItem{
			ID:          b.nextItemID,
			ProductID:   p.ID,
			ProductName: p.Name,
			Price:       p.Price,
			Quantity:    quantity,
			Subtotal:    p.Price.Mul(decimal.NewFromInt(int64(quantity))),
		})
		return ""
	}
	return "product not found"
}

func (b *fakeBackend) update(itemID int64, quantity int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		if b.items[i].ID == itemID {
			b.items[i].Quantity = quantity
			b.items[i].Subtotal = b.items[i].Price.Mul(decimal.NewFromInt(int64(quantity)))
			return ""
		}
	}
	return "cart item not found"
}

func (b *fakeBackend) remove(itemID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		if b.items[i].ID == itemID {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

// cart builds the authoritative snapshot: the total is always the sum
// of line subtotals, recomputed server-side.
func (b *fakeBackend) cart() model.Cart {
	b.mu.Lock()
	defer b.mu.Unlock()
	total := decimal.Zero
	items := make([]model.CartItem, len(b.items))
	copy(items, b.items)
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return model.Cart{ID: 1, UserID: 5, Items: items, TotalAmount: total}
}

// newTestStores wires a client and session store against the fixture.
func newTestStores(t *testing.T, b *fakeBackend) (*api.Client, *storage.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	sessions := storage.NewMemoryStore()
	return api.New(srv.URL, 5*time.Second, sessions, log), sessions
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}
