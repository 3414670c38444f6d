package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/controllers"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/gateway"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/graph"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/services"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/auth"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/router"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/workerpool"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/ws"
)

type stubGateway struct{ orders int }

func (g *stubGateway) KeyID() string { return "rzp_test_key" }

func (g *stubGateway) CreateOrder(_ context.Context, amount float64, currency, receipt string) (*gateway.GatewayOrder, error) {
	g.orders++
	return &gateway.GatewayOrder{
		ID:       fmt.Sprintf("order_stub_%d", g.orders),
		Amount:   int64(amount * 100),
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (g *stubGateway) VerifySignature(_, _, _ string) bool { return true }

// newTestAPI wires the full route table against an in-memory database.
func newTestAPI(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Blog{},
		&models.Order{}, &models.OrderItem{}, &models.Sale{},
	))

	users := repositories.NewUserRepository(db)
	products := repositories.NewProductRepository(db)
	blogs := repositories.NewBlogRepository(db)
	orders := repositories.NewOrderRepository(db)
	sales := repositories.NewSaleRepository(db)

	productSvc := services.NewProductService(products)
	blogSvc := services.NewBlogService(blogs)
	orderSvc := services.NewOrderService(orders, products)
	paymentSvc := services.NewPaymentService(sales, products, &stubGateway{})
	statsSvc := services.NewStatsService(users, products, orders, blogs, sales)

	pool := workerpool.New(1, 4)
	t.Cleanup(pool.Close)
	aiSvc := services.NewAIService(nil, pool, productSvc)

	schema, err := graph.NewSchema(productSvc, blogSvc)
	require.NoError(t, err)

	r := router.New()
	Register(r, Controllers{
		Auth:     controllers.NewAuthController(services.NewAuthService(users)),
		Products: controllers.NewProductController(productSvc),
		Blogs:    controllers.NewBlogController(blogSvc),
		Orders:   controllers.NewOrderController(orderSvc),
		Payments: controllers.NewPaymentController(paymentSvc),
		Users:    controllers.NewUserController(services.NewUserService(users)),
		Stats:    controllers.NewStatsController(statsSvc),
		AI:       controllers.NewAIController(aiSvc),
		Media:    controllers.NewMediaController(),
		Hub:      ws.NewHub(),
		Schema:   schema,
	})
	return r.Handler(), db
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env apiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec, env
}

func tokenFor(t *testing.T, userID uint, role string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func seedActiveProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	p := models.Product{Name: name, Slug: name, Price: price, Stock: 10, Status: models.ProductActive}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestAdminRouteRequiresToken(t *testing.T) {
	h, _ := newTestAPI(t)

	rec, env := doJSON(t, h, http.MethodGet, "/api/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Unauthorized", env.Error)
}

func TestAdminRouteRejectsCustomerRole(t *testing.T) {
	h, _ := newTestAPI(t)

	rec, env := doJSON(t, h, http.MethodGet, "/api/admin/users", tokenFor(t, 1, models.RoleUser), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, env.Success)
}

func TestAdminRouteAllowsAdmin(t *testing.T) {
	h, _ := newTestAPI(t)

	rec, env := doJSON(t, h, http.MethodGet, "/api/admin/users", tokenFor(t, 1, models.RoleAdmin), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestAdminRouteRejectsGarbageToken(t *testing.T) {
	h, _ := newTestAPI(t)

	rec, _ := doJSON(t, h, http.MethodGet, "/api/admin/users", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPaymentInitiateUnknownProduct(t *testing.T) {
	h, _ := newTestAPI(t)

	rec, env := doJSON(t, h, http.MethodPost, "/api/payment/initiate", "", map[string]interface{}{
		"product_id": 9999,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "product not found", env.Error)
}

func TestPaymentInitiateReturnsCheckoutFields(t *testing.T) {
	h, db := newTestAPI(t)
	p := seedActiveProduct(t, db, "ebook", 250)

	rec, env := doJSON(t, h, http.MethodPost, "/api/payment/initiate", "", map[string]interface{}{
		"product_id":     p.ID,
		"customer_email": "buyer@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	require.True(t, env.Success)

	var result services.InitiateResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "order_stub_1", result.GatewayOrderID)
	assert.Equal(t, 250.0, result.Amount)
	assert.Equal(t, "rzp_test_key", result.KeyID)

	var sale models.Sale
	require.NoError(t, db.Where("gateway_order_id = ?", result.GatewayOrderID).First(&sale).Error)
	assert.Equal(t, models.PaymentPending, sale.PaymentStatus)
}

func TestOrderStoreRequiresAuth(t *testing.T) {
	h, _ := newTestAPI(t)

	rec, _ := doJSON(t, h, http.MethodPost, "/api/orders", "", map[string]interface{}{
		"items": []map[string]interface{}{{"product_id": 1, "quantity": 1}},
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderStoreEmptyItems(t *testing.T) {
	h, _ := newTestAPI(t)

	rec, env := doJSON(t, h, http.MethodPost, "/api/orders", tokenFor(t, 7, models.RoleUser), map[string]interface{}{
		"items": []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestOrderStorePricesServerSide(t *testing.T) {
	h, db := newTestAPI(t)
	p := seedActiveProduct(t, db, "course", 100)

	rec, env := doJSON(t, h, http.MethodPost, "/api/orders", tokenFor(t, 7, models.RoleUser), map[string]interface{}{
		"items": []map[string]interface{}{{"product_id": p.ID, "quantity": 2}},
		"total": 1, // ignored
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	require.True(t, env.Success)

	var order models.Order
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, 200.0, order.Total)
	assert.Equal(t, uint(7), order.UserID)
}

func TestCustomerCannotReadOthersOrder(t *testing.T) {
	h, db := newTestAPI(t)

	order := models.Order{UserID: 1, Status: models.OrderPending, Total: 50}
	require.NoError(t, db.Create(&order).Error)

	rec, _ := doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/orders/%d", order.ID), tokenFor(t, 2, models.RoleUser), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/orders/%d", order.ID), tokenFor(t, 1, models.RoleUser), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOrderStatusIllegalTransition(t *testing.T) {
	h, db := newTestAPI(t)

	order := models.Order{UserID: 1, Status: models.OrderPending, Total: 50}
	require.NoError(t, db.Create(&order).Error)

	rec, env := doJSON(t, h, http.MethodPatch, fmt.Sprintf("/api/admin/orders/%d/status", order.ID),
		tokenFor(t, 9, models.RoleAdmin), map[string]interface{}{"status": models.OrderCompleted})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, env.Success)
}

func TestStorefrontHidesDraftBlogs(t *testing.T) {
	h, db := newTestAPI(t)

	require.NoError(t, db.Create(&models.Blog{Title: "Draft", Slug: "draft", Status: models.BlogDraft}).Error)
	require.NoError(t, db.Create(&models.Blog{Title: "Live", Slug: "live", Status: models.BlogPublished}).Error)

	rec, env := doJSON(t, h, http.MethodGet, "/api/blogs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Items []models.Blog `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, "live", data.Items[0].Slug)

	rec, _ = doJSON(t, h, http.MethodGet, "/api/blogs/draft", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGraphQLCatalogQuery(t *testing.T) {
	h, db := newTestAPI(t)
	seedActiveProduct(t, db, "bundle", 99)

	req := httptest.NewRequest(http.MethodGet, "/api/graphql?query={products{name,effectivePrice}}", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"bundle"`)
	assert.NotContains(t, rec.Body.String(), `"errors"`)
}
