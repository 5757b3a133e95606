package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sandy-me/Inventory-management-system/database"
	"github.com/Sandy-me/Inventory-management-system/models"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	manager := database.NewWithDialector(sqlite.Open(":memory:"))
	t.Cleanup(func() { manager.Release() })

	db, err := manager.Acquire()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	return NewServer(manager)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func TestCategoryRoutes(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/categories/", map[string]interface{}{
		"category_name": "Beverages",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Category
	decode(t, resp, &created)
	assert.Greater(t, created.CategoryID, uint(0))
	assert.Equal(t, "Beverages", created.Name)

	resp = doJSON(t, server, http.MethodGet, "/categories/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed []models.Category
	decode(t, resp, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, created.CategoryID, listed[0].CategoryID)

	resp = doJSON(t, server, http.MethodDelete, "/categories/404", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var deleted map[string]bool
	decode(t, resp, &deleted)
	assert.False(t, deleted["deleted"])
}

func TestProductLowStockAlertRoute(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/products/", map[string]interface{}{
		"name":              "Cola",
		"sku":               "COLA-001",
		"quantity_in_stock": 5,
		"reorder_level":     10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, server, http.MethodGet, "/inventory/low-stock-alert", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var alert struct {
		Message  string           `json:"message"`
		Products []models.Product `json:"products"`
	}
	decode(t, resp, &alert)
	assert.Equal(t, "Low stock alert for: Cola - Stock Level: 5\n", alert.Message)
	require.Len(t, alert.Products, 1)
}

func TestLowStockAlertRouteEmptyMessage(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, http.MethodGet, "/inventory/low-stock-alert", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var alert struct {
		Message string `json:"message"`
	}
	decode(t, resp, &alert)
	assert.Equal(t, "No low stock products.", alert.Message)
}

func TestBadIDIsRejectedBeforeTheCore(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, http.MethodDelete, "/products/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBatchRoutesScopedFetch(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/batches/", map[string]interface{}{
		"product_id":        7,
		"expiry_date":       "2025-01-01",
		"quantity_in_batch": 100,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, server, http.MethodGet, "/batches/?product_id=7", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var batches []models.Batch
	decode(t, resp, &batches)
	require.Len(t, batches, 1)
	assert.Equal(t, "2025-01-01", batches[0].ExpiryDate)

	resp = doJSON(t, server, http.MethodGet, "/batches/?product_id=8", nil)
	var none []models.Batch
	decode(t, resp, &none)
	assert.Empty(t, none)
}
