package cart_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront/cart"
	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, `{"error": "temporary"}`, http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"products": [{"id": 1, "name": "Dashiki", "price": 8500}]}`)
	}))
	defer srv.Close()

	client := cart.NewClient(srv.URL)
	products, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Dashiki", products[0].Name)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": "Product not found"}`)
	}))
	defer srv.Close()

	client := cart.NewClient(srv.URL)
	_, err := client.Product(context.Background(), 99999)

	var apiErr *cart.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Product not found", apiErr.Message)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestClientGivesUpAfterRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, `{"error": "down"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := cart.NewClient(srv.URL)
	_, err := client.Products(context.Background())

	var apiErr *cart.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestClientSendsPartialUpdates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/admin/products/3", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		fmt.Fprint(w, `{"product": {"id": 3, "name": "Gele", "price": 9000}}`)
	}))
	defer srv.Close()

	client := cart.NewClient(srv.URL)
	product, err := client.UpdateProduct(context.Background(), 3, map[string]int{"price": 9000})
	require.NoError(t, err)
	assert.Equal(t, 9000, product.Price)
}

func TestCatalogDiscardsStaleResponses(t *testing.T) {
	release := make(chan struct{})
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			// hold the first fetch until a later one has completed
			<-release
			fmt.Fprint(w, `{"products": [{"id": 1, "name": "stale"}]}`)
			return
		}
		fmt.Fprint(w, `{"products": [{"id": 1, "name": "fresh"}]}`)
	}))
	defer srv.Close()

	catalog := cart.NewCatalog(cart.NewClient(srv.URL))

	first := make(chan []models.Product, 1)
	go func() {
		products, err := catalog.Refresh(context.Background())
		assert.NoError(t, err)
		first <- products
	}()

	// wait until the slow fetch is in flight
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) >= 1
	}, time.Second, 5*time.Millisecond)

	fresh, err := catalog.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "fresh", fresh[0].Name)

	close(release)
	slow := <-first
	require.Len(t, slow, 1)
	assert.Equal(t, "fresh", slow[0].Name, "the older fetch must not win")

	held := catalog.Products()
	require.Len(t, held, 1)
	assert.Equal(t, "fresh", held[0].Name)
}
