package ws

import (
	"encoding/json"
	"testing"
	"time"

	"go-inventory-catalog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishQueuesJSON(t *testing.T) {
	hub := NewHub()
	product := &model.Product{ID: 1, Name: "Aviar", SKU: "DG-012"}
	hub.Publish(model.NewCatalogEvent(model.ActionProductCreated, product, "created"))

	require.Len(t, hub.Broadcast, 1)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(<-hub.Broadcast, &got))
	assert.Equal(t, "catalog_update", got["type"])
	assert.Equal(t, "product_created", got["action"])
	assert.Equal(t, "DG-012", got["product"].(map[string]interface{})["sku"])
}

func TestPublishDropsWhenFull(t *testing.T) {
	hub := NewHub()
	for i := 0; i < broadcastBuffer+10; i++ {
		hub.Publish(model.NewCatalogEvent(model.ActionProductDeleted, nil, "deleted"))
	}
	assert.Len(t, hub.Broadcast, broadcastBuffer)
}

func TestStopEndsRun(t *testing.T) {
	hub := NewHub()
	done := make(chan struct{})
	go func() {
		hub.Run()
		close(done)
	}()
	hub.Stop()
	<-done
	assert.Zero(t, hub.ClientCount())
}

func TestRegisterAfterStopReturns(t *testing.T) {
	hub := NewHub()
	hub.Stop()

	done := make(chan bool)
	go func() {
		ok := hub.register(nil)
		hub.unregister(nil)
		done <- ok
	}()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("register blocked on a stopped hub")
	}
}
