package ws

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

type fakeConn struct {
	mu     sync.Mutex
	msgs   [][]byte
	fail   bool
	closed bool
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.msgs = append(c.msgs, data)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

func (c *fakeConn) received() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.msgs)
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestEncodeEnvelope(t *testing.T) {
	msg, err := Encode("stock_adjusted", map[string]interface{}{"new_stock": 7, "type": "ignored"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(msg, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["type"] != "stock_update" || got["action"] != "stock_adjusted" {
		t.Errorf("unexpected envelope: %v", got)
	}
	if got["new_stock"].(float64) != 7 {
		t.Errorf("payload not merged: %v", got)
	}
}

func TestHubBroadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(nil)
	done := make(chan struct{})
	go func() { h.Run(ctx); close(done) }()

	good, bad := &fakeConn{}, &fakeConn{fail: true}
	h.Add(good)
	h.Add(bad)
	eventually(t, func() bool { return h.ClientCount() == 2 })

	h.Publish("product_created", map[string]interface{}{"sku": "A-1"})
	eventually(t, func() bool { return good.received() == 1 && h.ClientCount() == 1 })
	if !bad.isClosed() {
		t.Error("failing connection should be closed")
	}

	cancel()
	<-done
	if !good.isClosed() || h.ClientCount() != 0 {
		t.Error("stopping the hub should close every connection")
	}
}

func TestPublishDoesNotBlock(t *testing.T) {
	h := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))

	finished := make(chan struct{})
	go func() {
		for i := 0; i < queueSize+10; i++ {
			h.Publish("sale_created", nil)
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked with no hub running")
	}
}
