package cache

import (
	"bytes"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

var _ fiber.Storage = (*Cache)(nil)

func TestCacheSetGetDelete(t *testing.T) {
	c := New(time.Hour)
	defer c.Close()

	val := []byte("3")
	if err := c.Set("ip:1", val, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val[0] = '9'

	got, err := c.Get("ip:1")
	if err != nil || !bytes.Equal(got, []byte("3")) {
		t.Errorf("Expected stored copy %q, got %q (%v)", "3", got, err)
	}

	if err := c.Delete("ip:1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got, _ := c.Get("ip:1"); got != nil {
		t.Errorf("Expected nil after delete, got %q", got)
	}

	// Empty keys and values are ignored
	_ = c.Set("", []byte("x"), 0)
	_ = c.Set("empty", nil, 0)
	if c.Len() != 0 {
		t.Errorf("Expected empty cache, got %d items", c.Len())
	}
}

func TestCacheExpiration(t *testing.T) {
	c := New(time.Hour)
	defer c.Close()

	_ = c.Set("short", []byte("a"), time.Millisecond)
	_ = c.Set("forever", []byte("b"), 0)
	time.Sleep(5 * time.Millisecond)

	if got, _ := c.Get("short"); got != nil {
		t.Errorf("Expected expired item to be hidden, got %q", got)
	}
	if got, _ := c.Get("forever"); !bytes.Equal(got, []byte("b")) {
		t.Errorf("Expected item without expiration to persist, got %q", got)
	}

	c.DeleteExpired()
	if c.Len() != 1 {
		t.Errorf("Expected 1 item after sweep, got %d", c.Len())
	}

	_ = c.Reset()
	if c.Len() != 0 {
		t.Errorf("Expected empty cache after reset, got %d", c.Len())
	}
}

func TestCacheJanitorAndClose(t *testing.T) {
	c := New(2 * time.Millisecond)

	_ = c.Set("short", []byte("a"), time.Millisecond)
	deadline := time.Now().Add(time.Second)
	for c.Len() != 0 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	if c.Len() != 0 {
		t.Error("Expected janitor to drop the expired item")
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Second Close failed: %v", err)
	}

	// The store keeps working for limiters that outlive a Close
	_ = c.Set("ip:2", []byte("1"), time.Minute)
	if got, _ := c.Get("ip:2"); !bytes.Equal(got, []byte("1")) {
		t.Errorf("Expected value after Close, got %q", got)
	}
}
