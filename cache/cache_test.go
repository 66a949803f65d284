package cache

import (
	"testing"
	"time"
)

func TestSetDefaultAndGet(t *testing.T) {
	c := New(time.Minute)
	c.SetDefault("health:db", "connected")

	v, ok := c.Get("health:db")
	if !ok || v.(string) != "connected" {
		t.Fatalf("Get() = %v, %v", v, ok)
	}

	c.Delete("health:db")
	if _, ok := c.Get("health:db"); ok {
		t.Fatal("entry still present after Delete")
	}
}

func TestEntryExpires(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Fatal("expired entry returned")
	}
}
