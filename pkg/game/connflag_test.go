package game

import (
	"sync"
	"testing"
)

func TestConnFlagGetSet(t *testing.T) {
	f := NewConnFlag(true)
	if !f.Get() {
		t.Fatal("expected initial value true")
	}
	f.Set(false)
	if f.Get() {
		t.Fatal("expected false after Set(false)")
	}
}

func TestConnFlagConcurrentAccess(t *testing.T) {
	f := NewConnFlag(true)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); f.Set(i%2 == 0) }()
		go func() { defer wg.Done(); f.Get() }()
	}
	wg.Wait()
}
