package dupindex

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/subhdotsol/FileOrganizer/pkg/hasher"
)

func digestFor(b byte) hasher.Digest {
	var d hasher.Digest
	d[0] = b
	return d
}

func TestRegisterAndLookup(t *testing.T) {
	idx := New()
	d := digestFor(1)

	if _, ok := idx.Lookup(d); ok {
		t.Error("Lookup() on empty index = true, want false")
	}

	if !idx.Register(d, "/dest/a.txt") {
		t.Error("Register() first call = false, want true")
	}

	path, ok := idx.Lookup(d)
	if !ok {
		t.Fatal("Lookup() after Register = false, want true")
	}
	if path != "/dest/a.txt" {
		t.Errorf("Lookup() = %q, want /dest/a.txt", path)
	}
}

func TestRegisterSecondLoses(t *testing.T) {
	idx := New()
	d := digestFor(2)

	if !idx.Register(d, "/dest/first.txt") {
		t.Fatal("Register() first call = false, want true")
	}
	if idx.Register(d, "/dest/second.txt") {
		t.Error("Register() second call = true, want false")
	}

	// Canonical entry is never displaced.
	path, _ := idx.Lookup(d)
	if path != "/dest/first.txt" {
		t.Errorf("Lookup() after losing Register = %q, want /dest/first.txt", path)
	}
}

func TestRegisterDistinctDigests(t *testing.T) {
	idx := New()

	for b := byte(0); b < 10; b++ {
		if !idx.Register(digestFor(b), fmt.Sprintf("/dest/%d", b)) {
			t.Errorf("Register() for distinct digest %d = false, want true", b)
		}
	}

	if idx.Len() != 10 {
		t.Errorf("Len() = %d, want 10", idx.Len())
	}
}

func TestRegisterConcurrentSingleWinner(t *testing.T) {
	idx := New()
	d := digestFor(3)

	const callers = 64
	var winners atomic.Int32
	var wg sync.WaitGroup

	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			<-start
			if idx.Register(d, fmt.Sprintf("/dest/%d.txt", n)) {
				winners.Add(1)
			}
		}(i)
	}

	close(start)
	wg.Wait()

	if got := winners.Load(); got != 1 {
		t.Errorf("concurrent Register winners = %d, want exactly 1", got)
	}
	if idx.Len() != 1 {
		t.Errorf("Len() = %d, want 1", idx.Len())
	}
}
