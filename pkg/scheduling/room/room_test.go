package room

import (
	"sync"
	"testing"
	"time"

	"github.com/vnykmshr/awaitpool/internal/testutil"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/task"
)

func TestNewRegistryPanicsOnInvalidSize(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for non-positive size")
		}
	}()
	NewRegistry(0)
}

func TestGetIdempotent(t *testing.T) {
	reg := NewRegistry(2)

	first := reg.Get("x")
	second := reg.Get("x")
	if first != second {
		t.Error("Get returned distinct pools for the same name")
	}

	other := reg.Get("y")
	if other == first {
		t.Error("distinct names should get distinct pools")
	}
}

func TestGetConcurrentFirstAccess(t *testing.T) {
	reg := NewRegistry(2)

	const goroutines = 64
	var wg sync.WaitGroup
	pools := make([]any, goroutines)

	start := make(chan struct{})
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			pools[i] = reg.Get("contested")
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if pools[i] != pools[0] {
			t.Fatalf("goroutine %d observed a different pool instance", i)
		}
	}
}

func TestRoomsShareRegistrySize(t *testing.T) {
	reg := NewRegistry(3)

	testutil.AssertEqual(t, reg.Get("a").Size(), 3)
	testutil.AssertEqual(t, reg.Get("b").Size(), 3)
	testutil.AssertEqual(t, reg.Size(), 3)
}

func TestNames(t *testing.T) {
	reg := NewRegistry(1)
	reg.Get("one")
	reg.Get("two")
	reg.Get("one")

	names := reg.Names()
	testutil.AssertEqual(t, len(names), 2)
}

func TestRoomPoolExecutes(t *testing.T) {
	reg := NewRegistry(1)

	tk, err := reg.Get("work").Submit(func(args task.Args, kwargs task.Kwargs) (any, error) {
		return "done", nil
	})
	testutil.AssertNoError(t, err)
	testutil.Eventually(t, tk.Done, time.Second, time.Millisecond, "room pool never ran the task")
	testutil.AssertEqual(t, tk.Result().(string), "done")
}

func TestDefaultRegistryIsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same registry")
	}
	if Default().Size() <= 0 {
		t.Error("default registry must have a positive size")
	}
}
