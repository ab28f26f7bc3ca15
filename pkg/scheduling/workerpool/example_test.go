package workerpool_test

import (
	"fmt"
	"log"
	"time"

	"github.com/vnykmshr/awaitpool/pkg/scheduling/task"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/workerpool"
)

// Example demonstrates submitting a function and polling its handle.
func Example() {
	pool := workerpool.New(3)
	defer func() { <-pool.Shutdown() }()

	t, err := pool.Submit(func(args task.Args, kwargs task.Kwargs) (any, error) {
		return args[0].(int) * args[1].(int), nil
	}, 6, 7)
	if err != nil {
		log.Fatal(err)
	}

	for !t.Done() {
		time.Sleep(time.Millisecond)
	}
	fmt.Println(t.Result())
	// Output: 42
}

// Example_failure shows that a failing task surfaces on its handle,
// not on the worker.
func Example_failure() {
	pool := workerpool.New(1)
	defer func() { <-pool.Shutdown() }()

	t, _ := pool.Submit(func(args task.Args, kwargs task.Kwargs) (any, error) {
		return nil, fmt.Errorf("no such record")
	})

	for !t.Done() {
		time.Sleep(time.Millisecond)
	}
	fmt.Println(t.Failed(), t.Err())
	// Output: true no such record
}
