package benchmark

import (
	"context"
	"testing"
	"time"

	"github.com/vnykmshr/awaitpool/pkg/await"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/room"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/task"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/workerpool"
)

func noop(args task.Args, kwargs task.Kwargs) (any, error) {
	return nil, nil
}

func BenchmarkSubmit(b *testing.B) {
	pool := workerpool.New(4)
	defer func() { <-pool.Shutdown() }()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pool.Submit(noop); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSubmitParallel(b *testing.B) {
	pool := workerpool.New(8)
	defer func() { <-pool.Shutdown() }()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := pool.Submit(noop); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkSubmitAndDrain(b *testing.B) {
	pool := workerpool.New(4)

	b.ResetTimer()
	var last *task.Task
	for i := 0; i < b.N; i++ {
		t, err := pool.Submit(noop)
		if err != nil {
			b.Fatal(err)
		}
		last = t
	}
	for last != nil && !last.Done() {
		time.Sleep(time.Microsecond)
	}
	b.StopTimer()
	<-pool.Shutdown()
}

func BenchmarkAwaitRoundTrip(b *testing.B) {
	wrapped, err := await.Wrap(noop,
		await.WithRegistry(room.NewRegistry(4)),
		await.WithDelay(50*time.Microsecond),
	)
	if err != nil {
		b.Fatal(err)
	}

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wrapped(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
