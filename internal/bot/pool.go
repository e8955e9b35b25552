package bot

import (
	"context"
	"sync"

	"github.com/flemzord/wattsup/pkg/message"
)

// defaultWorkerCount is the number of workers when no size is specified.
const defaultWorkerCount = 10

// envelope is the internal message wrapper for the worker pool inbox.
type envelope struct {
	Message message.InboundMessage
	UserID  string
}

// workerPool manages a fixed set of goroutines that consume from the inbox.
type workerPool struct {
	size int
	wg   sync.WaitGroup
}

func newWorkerPool(size int) *workerPool {
	if size <= 0 {
		size = defaultWorkerCount
	}
	return &workerPool{size: size}
}

// Start launches worker goroutines that consume envelopes from inbox.
func (p *workerPool) Start(ctx context.Context, inbox <-chan envelope, handler func(context.Context, envelope)) {
	for range p.size {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for env := range inbox {
				handler(ctx, env)
			}
		}()
	}
}

// Wait blocks until all workers have exited.
func (p *workerPool) Wait() {
	p.wg.Wait()
}
