// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskfile

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"code.hybscloud.com/selective"
)

// Runner evaluates the tasks of a validated file on [selective.AsyncF].
//
// Each task is built at most once per Runner: concurrent requests for the
// same task share one build and later requests read the memoised value.
// A Runner is safe for concurrent use.
type Runner struct {
	file   *File
	logger *slog.Logger
	group  singleflight.Group

	mu      sync.Mutex
	memo    map[string]int
	touched []string
}

// NewRunner returns a Runner for f. A nil logger discards output.
// f is validated so that evaluation cannot recurse forever.
func NewRunner(f *File, logger *slog.Logger) (*Runner, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{file: f, logger: logger, memo: make(map[string]int)}, nil
}

// Run evaluates target, which must name a task.
func (r *Runner) Run(ctx context.Context, target string) (int, error) {
	e, ok := r.file.Tasks[target]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, target)
	}
	return selective.RunAsync(ctx, Compile[selective.AsyncF](e)(r.fetch))
}

// Touched returns the keys read so far, in the order they were read.
// Keys read by concurrently evaluated operands appear in completion order.
func (r *Runner) Touched() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.touched)
}

func (r *Runner) fetch(k string) selective.F[selective.AsyncF, int] {
	return selective.Async(func(ctx context.Context) (int, error) {
		r.mu.Lock()
		r.touched = append(r.touched, k)
		r.mu.Unlock()
		r.logger.Debug("fetch", "key", k)

		if v, ok := r.file.Inputs[k]; ok {
			return v, nil
		}
		return r.build(ctx, k)
	})
}

func (r *Runner) build(ctx context.Context, task string) (int, error) {
	r.mu.Lock()
	v, ok := r.memo[task]
	r.mu.Unlock()
	if ok {
		return v, nil
	}

	res, err, shared := r.group.Do(task, func() (any, error) {
		// A build that finished after the check above has already stored its value.
		r.mu.Lock()
		v, ok := r.memo[task]
		r.mu.Unlock()
		if ok {
			return v, nil
		}
		e, ok := r.file.Tasks[task]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownKey, task)
		}
		v, err := selective.RunAsync(ctx, Compile[selective.AsyncF](e)(r.fetch))
		if err != nil {
			return 0, fmt.Errorf("task %q: %w", task, err)
		}
		r.mu.Lock()
		r.memo[task] = v
		r.mu.Unlock()
		r.logger.Debug("built", "task", task, "value", v)
		return v, nil
	})
	if err != nil {
		return 0, err
	}
	if shared {
		r.logger.Debug("shared build", "task", task)
	}
	return res.(int), nil
}
