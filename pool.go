// Copyright 2024 The commonmark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package commonmark

import (
	"strings"
	"sync"
)

// builderPool is the shared, concurrency-safe pool of [strings.Builder]
// values the block and inline phases borrow from: every borrow must be
// returned on every exit
// path, including parser failure.
type builderPool struct {
	pool sync.Pool
}

func newBuilderPool() *builderPool {
	return &builderPool{
		pool: sync.Pool{
			New: func() any { return new(strings.Builder) },
		},
	}
}

func (p *builderPool) get() *strings.Builder {
	return p.pool.Get().(*strings.Builder)
}

func (p *builderPool) put(b *strings.Builder) {
	b.Reset()
	p.pool.Put(b)
}

// perWorkerBuilders hands out one dedicated builder per worker goroutine
// during a parallel inline phase, since a dedicated builder per worker
// is simpler and faster than synchronizing a single shared builder. It
// is not a pool
// in the sync.Pool sense: each worker keeps its builder for its entire
// lifetime rather than returning it after each use.
type perWorkerBuilders struct {
	builders []strings.Builder
}

func newPerWorkerBuilders(n int) *perWorkerBuilders {
	return &perWorkerBuilders{builders: make([]strings.Builder, n)}
}

func (p *perWorkerBuilders) forWorker(i int) *strings.Builder {
	b := &p.builders[i]
	b.Reset()
	return b
}
