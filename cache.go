// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired renders every minute
	renderCacheCleanup = time.Minute
)

// NewRenderCache creates a cache for printed tree output. A ttl of zero
// keeps entries until the session flushes them on the next mutation.
func NewRenderCache(ttl time.Duration) *cache.Cache {
	if ttl == 0 {
		ttl = cache.NoExpiration
	}
	return cache.New(ttl, renderCacheCleanup)
}

// renderKey identifies one rendering of one version of the tree. Every
// mutation bumps the generation, so stale text is never served.
func renderKey(generation uint64, mode string) string {
	return fmt.Sprintf("%d/%s", generation, mode)
}

func CacheRender(c *cache.Cache, key string, text string) {
	c.SetDefault(key, text)
}

func GetRender(c *cache.Cache, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	return val.(string), true
}
