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
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheRenderAndGetRender(t *testing.T) {
	c := NewRenderCache(time.Minute)
	key := renderKey(3, PrintModeFlat)
	text := "20 10 30\n"

	// Initially, GetRender should miss.
	if got, ok := GetRender(c, key); ok {
		t.Errorf("GetRender(%q) = %q; want a miss", key, got)
	}

	CacheRender(c, key, text)

	if got, ok := GetRender(c, key); !ok || got != text {
		t.Errorf("GetRender(%q) = %q, %v; want %q", key, got, ok, text)
	}

	// A different generation or mode is a different entry.
	for _, other := range []string{renderKey(4, PrintModeFlat), renderKey(3, PrintModeLevels)} {
		if _, ok := GetRender(c, other); ok {
			t.Errorf("GetRender(%q) hit; want a miss", other)
		}
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := renderKey(1, PrintModeFlat)

	CacheRender(c, key, "1\n")

	if _, ok := GetRender(c, key); !ok {
		t.Errorf("GetRender(%q) missed right after caching", key)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got, ok := GetRender(c, key); ok {
		t.Errorf("After expiration, GetRender(%q) = %q; want a miss", key, got)
	}
}
