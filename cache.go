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
	// Rendered help pages only change with the terminal width
	helpCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	helpCacheCleanup = 5 * time.Minute
)

// NewHelpCache creates a cache for rendered help text
func NewHelpCache() *cache.Cache {
	return cache.New(helpCacheExpiration, helpCacheCleanup)
}

func helpCacheKey(page string, width int) string {
	return fmt.Sprintf("%s@%d", page, width)
}

func CacheHelpPage(c *cache.Cache, page string, width int, helpTxt string) {
	// Set overwrites, so a re-render after resize simply replaces the entry
	c.Set(helpCacheKey(page, width), helpTxt, helpCacheExpiration)
}

func GetHelpPage(c *cache.Cache, page string, width int) string {
	val, ok := c.Get(helpCacheKey(page, width))
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrRenderHelpPage returns the cached page or renders and caches it
func GetOrRenderHelpPage(c *cache.Cache, page string, width int, render func() (string, error)) (string, error) {
	if cached := GetHelpPage(c, page, width); cached != "" {
		return cached, nil
	}
	rendered, err := render()
	if err != nil {
		return "", err
	}
	CacheHelpPage(c, page, width, rendered)
	return rendered, nil
}
