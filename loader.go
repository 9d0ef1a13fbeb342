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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avltree/avl"
)

// LoadResult counts what a bulk load did
type LoadResult struct {
	Keys     int // keys read from the input
	Inserted int // keys that were not already present
}

func newLoadProgressBar(size int64, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("🌳 Loading keys..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintf(w, "\n✅ Loading completed!\n")
		}),
	)
}

// loadKeys inserts every whitespace separated integer of r into tree.
// bar may be nil. A token that is not an integer stops the load with an
// error naming its line.
func loadKeys(tree *avl.Tree, r io.Reader, bar *progressbar.ProgressBar) (LoadResult, error) {
	var result LoadResult

	scanner := bufio.NewScanner(r)
	// Increase buffer size for key files written on a single line
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		for _, token := range strings.Fields(line) {
			key, err := strconv.Atoi(token)
			if err != nil {
				return result, fmt.Errorf("line %d: bad key %q", lineNo, token)
			}
			result.Keys++
			if !tree.Search(key) {
				result.Inserted++
			}
			tree.Insert(key)
		}

		if bar != nil {
			_ = bar.Add(len(line) + 1)
		}
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return result, nil
}

// loadKeysFile opens path and loads it, drawing progress on progressOut
// when showProgress is set
func loadKeysFile(tree *avl.Tree, path string, showProgress bool, progressOut io.Writer) (LoadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadResult{}, fmt.Errorf("key file %s not found", path)
		}
		return LoadResult{}, err
	}
	defer file.Close()

	var bar *progressbar.ProgressBar
	if showProgress {
		if stat, err := file.Stat(); err == nil {
			bar = newLoadProgressBar(stat.Size(), progressOut)
		}
	}

	result, err := loadKeys(tree, file, bar)
	if err != nil {
		return result, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}
