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
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"
)

// keyFile is the YAML layout accepted by the load command.
type keyFile struct {
	Keys []any `yaml:"keys"`
}

// readKeyFile returns the raw keys stored in path. Files ending in .yaml or
// .yml must hold a top-level "keys" list; anything else is read as one key
// per line, skipping blank lines and lines starting with '#'.
func readKeyFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return readYAMLKeys(file)
	default:
		return readLineKeys(file)
	}
}

func readYAMLKeys(r io.Reader) ([]string, error) {
	var kf keyFile
	if err := yaml.NewDecoder(r).Decode(&kf); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse key file: %w", err)
	}

	keys := make([]string, 0, len(kf.Keys))
	for _, k := range kf.Keys {
		if k == nil {
			continue
		}
		keys = append(keys, fmt.Sprint(k))
	}
	return keys, nil
}

func readLineKeys(r io.Reader) ([]string, error) {
	var keys []string
	scanner := bufio.NewScanner(r)
	// Increase buffer size for long string keys
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keys = append(keys, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	return keys, nil
}

// newLoadBar reports insertion progress on w.
func newLoadBar(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Inserting keys..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}
