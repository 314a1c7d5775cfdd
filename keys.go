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
	"strconv"

	"github.com/mattn/go-shellwords"
)

// splitCommand tokenises a REPL line the way a shell would, so string keys
// containing spaces can be quoted.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", line, err)
	}
	return args, nil
}

func parseIntKey(raw string) (int, error) {
	k, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid int key %q", raw)
	}
	return k, nil
}

func parseStringKey(raw string) (string, error) {
	return raw, nil
}
