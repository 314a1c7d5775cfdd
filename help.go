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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

Build, query and print a self-balancing AVL tree from the command line.

Built with Go %s

# 1. Commands
* **run** opens an interactive session; type *help* inside it for the command list
* **build KEY...** inserts the keys, applies any *--remove* flags and prints the tree
* **load FILE** inserts keys from a text file (one per line) or a YAML file with a *keys* list
* **settings** shows the configuration, creating *~/.avltree.yaml* when missing
* **version** prints the version

# 2. Key types
* *int* (default): keys are parsed as base-10 integers
* *string*: keys are taken verbatim; quote keys containing spaces

# 3. Output
* *flat*: keys in breadth-first order on one line
* *levels*: one line per tree level, root first

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
