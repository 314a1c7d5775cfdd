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
	"strings"

	"github.com/cybrota/avltree/avl"
	"github.com/patrickmn/go-cache"
)

// Session drives one tree from textual commands. The key type is fixed
// when the session is created; callers only ever deal in raw strings.
type Session interface {
	// Execute runs one REPL line and reports whether the session should
	// keep reading.
	Execute(line string) bool
	// Run executes lines from in until it is exhausted or a quit command
	// is read.
	Run(in io.Reader) error
	// Insert parses every raw key first and inserts none of them if one
	// fails to parse.
	Insert(raw []string) (added, skipped int, err error)
	// Load inserts raw keys, reporting progress on w.
	Load(raw []string, w io.Writer) (added int, err error)
	// Remove parses every raw key first and removes none of them if one
	// fails to parse.
	Remove(raw []string) (removed, missing int, err error)
	// Render returns the printed tree in the given print mode.
	Render(mode string) (string, error)
	Check() error
}

type session[T any] struct {
	tree   *avl.Tree[T]
	parse  func(string) (T, error)
	out    io.Writer
	errOut io.Writer
	styles Styles

	prompt    string
	printMode string

	renders    *cache.Cache
	generation uint64
}

// NewSession returns a session over an empty tree whose key type and
// printing follow config. Command output goes to out, problems to errOut.
func NewSession(config *Config, out, errOut io.Writer) (Session, error) {
	switch config.Tree.KeyType {
	case KeyTypeInt:
		return newSession(avl.New[int](), parseIntKey, config, out, errOut), nil
	case KeyTypeString:
		return newSession(avl.New[string](), parseStringKey, config, out, errOut), nil
	}
	return nil, fmt.Errorf("unknown key type %q", config.Tree.KeyType)
}

func newSession[T any](tree *avl.Tree[T], parse func(string) (T, error), config *Config, out, errOut io.Writer) *session[T] {
	return &session[T]{
		tree:      tree,
		parse:     parse,
		out:       out,
		errOut:    errOut,
		styles:    NewStyles(config.Session.Color),
		prompt:    config.Session.Prompt,
		printMode: config.Tree.PrintMode,
		renders:   NewRenderCache(config.Session.RenderCacheTTL),
	}
}

func (s *session[T]) parseAll(raw []string) ([]T, error) {
	keys := make([]T, 0, len(raw))
	for _, r := range raw {
		k, err := s.parse(r)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// mutated invalidates every cached rendering.
func (s *session[T]) mutated() {
	s.generation++
	s.renders.Flush()
}

func (s *session[T]) Insert(raw []string) (added, skipped int, err error) {
	keys, err := s.parseAll(raw)
	if err != nil {
		return 0, 0, err
	}
	for _, k := range keys {
		if s.tree.Insert(k) {
			added++
		} else {
			skipped++
		}
	}
	if added > 0 {
		s.mutated()
	}
	return added, skipped, nil
}

func (s *session[T]) Load(raw []string, w io.Writer) (int, error) {
	keys, err := s.parseAll(raw)
	if err != nil {
		return 0, err
	}

	bar := newLoadBar(len(keys), w)
	added := 0
	for _, k := range keys {
		if s.tree.Insert(k) {
			added++
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if added > 0 {
		s.mutated()
	}
	return added, nil
}

func (s *session[T]) Remove(raw []string) (removed, missing int, err error) {
	keys, err := s.parseAll(raw)
	if err != nil {
		return 0, 0, err
	}
	for _, k := range keys {
		if s.tree.Remove(k) {
			removed++
		} else {
			missing++
		}
	}
	if removed > 0 {
		s.mutated()
	}
	return removed, missing, nil
}

func (s *session[T]) Render(mode string) (string, error) {
	key := renderKey(s.generation, mode)
	if text, ok := GetRender(s.renders, key); ok {
		return text, nil
	}

	var b strings.Builder
	var err error
	switch mode {
	case PrintModeFlat:
		err = s.tree.Print(&b)
	case PrintModeLevels:
		err = s.tree.PrintLevels(&b)
	default:
		return "", fmt.Errorf("unknown print mode %q", mode)
	}
	if err != nil {
		return "", err
	}

	CacheRender(s.renders, key, b.String())
	return b.String(), nil
}

func (s *session[T]) Check() error {
	return s.tree.Verify()
}

func (s *session[T]) fail(err error) {
	fmt.Fprintln(s.errOut, s.styles.errorText("error: "+err.Error()))
}

func (s *session[T]) print(mode string) {
	if s.tree.IsEmpty() {
		fmt.Fprintln(s.out, s.styles.info("(empty tree)"))
		return
	}
	text, err := s.Render(mode)
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprint(s.out, text)
}

func (s *session[T]) Execute(line string) bool {
	args, err := splitCommand(line)
	if err != nil {
		s.fail(err)
		return true
	}
	if len(args) == 0 {
		return true
	}

	cmd, rest := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "insert", "add", "remove", "delete", "contains", "has":
		if len(rest) == 0 {
			s.fail(fmt.Errorf("%s needs at least one key", cmd))
			return true
		}
	}

	switch cmd {
	case "insert", "add":
		added, skipped, err := s.Insert(rest)
		if err != nil {
			s.fail(err)
			break
		}
		fmt.Fprintln(s.out, s.styles.success(fmt.Sprintf("inserted %d, %d already present", added, skipped)))
	case "remove", "delete":
		removed, missing, err := s.Remove(rest)
		if err != nil {
			s.fail(err)
			break
		}
		fmt.Fprintln(s.out, s.styles.success(fmt.Sprintf("removed %d, %d not found", removed, missing)))
	case "contains", "has":
		keys, err := s.parseAll(rest)
		if err != nil {
			s.fail(err)
			break
		}
		for i, k := range keys {
			fmt.Fprintf(s.out, "%s: %t\n", rest[i], s.tree.Contains(k))
		}
	case "print":
		s.print(s.printMode)
	case "flat":
		s.print(PrintModeFlat)
	case "levels":
		s.print(PrintModeLevels)
	case "height":
		fmt.Fprintln(s.out, s.tree.Height())
	case "size", "len":
		fmt.Fprintln(s.out, s.tree.Len())
	case "check":
		if err := s.Check(); err != nil {
			s.fail(err)
			break
		}
		fmt.Fprintln(s.out, s.styles.success("ok"))
	case "clear":
		s.tree.Clear()
		s.mutated()
		fmt.Fprintln(s.out, s.styles.success("cleared"))
	case "help", "?":
		fmt.Fprint(s.out, replHelp)
	case "quit", "exit":
		return false
	default:
		s.fail(fmt.Errorf("unknown command %q (try help)", cmd))
	}
	return true
}

func (s *session[T]) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if s.prompt != "" {
			fmt.Fprint(s.out, s.styles.promptText(s.prompt))
		}
		if !scanner.Scan() {
			break
		}
		if !s.Execute(scanner.Text()) {
			return nil
		}
	}
	if s.prompt != "" {
		fmt.Fprintln(s.out)
	}
	return scanner.Err()
}

const replHelp = `commands:
  insert KEY...     add keys, duplicates are ignored
  remove KEY...     delete keys, missing keys are ignored
  contains KEY...   report membership of each key
  print             print the tree using the configured print mode
  flat              print keys in level order on one line
  levels            print one line per tree level
  height            print the height of the root (-1 when empty)
  size              print the number of keys
  check             verify ordering, heights and balance
  clear             remove every key
  help              show this text
  quit              leave the session
`
