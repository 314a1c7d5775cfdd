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
	"log"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// loadSettings resolves the config file and applies the global flag
// overrides. A broken config file falls back to the defaults.
func loadSettings(cmd *cobra.Command) (*Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			log.Printf("Failed to locate home directory: %v. Using default settings.", err)
			return DefaultConfig(), nil
		}
		path = p
	}

	config, err := LoadConfig(path)
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	if keys, _ := cmd.Flags().GetString("keys"); keys != "" {
		config.Tree.KeyType = keys
	}
	if f := cmd.Flags().Lookup("levels"); f != nil && f.Changed {
		if levels, _ := cmd.Flags().GetBool("levels"); levels {
			config.Tree.PrintMode = PrintModeLevels
		} else {
			config.Tree.PrintMode = PrintModeFlat
		}
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		config.Session.Color = false
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func runSession(cmd *cobra.Command, args []string) error {
	config, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	session, err := NewSession(config, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return session.Run(cmd.InOrStdin())
}

// printTree writes the rendered tree to the command's output and copies it
// to the clipboard when --copy is set.
func printTree(cmd *cobra.Command, session Session, config *Config) error {
	text, err := session.Render(config.Tree.PrintMode)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), text)

	if copyOut, _ := cmd.Flags().GetBool("copy"); copyOut {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Start an interactive tree session",
		Long:  "Run reads commands such as 'insert 10 20', 'remove 10' and 'print' from standard input",
		Args:  cobra.NoArgs,
		RunE:  runSession,
	}

	var cmdBuild = &cobra.Command{
		Use:   "build KEY...",
		Short: "Insert keys and print the resulting tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			session, err := NewSession(config, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if _, _, err := session.Insert(args); err != nil {
				return err
			}
			removals, _ := cmd.Flags().GetStringSlice("remove")
			if _, _, err := session.Remove(removals); err != nil {
				return err
			}
			return printTree(cmd, session, config)
		},
	}
	cmdBuild.Flags().StringSlice("remove", nil, "keys to remove after inserting (repeatable)")
	cmdBuild.Flags().Bool("levels", false, "print one line per tree level")
	cmdBuild.Flags().Bool("copy", false, "copy the printed tree to the clipboard")

	var cmdLoad = &cobra.Command{
		Use:   "load FILE",
		Short: "Insert keys from a text or YAML file and print the resulting tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			keys, err := readKeyFile(args[0])
			if err != nil {
				return err
			}
			session, err := NewSession(config, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			added, err := session.Load(keys, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d keys read, %d inserted\n", len(keys), added)
			return printTree(cmd, session, config)
		},
	}
	cmdLoad.Flags().Bool("levels", false, "print one line per tree level")
	cmdLoad.Flags().Bool("copy", false, "copy the printed tree to the clipboard")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating a default file when missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				p, err := getConfigPath()
				if err != nil {
					return fmt.Errorf("failed to get config path: %w", err)
				}
				path = p
			}
			noColor, _ := cmd.Flags().GetBool("no-color")
			return displaySettings(path, NewStyles(!noColor))
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "avltree",
		Version:      version,
		Short:        "Self-balancing AVL tree playground",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runSession, // Default to run command when no subcommand is provided
	}
	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.avltree.yaml)")
	rootCmd.PersistentFlags().String("keys", "", "key type: int or string (overrides the config)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable coloured output")

	rootCmd.AddCommand(cmdRun, cmdBuild, cmdLoad, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
