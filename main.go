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
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/ops"
)

var version = "dev"

// loadSettings reads the user configuration, falling back to defaults
func loadSettings() *Config {
	config, err := LoadUserConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	InitializeColors(config.Display.Color)
	return config
}

func printShape(w io.Writer, tree *avl.Tree) {
	if tree.IsEmpty() {
		fmt.Fprintln(w, "(empty tree)")
		return
	}
	tree.Print(w)
}

func main() {
	InitializeColors(true)

	asciiLogo := `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Height-balanced integer search tree with scripted, bulk and interactive drivers [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdExec = &cobra.Command{
		Use:   "exec [file]",
		Short: "Run a script of tree operations",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Exec runs one operation per line from a file, or stdin when the file is absent or "-"`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadSettings()
			keepGoing, _ := cmd.Flags().GetBool("keep-going")
			echo, _ := cmd.Flags().GetBool("echo")

			var input io.Reader = os.Stdin
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					log.Fatalf("Error opening script: %v", err)
				}
				defer file.Close()
				input = file
			}

			tree := avl.New()
			result, err := runScript(tree, ops.NewManager(), input, os.Stdout, ScriptOptions{
				KeepGoing: keepGoing,
				Echo:      echo,
			})
			if err != nil {
				log.Fatalf("Error running script: %v", err)
			}
			if config.Display.ShowShape {
				printShape(os.Stdout, tree)
			}
			if result.Failed > 0 {
				log.Printf("%s%d of %d operations failed%s", Warning, result.Failed, result.Lines, Reset)
				os.Exit(1)
			}
		},
	}

	cmdExec.Flags().Bool("keep-going", false, "log failing lines and continue")
	cmdExec.Flags().Bool("echo", false, "print each operation before its output")

	var cmdLoad = &cobra.Command{
		Use:   "load <file>",
		Short: "Bulk insert whitespace separated keys",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Load inserts every integer of a key file and prints the keys in order`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadSettings()
			show, _ := cmd.Flags().GetBool("show")
			check, _ := cmd.Flags().GetBool("check")
			quiet, _ := cmd.Flags().GetBool("quiet")

			tree := avl.New()
			result, err := loadKeysFile(tree, args[0], config.Load.ShowProgress && !quiet, os.Stderr)
			if err != nil {
				log.Fatalf("Error loading keys: %v", err)
			}
			if !quiet {
				fmt.Fprintf(os.Stderr, "%sRead %d keys, %d unique%s\n", Info, result.Keys, result.Inserted, Reset)
			}

			if check {
				if err := tree.Check(); err != nil {
					log.Fatalf("Tree check failed: %v", err)
				}
			}
			if err := tree.WriteInOrder(os.Stdout); err != nil {
				log.Fatalf("Error writing keys: %v", err)
			}
			if show || config.Display.ShowShape {
				printShape(os.Stdout, tree)
			}
		},
	}

	cmdLoad.Flags().Bool("show", false, "print the tree drawing after loading")
	cmdLoad.Flags().Bool("check", false, "verify the tree invariants after loading")
	cmdLoad.Flags().Bool("quiet", false, "suppress the progress bar and summary")

	var cmdRepl = &cobra.Command{
		Use:   "repl",
		Short: "Launches the interactive tree prompt",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Repl opens an interactive prompt with a live view of the tree`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadSettings()
			if err := runRepl(avl.New(), ops.NewManager(), config, NewHelpCache()); err != nil {
				log.Fatalf("Error running program: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage(ops.NewManager()))
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show avltree configuration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints ~/.avltree.yaml, creating it with defaults when missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			loadSettings()
			if err := displaySettings(os.Stdout); err != nil {
				log.Fatalf("Error displaying settings: %v", err)
			}
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// An empty tree and a clean exit
			_ = avl.New()
		},
	}
	rootCmd.AddCommand(cmdExec, cmdLoad, cmdRepl, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
