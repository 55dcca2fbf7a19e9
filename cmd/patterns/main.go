package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sghaida/gopatterns/builder"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "patterns: ", 0)

	cfg, err := LoadFromEnv()
	if err != nil {
		logger.Printf("config: %v", err)
		return 1
	}

	flags := flag.NewFlagSet("patterns", flag.ContinueOnError)
	flags.SetOutput(stderr)

	pattern := flags.String("pattern", cfg.Pattern, "demo to run, or \"all\"")
	list := flags.Bool("list", false, "list available demos and exit")
	seed := flags.Uint64("seed", cfg.Seed, "joystick random seed (0 = unseeded)")
	name := flags.String("name", cfg.CharacterName, "character name for the builder demo")
	class := flags.String("class", cfg.CharacterClass, "character class for the builder demo")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	characterType, err := builder.ParseCharacterType(*class)
	if err != nil {
		logger.Printf("%v", err)
		return 2
	}
	if strings.TrimSpace(*name) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: patterns -name must not be empty")
		return 2
	}

	reg := newRegistry(demoSettings{seed: *seed, name: *name, class: characterType})

	if *list {
		for _, n := range reg.Names() {
			_, _ = fmt.Fprintln(stdout, n)
		}
		return 0
	}

	selected := strings.ToLower(strings.TrimSpace(*pattern))
	if selected == allPatterns {
		err = reg.RunAll(stdout)
	} else {
		err = reg.Run(selected, stdout)
	}
	if err != nil {
		logger.Printf("run %s: %v", selected, err)
		return 1
	}
	return 0
}
