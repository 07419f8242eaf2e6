package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bulga138/kilo/config"
	"github.com/bulga138/kilo/editor"
	"github.com/bulga138/kilo/terminal"
	"github.com/bulga138/kilo/version"
)

// Define the command-line flags
var (
	initConfig  = flag.Bool("init-config", false, "Create a default config file and exit.")
	showVersion = flag.Bool("version", false, "Show version information and exit.")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", version.Name, version.GetFullVersion())
		return 0
	}

	if *initConfig {
		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			return 1
		}
		return 0
	}

	// Keep config warnings out of the terminal until logging is set up.
	log.SetOutput(io.Discard)
	cfg := config.LoadConfig()

	if cfg.EnableLogger {
		f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		log.SetOutput(f)
		log.Println("--- Kilo Started (Logging Enabled) ---")
	}
	log.Printf("Config loaded: %+v", cfg)

	var filename string
	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: kilo [filename]")
		return 1
	}
	if len(args) == 1 {
		filename = args[0]
	}
	log.Printf("File to open: %s", filename)

	term := terminal.New(cfg.ReadTimeout)
	defer term.Close()

	e, err := editor.NewEditor(term, cfg, filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing editor: %v\n", err)
		return 1
	}

	if err := e.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "kilo: %v\n", err)
		return 1
	}

	log.Println("--- Kilo Exited Cleanly ---")
	return 0
}
