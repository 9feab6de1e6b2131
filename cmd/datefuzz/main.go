package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mrsinham/datefuzz/cmd/datefuzz/wizard"
	"github.com/mrsinham/datefuzz/internal/strftime"
	"github.com/mrsinham/datefuzz/internal/variance"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Check for wizard subcommand (before flag.Parse)
	if len(os.Args) > 1 && os.Args[1] == "wizard" {
		// Extract --from flag if present
		var fromConfig string
		for i, arg := range os.Args[2:] {
			if arg == "--from" && i+3 < len(os.Args) {
				fromConfig = os.Args[i+3]
			}
		}
		if err := wizard.Run(fromConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Define command-line flags
	rangeDays := flag.Int("range", variance.DefaultRange, "Range of days to vary the date by (negative allows past dates)")
	flag.IntVar(rangeDays, "r", variance.DefaultRange, "Range of days to vary the date by (shortcut)")
	maxRange := flag.Int("max-range", variance.DefaultMaxRange, "Maximum allowed range of days, prevents excessive variance")
	flag.IntVar(maxRange, "m", variance.DefaultMaxRange, "Maximum allowed range of days (shortcut)")
	format := flag.String("format", strftime.DefaultPattern, "Output date format (strftime directives)")
	flag.StringVar(format, "f", strftime.DefaultPattern, "Output date format (shortcut)")
	seed := flag.Int64("seed", 0, "Seed for reproducibility (optional, auto-generated if not specified)")

	// Interactive wizard and config options
	interactive := flag.Bool("interactive", false, "Launch interactive wizard")
	flag.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")
	configFile := flag.String("config", "", "Load parameters from YAML file")
	saveConfig := flag.String("save-config", "", "Save parameters to YAML file (after obfuscation)")

	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	// One-time structured logger setup, errors go to stderr with timestamp
	// and severity
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Show version (before any work, so --version always wins)
	if *showVersion {
		fmt.Printf("datefuzz %s\n", version)
		os.Exit(0)
	}

	// Show help
	if *help {
		printHelp()
		os.Exit(0)
	}

	// Handle interactive mode
	if *interactive {
		if err := wizard.Run(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Handle config file loading
	if *configFile != "" {
		state, err := wizard.LoadFromYAML(*configFile)
		if err != nil {
			logger.Error("loading config failed", "file", *configFile, "error", err)
			os.Exit(1)
		}

		output, err := variance.Obfuscate(wizard.ToOptions(state))
		if err != nil {
			logger.Error("date obfuscation failed", "error", err)
			os.Exit(1)
		}

		fmt.Println(output)
		os.Exit(0)
	}

	// Validate required arguments
	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: date argument is required\n")
		printUsage()
		os.Exit(1)
	}

	opts := variance.Options{
		Date:      flag.Arg(0),
		RangeDays: *rangeDays,
		MaxRange:  *maxRange,
		Format:    *format,
		Seed:      *seed,
	}

	output, err := variance.Obfuscate(opts)
	if err != nil {
		logger.Error("date obfuscation failed", "error", err)
		os.Exit(1)
	}

	// Save config if requested
	if *saveConfig != "" {
		state := wizard.FromOptions(opts)
		if err := wizard.SaveToYAML(state, *saveConfig); err != nil {
			logger.Warn("could not save config", "file", *saveConfig, "error", err)
		} else {
			fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", *saveConfig)
		}
	}

	fmt.Println(output)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  datefuzz [options] <date>")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
}

func printHelp() {
	fmt.Println("datefuzz")
	fmt.Println("========")
	fmt.Println()
	fmt.Println("Introduce a random variance within a specified range to a date value,")
	fmt.Println("preserving temporal relationships while obscuring the exact date.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  datefuzz [options] <date>")
	fmt.Println("  datefuzz wizard [--from config.yaml]")
	fmt.Println()
	fmt.Println("Required arguments:")
	fmt.Println("  <date>                The date to modify (YYYY-MM-DD)")
	fmt.Println()
	fmt.Println("Optional arguments:")
	fmt.Println("  -r, --range <N>       Range of days to vary the date by (default: 30)")
	fmt.Println("                        A negative value means the same symmetric interval.")
	fmt.Println("  -m, --max-range <N>   Maximum range of days, prevents excessively")
	fmt.Println("                        large variance (default: 365)")
	fmt.Println("  -f, --format <FMT>    Output date format using strftime directives")
	fmt.Println("                        (default: %Y-%m-%d)")
	fmt.Println("  --seed <N>            Seed for reproducibility (auto-generated if not specified)")
	fmt.Println()
	fmt.Println("Interactive and config options:")
	fmt.Println("  -i, --interactive     Launch interactive wizard")
	fmt.Println("  --config <FILE>       Load parameters from YAML file")
	fmt.Println("  --save-config <FILE>  Save parameters to YAML file (after obfuscation)")
	fmt.Println()
	fmt.Println("  --help                Show this help message")
	fmt.Println("  --version             Show version")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Basic usage, +/- 30 days by default")
	fmt.Println("  datefuzz 2023-10-26")
	fmt.Println()
	fmt.Println("  # Vary by at most 10 days in either direction")
	fmt.Println("  datefuzz -r 10 2023-10-26")
	fmt.Println()
	fmt.Println("  # Custom output format")
	fmt.Println("  datefuzz -f \"%m/%d/%Y\" 2023-10-26")
	fmt.Println()
	fmt.Println("  # Cap the permitted range")
	fmt.Println("  datefuzz -r 50 -m 100 2023-10-26")
	fmt.Println()
	fmt.Println("  # Reproducible output with a fixed seed")
	fmt.Println("  datefuzz --seed 42 2023-10-26")
	fmt.Println()
	fmt.Println("Output:")
	fmt.Println("  On success the obfuscated date is printed to stdout and the exit")
	fmt.Println("  code is 0. Invalid dates and ranges exceeding the maximum are logged")
	fmt.Println("  to stderr and the exit code is 1.")
	fmt.Println()
	fmt.Println("Reproducibility:")
	fmt.Println("  Using the same seed ensures the identical day offset across runs.")
}
