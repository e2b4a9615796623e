package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"textcorrector/internal/builddict"
	"textcorrector/internal/config"
	"textcorrector/internal/corrector"
	"textcorrector/internal/dictionary"
	"textcorrector/internal/engine"
	"textcorrector/internal/normalizer"
	"textcorrector/internal/report"
	"textcorrector/internal/tokenizer"
	"textcorrector/internal/types"
	"textcorrector/internal/utils"

	"github.com/fatih/color"
)

const VERSION = "1.0.0"
const PROJECT_NAME = "TextCorrector"

// loadTimeout caps dictionary initialization; a word list that takes
// longer than this to read is almost certainly the wrong file.
const loadTimeout = 2 * time.Minute

func main() {
	var (
		help    = flag.Bool("help", false, "Show help message")
		h       = flag.Bool("h", false, "Show help message (short)")
		version = flag.Bool("version", false, "Show version information")
		v       = flag.Bool("v", false, "Show version information (short)")

		// Input flags
		textFlag  = flag.String("text", "", "Raw text to check")
		t         = flag.String("t", "", "Raw text to check (short)")
		showWords = flag.Bool("show-words", false, "Print tokenized words")

		// Dictionary flags
		dictPath   = flag.String("dict", "", "Path to dictionary word list")
		backend    = flag.String("backend", "", "Dictionary backend (fuzzy or index)")
		buildDict  = flag.Bool("build-dict", false, "Build a dictionary word list and exit")
		dictTarget = flag.Int("dict-target", builddict.DefaultTarget, "Approximate dictionary size for --build-dict")
		dictOutput = flag.String("dict-output", "en_dict.txt", "Output path for --build-dict")

		// Output flags
		correct   = flag.Bool("correct", false, "Print corrected text with suggestions applied")
		jsonOut   = flag.Bool("json", false, "Emit the check result as JSON")
		doReport  = flag.Bool("report", false, "Write a CSV misspelling report")
		reportDir = flag.String("report-dir", "", "Directory for CSV reports")
		topN      = flag.Int("top", 15, "Number of entries to show in the misspelling report")

		// Configuration flags
		configFile     = flag.String("config", "", "Path to configuration file")
		generateConfig = flag.Bool("generate-config", false, "Generate a sample configuration file")
		showConfig     = flag.Bool("show-config", false, "Show current configuration and exit")

		quiet   = flag.Bool("quiet", false, "Suppress non-essential output")
		verbose = flag.Bool("verbose", false, "Enable verbose output")
	)

	flag.Usage = showUsage
	flag.Parse()

	if *help || *h {
		showUsage()
		return
	}

	if *version || *v {
		showVersion()
		return
	}

	if *generateConfig {
		filename := ".textcorrector.rc"
		if err := config.GenerateConfigFile(filename); err != nil {
			log.Fatalf("Failed to generate config file: %v", err)
		}
		fmt.Printf("✅ Generated configuration file: %s\n", filename)
		return
	}

	// Load configuration
	var cfg *config.Config
	var err error

	if *configFile != "" {
		cfg, err = config.LoadConfigFromFile(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config file %s: %v", *configFile, err)
		}
	} else {
		cfg, err = config.LoadConfig()
		if err != nil {
			if !*quiet {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
			}
			cfg = config.NewConfig()
		}
	}

	// Apply command-line overrides
	if *dictPath != "" {
		cfg.DictionaryPath = *dictPath
	}
	if *backend != "" {
		cfg.DictionaryBackend = *backend
	}
	if *reportDir != "" {
		cfg.ReportDir = *reportDir
	}

	if *showConfig {
		cfg.PrintSummary()
		return
	}

	if *buildDict {
		count, err := builddict.Build(builddict.Options{
			Target: *dictTarget,
			Output: *dictOutput,
			Quiet:  *quiet,
		})
		if err != nil {
			log.Fatalf("Failed to build dictionary: %v", err)
		}
		fmt.Printf("✅ Wrote %d words to %s\n", count, *dictOutput)
		return
	}

	// Initialize the engine and wait for the dictionary
	eng := engine.New(func() (dictionary.Dictionary, error) {
		return dictionary.Load(dictionary.Options{
			Path:            cfg.DictionaryPath,
			Backend:         cfg.DictionaryBackend,
			MaxEditDistance: cfg.MaxEditDistance,
			CustomWords:     cfg.CustomWords,
			Progress:        *verbose && !*quiet,
		})
	})
	eng.MinWordLength = cfg.MinWordLength
	eng.Load()

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	if err := eng.WaitReady(ctx); err != nil {
		log.Fatalf("Spell checker unavailable: %v", err)
	}

	if *verbose && !*quiet {
		fmt.Printf("📖 Dictionary loaded: %d words (%s backend)\n", eng.Dictionary().Len(), cfg.DictionaryBackend)
	}

	opts := outputOptions{
		correct:   *correct,
		jsonOut:   *jsonOut,
		report:    *doReport,
		reportDir: cfg.ReportDir,
		showWords: *showWords,
		topN:      *topN,
		quiet:     *quiet,
	}

	// File arguments are checked concurrently; otherwise fall back to
	// --text and then stdin, like the original CLI.
	files := flag.Args()
	if len(files) > 0 {
		if err := checkFiles(files, eng, cfg, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	raw := *textFlag
	if raw == "" {
		raw = *t
	}
	if raw == "" {
		raw, err = readStdin()
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
	}
	if strings.TrimSpace(raw) == "" {
		fmt.Println("No input text.")
		os.Exit(1)
	}

	if err := checkOne("", raw, eng, opts); err != nil {
		log.Fatal(err)
	}
}

type outputOptions struct {
	correct   bool
	jsonOut   bool
	report    bool
	reportDir string
	showWords bool
	topN      int
	quiet     bool
}

func readStdin() (string, error) {
	info, err := os.Stdin.Stat()
	if err != nil {
		return "", err
	}
	if info.Mode()&os.ModeCharDevice != 0 {
		return "", fmt.Errorf("no input: pass --text, file arguments, or pipe text on stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// checkFiles reads and spell-checks each file concurrently, bounded by
// the configured concurrency. Output is printed in argument order once
// all checks finish.
func checkFiles(paths []string, eng *engine.Engine, cfg *config.Config, opts outputOptions) error {
	type outcome struct {
		text   string
		result types.CheckResult
		err    error
	}
	outcomes := make([]outcome, len(paths))

	sem := utils.NewSemaphore(cfg.GetConcurrency())
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem.Do(func() {
				data, err := os.ReadFile(path)
				if err != nil {
					outcomes[i] = outcome{err: fmt.Errorf("failed to read %s: %w", path, err)}
					return
				}
				result, err := eng.CheckText(string(data))
				if err != nil {
					outcomes[i] = outcome{err: fmt.Errorf("failed to check %s: %w", path, err)}
					return
				}
				outcomes[i] = outcome{text: string(data), result: result}
			})
		}(i, path)
	}
	wg.Wait()

	for i, path := range paths {
		if outcomes[i].err != nil {
			return outcomes[i].err
		}
		if err := renderResult(path, outcomes[i].text, outcomes[i].result, opts); err != nil {
			return err
		}
	}
	return nil
}

// checkOne runs the full check pipeline on one input and prints the
// requested outputs. label is empty for direct text/stdin input.
func checkOne(label, text string, eng *engine.Engine, opts outputOptions) error {
	result, err := eng.CheckText(text)
	if err != nil {
		return err
	}
	return renderResult(label, text, result, opts)
}

// renderResult prints the requested outputs for one checked input.
func renderResult(label, text string, result types.CheckResult, opts outputOptions) error {
	if label != "" && !opts.quiet {
		fmt.Printf("\n%s\n", color.New(color.Bold).Sprintf("── %s ──", label))
	}

	if opts.showWords {
		printTokens(text)
	}

	if opts.jsonOut {
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printResult(text, result, opts)
	}

	if opts.report {
		counts := report.CountOccurrences(text, result)
		entries := report.Generate(result, counts)
		report.Print(entries, opts.topN)
		path, err := report.WriteCSV(opts.reportDir, entries)
		if err != nil {
			return err
		}
		if !opts.quiet {
			fmt.Printf("✅ Report written to %s\n", path)
		}
	}

	return nil
}

func printResult(text string, result types.CheckResult, opts outputOptions) {
	if len(result.Misspelled) == 0 {
		if !opts.quiet {
			fmt.Println(color.GreenString("✓ No misspellings found."))
		}
		return
	}

	fmt.Printf("%s\n", color.YellowString("Misspelled words (%d):", len(result.Misspelled)))
	for _, word := range result.Misspelled {
		if s := result.Suggestions[word]; s != nil {
			fmt.Printf("  ❌ %s → ✅ %s\n", color.RedString(word), color.GreenString(*s))
		} else {
			fmt.Printf("  ❌ %s (no suggestion)\n", color.RedString(word))
		}
	}

	if opts.correct {
		correction := corrector.CorrectText(text, result)
		fmt.Printf("\n%s\n", color.New(color.Bold).Sprint("Corrected Text"))
		fmt.Println(correction.Corrected)
		fmt.Printf("\nWords: %d, misspellings: %d, replacements: %d\n",
			correction.Stats.TotalWords, correction.Stats.Misspellings, correction.Stats.Replacements)
	}
}

func printTokens(text string) {
	fmt.Println("Tokens:")
	for i, word := range tokenizer.Words(normalizer.Normalize(text)) {
		fmt.Printf("%4d: %s\n", i+1, word)
	}
}

func showVersion() {
	fmt.Printf("%s v%s\n", PROJECT_NAME, VERSION)
	fmt.Printf("A dictionary-backed spell checker for plain text\n")
	fmt.Printf("Normalize, tokenize, check, and correct\n")
}

func showUsage() {
	fmt.Printf("%s\n", color.New(color.Bold).Sprint("TextCorrector - Spell-check and correct plain text"))
	fmt.Printf("\n%s\n", color.BlueString("USAGE:"))
	fmt.Printf("  %s [OPTIONS] [FILE...]\n\n", os.Args[0])

	fmt.Printf("%s\n", color.BlueString("ARGUMENTS:"))
	fmt.Printf("  FILE                   Text files to check (checked concurrently). With no\n")
	fmt.Printf("                         files, input comes from --text or stdin.\n\n")

	fmt.Printf("%s\n", color.BlueString("INPUT OPTIONS:"))
	fmt.Printf("  -t, --text TEXT        Raw text to check\n")
	fmt.Printf("  --show-words           Print tokenized words\n\n")

	fmt.Printf("%s\n", color.BlueString("DICTIONARY OPTIONS:"))
	fmt.Printf("  --dict PATH            Dictionary word list (default: built-in fallback)\n")
	fmt.Printf("  --backend NAME         Candidate backend: fuzzy or index (default: fuzzy)\n")
	fmt.Printf("  --build-dict           Download and build a dictionary word list, then exit\n")
	fmt.Printf("  --dict-target N        Approximate dictionary size for --build-dict (default: %d)\n", builddict.DefaultTarget)
	fmt.Printf("  --dict-output PATH     Output path for --build-dict (default: en_dict.txt)\n\n")

	fmt.Printf("%s\n", color.BlueString("OUTPUT OPTIONS:"))
	fmt.Printf("  --correct              Print corrected text with suggestions applied\n")
	fmt.Printf("  --json                 Emit {misspelled, suggestions} as JSON\n")
	fmt.Printf("  --report               Print and save a CSV misspelling report\n")
	fmt.Printf("  --report-dir DIR       Directory for CSV reports\n")
	fmt.Printf("  --top N                Entries to show in the report (default: 15)\n\n")

	fmt.Printf("%s\n", color.BlueString("CONFIGURATION OPTIONS:"))
	fmt.Printf("  --config FILE          Path to configuration file (.textcorrector.rc)\n")
	fmt.Printf("  --generate-config      Generate a sample configuration file\n")
	fmt.Printf("  --show-config          Show current configuration and exit\n\n")

	fmt.Printf("%s\n", color.BlueString("OTHER OPTIONS:"))
	fmt.Printf("  --quiet                Suppress non-essential output\n")
	fmt.Printf("  --verbose              Enable verbose output\n")
	fmt.Printf("  -h, --help             Show this help message\n")
	fmt.Printf("  -v, --version          Show version information\n\n")

	fmt.Printf("%s\n", color.BlueString("EXAMPLES:"))
	fmt.Printf("  %s --text \"Helo wrold\"                # Check a snippet\n", os.Args[0])
	fmt.Printf("  %s --correct --text \"Helo wrold\"      # Apply suggestions\n", os.Args[0])
	fmt.Printf("  %s draft.txt notes.txt --report        # Check files, save CSV\n", os.Args[0])
	fmt.Printf("  cat draft.txt | %s --json              # Pipe text, machine output\n", os.Args[0])
	fmt.Printf("  %s --build-dict --dict-output words.txt\n\n", os.Args[0])

	fmt.Printf("%s\n", color.BlueString("CONFIGURATION FILE:"))
	fmt.Printf("  TextCorrector looks for configuration files in this order:\n")
	fmt.Printf("  1. .textcorrector.rc\n")
	fmt.Printf("  2. .textcorrector.config\n")
	fmt.Printf("  3. textcorrector.config\n\n")

	fmt.Printf("  Use --generate-config to create a sample configuration file.\n")
}
