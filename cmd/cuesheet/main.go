package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"cuesheet/internal/batch"
	"cuesheet/internal/config"
	"cuesheet/internal/cue"
	"cuesheet/internal/document"
	"cuesheet/internal/generate"
)

func main() {
	var (
		inFlag       = flag.String("in", "", "Cue sheet to load")
		outFlag      = flag.String("out", "", "Destination path for the canonical cue sheet")
		listFlag     = flag.Bool("list", false, "Print the track listing of the loaded sheet")
		generateFlag = flag.String("generate", "", "Generate a cue sheet from a directory of tagged MP3 files")
		configFlag   = flag.String("config", "", "Path to config file")
		traceFlag    = flag.Bool("trace", false, "Show parser/writer diagnostics")
	)

	flag.Parse()

	if *inFlag == "" && *generateFlag == "" && flag.NArg() == 0 {
		fmt.Println("cuesheet - parse, list and rewrite CUE sheets")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  cuesheet -in <file.cue> [-list] [-out <file.cue>]")
		fmt.Println("  cuesheet -generate <dir> -out <file.cue>")
		fmt.Println("  cuesheet <file.cue> [<file.cue> ...]   (batch normalize)")
		fmt.Println()
		fmt.Println("For interactive mode, use: cuesheet-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *traceFlag {
		settings.Trace = true
	}

	var trace cue.TraceFunc
	if settings.Trace {
		trace = func(msg string) { fmt.Fprintln(os.Stderr, "trace: "+msg) }
	}

	switch {
	case *generateFlag != "":
		runGenerate(settings, trace, *generateFlag, *outFlag)
	case *inFlag != "":
		runSingle(trace, *inFlag, *outFlag, *listFlag)
	default:
		runBatch(settings, flag.Args())
	}
}

// runSingle loads one cue sheet, optionally lists it, and optionally
// writes its canonical form.
func runSingle(trace cue.TraceFunc, in, out string, list bool) {
	doc, err := document.New("", trace)
	if err == nil {
		err = doc.Load(in)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", in, err)
		os.Exit(1)
	}

	if list {
		listing, err := doc.ListTracks()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(listing)
	}

	if out != "" {
		if err := doc.Write(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", out)
	}
}

// runGenerate builds a cue sheet from a directory of MP3s.
func runGenerate(settings *config.Settings, trace cue.TraceFunc, dir, out string) {
	if out == "" {
		out = filepath.Join(dir, "album.cue")
	}

	sheet, err := generate.New(settings).FromDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating from %s: %v\n", dir, err)
		os.Exit(1)
	}

	doc, err := document.New("", trace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	doc.Sheet = sheet
	if err := doc.Write(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s (%d tracks)\n", out, len(sheet.Tracks))
}

// runBatch normalizes every cue sheet given as a positional argument.
func runBatch(settings *config.Settings, paths []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	manager := batch.NewManager(settings, func(event batch.ProgressEvent) {
		if event.Level == batch.LevelVerbose && !settings.Trace {
			return
		}
		out := os.Stdout
		if event.Level == batch.LevelError {
			out = os.Stderr
		}
		fmt.Fprintln(out, event.Message)
	})

	if err := manager.Normalize(ctx, paths); err != nil {
		if ctx.Err() != nil {
			fmt.Println("Cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	normalized, failed := manager.Progress()
	fmt.Printf("Done: %d normalized, %d failed\n", normalized, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
