// ABOUTME: Entry point for the sine wave tool
// ABOUTME: Parses CLI flags and runs details, play or show
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Resonate-Protocol/sinewave-go/internal/app"
	"github.com/Resonate-Protocol/sinewave-go/internal/version"
	"github.com/Resonate-Protocol/sinewave-go/pkg/audio/output"
	"github.com/Resonate-Protocol/sinewave-go/pkg/playback"
	sig "github.com/Resonate-Protocol/sinewave-go/pkg/signal"
	"golang.org/x/term"
)

var defaults = sig.DefaultParams()

var (
	sampleRate  = flag.Int("rate", defaults.SampleRate, "Sample rate in Hz")
	frequency   = flag.Float64("freq", defaults.Frequency, "Tone frequency in Hz")
	duration    = flag.Float64("duration", defaults.Duration, "Signal duration in seconds")
	amplitude   = flag.Float64("amplitude", defaults.Amplitude, "Peak amplitude (1.0 = full scale)")
	backend     = flag.String("backend", output.DefaultBackend, "Audio backend: "+strings.Join(output.Backends(), ", "))
	frames      = flag.Int("frames", playback.DefaultFramesPerBuffer, "Frames per device callback")
	hold        = flag.Duration("hold", 0, "How long to play (default: signal duration)")
	samples     = flag.Int("samples", app.DefaultSampleLimit, "Samples listed by details (default: count % 1000)")
	logFile     = flag.String("log-file", "sinewave.log", "Log file path")
	noTUI       = flag.Bool("no-tui", false, "Disable TUI, use streaming logs instead")
	debug       = flag.Bool("debug", false, "Enable debug logging")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

const (
	cmdDetails = "details"
	cmdPlay    = "play"
	cmdShow    = "show"
)

var errUsage = errors.New("usage error")

// command is a parsed positional invocation
type command struct {
	name string
	hold time.Duration // show only
}

// parseCommand validates the positional arguments
func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, fmt.Errorf("%w: missing command", errUsage)
	}

	switch args[0] {
	case cmdDetails, cmdPlay:
		if len(args) != 1 {
			return command{}, fmt.Errorf("%w: %s takes no arguments", errUsage, args[0])
		}
		return command{name: args[0]}, nil
	case cmdShow:
		if len(args) != 2 {
			return command{}, fmt.Errorf("%w: show needs a duration in milliseconds", errUsage)
		}
		ms, err := strconv.Atoi(args[1])
		if err != nil || ms < 0 {
			return command{}, fmt.Errorf("%w: invalid duration %q", errUsage, args[1])
		}
		return command{name: cmdShow, hold: time.Duration(ms) * time.Millisecond}, nil
	default:
		return command{}, fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <details | play | show <ms>>\n\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	cmd, err := parseCommand(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(1)
	}

	os.Exit(run(cmd))
}

func run(cmd command) int {
	useTUI := cmd.name == cmdPlay && !*noTUI && term.IsTerminal(int(os.Stdout.Fd()))

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
		return 1
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file
		log.SetOutput(f)
	} else {
		// Streaming logs mode: log to both stderr and file
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	}
	if *debug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
		log.Printf("Debug logging enabled")
	}

	a := app.New(app.Config{
		Params: sig.Params{
			SampleRate: *sampleRate,
			Frequency:  *frequency,
			Duration:   *duration,
			Amplitude:  *amplitude,
		},
		Backend:         *backend,
		FramesPerBuffer: *frames,
		Hold:            *hold,
		SampleLimit:     *samples,
		UseTUI:          useTUI,
		Debug:           *debug,
	})

	switch cmd.name {
	case cmdDetails:
		err = a.Details()
	case cmdPlay:
		err = play(a)
	case cmdShow:
		err = a.Show(cmd.hold)
	}

	if err != nil {
		log.Printf("%s failed: %v", cmd.name, err)
		if useTUI {
			fmt.Fprintf(os.Stderr, "%s failed: %v\n", cmd.name, err)
		}
		return 1
	}
	return 0
}

// play runs playback until it finishes or SIGINT/SIGTERM arrives
func play(a *app.App) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case s := <-sigChan:
			log.Printf("Received %v signal, stopping playback", s)
			cancel()
		case <-ctx.Done():
		}
	}()

	return a.Play(ctx)
}
