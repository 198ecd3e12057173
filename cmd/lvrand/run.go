package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvrand/random"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitMismatch = 3
)

const usage = `usage: lvrand <command> [flags]

commands:
  draw     print draws, optionally resuming from and saving to a checkpoint
  save     write a checkpoint for a seed after skipping draws
  verify   compare two checkpoints (exit 0 if equal, 3 if not)
  bench    time raw draws
`

// common holds flags shared by every subcommand.
type common struct {
	verbose bool
	json    bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	fs.BoolVar(&c.json, "json", false, "log as JSON instead of console text")
}

// logger builds the per-run logger on stderr.
func (c *common) logger(stderr io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if c.verbose {
		level = zerolog.DebugLevel
	}
	var w io.Writer = zerolog.ConsoleWriter{Out: stderr, NoColor: true, TimeFormat: "15:04:05.000"}
	if c.json {
		w = stderr
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("cmd", "lvrand").Logger()
}

func run(argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}
	switch argv[0] {
	case "draw":
		return runDraw(argv[1:], stdout, stderr)
	case "save":
		return runSave(argv[1:], stdout, stderr)
	case "verify":
		return runVerify(argv[1:], stdout, stderr)
	case "bench":
		return runBench(argv[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "lvrand: unknown command %q\n\n%s", argv[0], usage)
		return exitUsage
	}
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("lvrand "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return fs
}

// parse returns (exit code, done). done is true when the caller must return.
func parse(fs *flag.FlagSet, argv []string) (int, bool) {
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK, true
		}
		return exitUsage, true
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %v\n", fs.Args())
		return exitUsage, true
	}

	return exitOK, false
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})

	return set
}

func runDraw(argv []string, stdout, stderr io.Writer) int {
	var (
		c     common
		seed  uint64
		n     int
		bound uint
		reals bool
		state string
	)
	fs := newFlagSet("draw", stderr)
	c.register(fs)
	fs.Uint64Var(&seed, "seed", 0, "explicit seed (default: minted by the seed dispenser)")
	fs.IntVar(&n, "n", 10, "number of draws")
	fs.UintVar(&bound, "bound", uint(random.MaxUint32Bound), "exclusive upper bound for integer draws")
	fs.BoolVar(&reals, "real", false, "draw reals in [0,1) instead of integers")
	fs.StringVar(&state, "state", "", "checkpoint to resume from (if present) and save to afterwards")
	if code, done := parse(fs, argv); done {
		return code
	}
	log := c.logger(stderr)

	if n < 0 || bound == 0 || uint64(bound) > uint64(random.MaxUint32Bound) {
		log.Error().Int("n", n).Uint("bound", bound).Msg("need n >= 0 and 0 < bound <= 4294967295")
		return exitUsage
	}

	e, err := openEngine(log, state, seed, isSet(fs, "seed"))
	if err != nil {
		log.Error().Err(err).Msg("cannot build engine")
		return exitFailure
	}

	for i := 0; i < n; i++ {
		if reals {
			fmt.Fprintf(stdout, "%.17g\n", e.UniformReal())
			continue
		}
		v, err := e.UniformInt(uint32(bound))
		if err != nil {
			log.Error().Err(err).Msg("draw failed")
			return exitFailure
		}
		fmt.Fprintln(stdout, v)
	}

	if state != "" {
		if err := e.SaveToFile(state); err != nil {
			log.Error().Err(err).Msg("cannot save checkpoint")
			return exitFailure
		}
		log.Debug().Str("path", state).Str("container", random.ContainerFor(state).String()).Msg("checkpoint saved")
	}

	return exitOK
}

// openEngine resumes from path when it exists, otherwise seeds a new engine.
// An explicit seed that disagrees with a resumed checkpoint is an error.
func openEngine(log zerolog.Logger, path string, seed uint64, seedSet bool) (*random.Engine, error) {
	if path != "" {
		e, err := random.LoadFromFile(path)
		switch {
		case err == nil:
			if seedSet && e.Seed() != seed {
				return nil, fmt.Errorf("checkpoint %s has seed %d, not %d", path, e.Seed(), seed)
			}
			log.Debug().Str("path", path).Uint64("seed", e.Seed()).Msg("resumed checkpoint")
			return e, nil
		case !errors.Is(err, os.ErrNotExist):
			return nil, err
		}
	}
	if seedSet {
		return random.NewSeeded(seed), nil
	}
	e := random.New()
	// Logged so a surprising run can be replayed with -seed.
	log.Info().Uint64("seed", e.Seed()).Msg("seeded from dispenser")

	return e, nil
}

func runSave(argv []string, stdout, stderr io.Writer) int {
	var (
		c    common
		seed uint64
		skip uint64
		out  string
	)
	fs := newFlagSet("save", stderr)
	c.register(fs)
	fs.Uint64Var(&seed, "seed", 0, "seed")
	fs.Uint64Var(&skip, "skip", 0, "draws to discard before saving")
	fs.StringVar(&out, "out", "", "checkpoint path (required)")
	if code, done := parse(fs, argv); done {
		return code
	}
	log := c.logger(stderr)
	if out == "" || !isSet(fs, "seed") {
		log.Error().Msg("-seed and -out are required")
		return exitUsage
	}

	e := random.NewSeeded(seed)
	e.Discard(skip)
	if err := e.SaveToFile(out); err != nil {
		log.Error().Err(err).Msg("cannot save checkpoint")
		return exitFailure
	}
	log.Info().Uint64("seed", seed).Uint64("skip", skip).Str("path", out).Msg("checkpoint saved")
	fmt.Fprintln(stdout, out)

	return exitOK
}

func runVerify(argv []string, stdout, stderr io.Writer) int {
	var (
		c    common
		a, b string
	)
	fs := newFlagSet("verify", stderr)
	c.register(fs)
	fs.StringVar(&a, "a", "", "first checkpoint")
	fs.StringVar(&b, "b", "", "second checkpoint")
	if code, done := parse(fs, argv); done {
		return code
	}
	log := c.logger(stderr)
	if a == "" || b == "" {
		log.Error().Msg("-a and -b are required")
		return exitUsage
	}

	ea, err := random.LoadFromFile(a)
	if err != nil {
		log.Error().Err(err).Msg("cannot load checkpoint")
		return exitFailure
	}
	eb, err := random.LoadFromFile(b)
	if err != nil {
		log.Error().Err(err).Msg("cannot load checkpoint")
		return exitFailure
	}

	if !ea.Equal(eb) {
		log.Warn().Uint64("seed_a", ea.Seed()).Uint64("seed_b", eb.Seed()).Msg("checkpoints differ")
		fmt.Fprintln(stdout, "differ")
		return exitMismatch
	}
	fmt.Fprintln(stdout, "equal")

	return exitOK
}

func runBench(argv []string, stdout, stderr io.Writer) int {
	var (
		c    common
		seed uint64
		n    int
	)
	fs := newFlagSet("bench", stderr)
	c.register(fs)
	fs.Uint64Var(&seed, "seed", 1, "seed")
	fs.IntVar(&n, "n", 10_000_000, "number of raw draws")
	if code, done := parse(fs, argv); done {
		return code
	}
	log := c.logger(stderr)
	if n < 0 {
		log.Error().Int("n", n).Msg("need n >= 0")
		return exitUsage
	}

	e := random.NewSeeded(seed)
	var acc uint64
	start := time.Now()
	for i := 0; i < n; i++ {
		acc ^= e.Uint64()
	}
	elapsed := time.Since(start)

	log.Debug().Uint64("xor", acc).Msg("checksum")
	fmt.Fprintf(stdout, "Random:\t%v\t(%d draws)\n", elapsed, n)

	return exitOK
}
