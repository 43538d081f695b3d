package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/snake/internal/audio"
	"github.com/tomz197/snake/internal/audio/speaker"
	"github.com/tomz197/snake/internal/config"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/loop"
	"github.com/tomz197/snake/internal/object"
	"github.com/tomz197/snake/internal/store"
	"golang.org/x/term"
)

const (
	defaultDataDir  = "."
	defaultLogLevel = "info"
	soundVolume     = 0.75
)

type options struct {
	dataDir  string
	logFile  string
	logLevel string
	soundDir string
	mute     bool
	seed     uint64
}

func main() {
	var opts options
	flag.StringVar(&opts.dataDir, "data", config.GetEnv("SNAKE_DATA_DIR", defaultDataDir), "directory for scores.json and settings.json")
	flag.StringVar(&opts.logFile, "log", config.GetEnv("SNAKE_LOG_FILE", ""), "log file (default <data>/snake.log)")
	flag.StringVar(&opts.logLevel, "log-level", config.GetEnv("SNAKE_LOG_LEVEL", defaultLogLevel), "log level: debug, info, warn, error")
	flag.StringVar(&opts.soundDir, "sounds", config.GetEnv("SNAKE_SOUND_DIR", ""), "directory with eat.wav, die.wav and highscore.wav")
	flag.BoolVar(&opts.mute, "mute", config.GetEnvBool("SNAKE_MUTE", false), "disable sound")
	flag.Uint64Var(&opts.seed, "seed", config.GetEnvUint64("SNAKE_SEED", 0), "random seed, 0 picks one from the clock")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) (err error) {
	if err := os.MkdirAll(opts.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	logger, closeLog, err := openLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	restore := func() { _ = term.Restore(fd, oldState) }
	defer restore()

	// Invariant violations panic; leave the terminal usable and keep the trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprint(os.Stdout, "\033[?25h\033[0m")
			restore()
			logger.Error("crashed", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("crashed: %v", r)
		}
	}()

	sink, closeAudio := openAudio(opts, logger)
	defer closeAudio()

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting", "data", opts.dataDir, "seed", seed)

	defaults := config.DefaultSettings()
	g := game.New(game.Options{
		Scores:   store.NewScoreFile(filepath.Join(opts.dataDir, "scores.json"), logger),
		Settings: store.NewSettingsFile(filepath.Join(opts.dataDir, "settings.json"), defaults, logger),
		Audio:    sink,
		Rand:     object.NewRand(seed),
		Logger:   logger,
	})

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, g, loop.Options{Logger: logger}); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// openLogger writes structured logs to a file; the terminal belongs to the game.
func openLogger(opts options) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", opts.logLevel, err)
	}

	path := opts.logFile
	if path == "" {
		path = filepath.Join(opts.dataDir, "snake.log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(io.Writer(f), log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "snake",
	})
	return logger, func() { _ = f.Close() }, nil
}

// openAudio returns the speaker backed sink, or a silent one when muted or
// when no audio device is available.
func openAudio(opts options, logger *log.Logger) (audio.Sink, func()) {
	if opts.mute {
		logger.Info("audio muted")
		return audio.Nop{}, func() {}
	}
	player, err := speaker.New(speaker.Options{SoundDir: opts.soundDir, Volume: soundVolume}, logger)
	if err != nil {
		logger.Warn("audio unavailable, continuing silently", "err", err)
		return audio.Nop{}, func() {}
	}
	return player, player.Close
}
