// Package console implements the levelled, coloured output of the benchmark
// harness.
package console

import (
	"io"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// Level represents the verbosity of a Logger.
type Level int

const (
	Quiet Level = iota
	Normal
	Verbose
)

// Logger writes prefixed messages, dropping those above its level.
type Logger struct {
	level   Level
	out     io.Writer
	normal  *log.Logger
	verbose *log.Logger
	warn    *log.Logger
	err     *log.Logger
	success *log.Logger
}

// New creates a logger writing to out with the given prefix.
func New(out io.Writer, prefix string, level Level) *Logger {
	const flags = log.Ltime | log.Lmsgprefix
	return &Logger{
		level:   level,
		out:     out,
		normal:  log.New(out, color.CyanString(prefix), flags),
		verbose: log.New(out, color.HiBlackString(prefix), flags),
		warn:    log.New(out, color.YellowString(prefix), flags),
		err:     log.New(out, color.RedString(prefix), flags),
		success: log.New(out, color.GreenString(prefix), flags),
	}
}

func (l *Logger) Level() Level { return l.level }

func (l *Logger) Printf(format string, v ...any) {
	if l.level >= Normal {
		l.normal.Printf(format, v...)
	}
}

// Verbosef logs only in verbose mode.
func (l *Logger) Verbosef(format string, v ...any) {
	if l.level >= Verbose {
		l.verbose.Printf(format, v...)
	}
}

func (l *Logger) Warnf(format string, v ...any) {
	if l.level >= Normal {
		l.warn.Printf(format, v...)
	}
}

func (l *Logger) Successf(format string, v ...any) {
	if l.level >= Normal {
		l.success.Printf(format, v...)
	}
}

// Errorf logs errors regardless of the level.
func (l *Logger) Errorf(format string, v ...any) {
	l.err.Printf(format, v...)
}

// ProgressBar tracks the trials of a benchmark. It writes nothing when the
// logger it was created from is quiet.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a progress bar counting up to max.
func (l *Logger) NewProgressBar(max int, description string) *ProgressBar {
	if l.level == Quiet {
		return &ProgressBar{
			bar: progressbar.NewOptions(max, progressbar.OptionSetWriter(io.Discard)),
		}
	}

	bar := progressbar.NewOptions(
		max,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSetWriter(l.out),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.GreenString("█"),
			SaucerHead:    color.GreenString("█"),
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	return &ProgressBar{bar: bar}
}

func (p *ProgressBar) Add(n int) error {
	return p.bar.Add(n)
}

func (p *ProgressBar) Finish() error {
	return p.bar.Finish()
}
