package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catch-zone/internal/catchzone"
	"github.com/vovakirdan/catch-zone/internal/core"
	"github.com/vovakirdan/catch-zone/internal/pose"
)

var flagRaw bool

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Drive a session from classifier output on stdin",
	Long: `Start a session and read one classifier frame per line from stdin.

A frame is either a bare label or comma-separated class=probability pairs:
  left
  left=0.8,center=0.15,right=0.05

Frames pass through the stabilizer (a class must stay on top, above the
threshold, for several frames in a row) unless --raw is set. Session events
are logged to stderr; the final result is printed to stdout. The command
exits when the session ends, or stops the session at end of input.

Examples:
  classifier | catchzone feed
  printf 'left\nleft\nleft\n' | catchzone feed --log-level debug
  catchzone feed --raw < labels.txt`,
	Args: cobra.NoArgs,
	Run:  runFeed,
}

func init() {
	feedCmd.Flags().BoolVar(&flagRaw, "raw", false, "Submit every frame's top label without stabilizing")
}

func runFeed(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine, err := catchzone.New(cfg, runtimeConfig(0, 0), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
		os.Exit(1)
	}
	engine.SetLogger(logger)

	done := make(chan catchzone.Result, 1)
	watch(engine, logger, done)

	stab := pose.NewStabilizerFromConfig(cfg.Stabilizer)
	if flagRaw {
		stab = pose.NewStabilizer(0, 1)
	}

	frames := make(chan string)
	go readFrames(os.Stdin, frames, logger)

	engine.Start()
	for {
		select {
		case res := <-done:
			printResult(res)
			return

		case line, ok := <-frames:
			if !ok {
				engine.Stop()
				printResult(<-done)
				return
			}
			preds, err := parseFrame(line)
			if err != nil {
				logger.Warn("skipping frame", "line", line, "error", err)
				continue
			}
			if preds == nil {
				continue
			}
			if res := stab.Stabilize(preds); res.ClassName != "" {
				engine.SubmitInput(res.ClassName)
			}
		}
	}
}

// watch logs engine notifications and forwards the session result.
func watch(engine *catchzone.Engine, logger *log.Logger, done chan<- catchzone.Result) {
	engine.OnScoreChange(func(score int) { logger.Info("score", "score", score) })
	engine.OnLevelChange(func(level, remaining int) { logger.Info("level", "level", level, "seconds", remaining) })
	engine.OnMissCountChange(func(misses int) { logger.Info("misses", "misses", misses) })
	engine.OnLaneChange(func(lane core.Lane) { logger.Info("lane", "lane", lane) })
	engine.OnLevelComplete(func(level int) { logger.Debug("level complete", "level", level) })
	engine.OnLevelStart(func(level int) { logger.Debug("level start", "level", level) })
	engine.OnSessionEnd(func(r catchzone.Result) {
		select {
		case done <- r:
		default:
		}
	})
}

// readFrames sends each input line on frames and closes it at end of input.
func readFrames(r io.Reader, frames chan<- string, logger *log.Logger) {
	defer close(frames)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		frames <- sc.Text()
	}
	if err := sc.Err(); err != nil {
		logger.Error("reading input", "error", err)
	}
}

// parseFrame parses one input line. Blank lines yield no predictions.
func parseFrame(line string) ([]pose.Prediction, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	if !strings.Contains(line, "=") {
		return []pose.Prediction{{ClassName: line, Probability: 1}}, nil
	}

	parts := strings.Split(line, ",")
	preds := make([]pose.Prediction, 0, len(parts))
	for _, part := range parts {
		name, value, ok := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed pair %q", part)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("bad probability for %q: %w", name, err)
		}
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("probability for %q out of range: %v", name, p)
		}
		preds = append(preds, pose.Prediction{ClassName: name, Probability: p})
	}
	return preds, nil
}

func printResult(r catchzone.Result) {
	fmt.Printf("score=%d level=%d reason=%s\n", r.Score, r.Level, r.Reason)
}
