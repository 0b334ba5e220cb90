package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	flagDuration time.Duration
	flagSweep    time.Duration
	flagFrame    bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a headless autopilot game",
	Long: `Run the game without a display. An autopilot sweeps the ship from wall
to wall and keeps firing; Space also restarts after game over.

The run ends after --duration or on Ctrl+C and prints the final state
with its hash. --frame also prints the last frame as plain text.

Examples:
  invaders demo --duration 30s
  invaders demo --seed 42 --difficulty hard --log-file demo.log`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().DurationVar(&flagDuration, "duration", 20*time.Second, "How long to run")
	demoCmd.Flags().DurationVar(&flagSweep, "sweep", 1500*time.Millisecond, "Time between direction changes")
	demoCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the last frame as plain text")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("invaders-demo", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := invaders.New(cfg, gameOptions(logger, nil)...)
	if err != nil {
		return err
	}
	var (
		screen  *core.Screen
		surface invaders.Surface
	)
	if flagFrame {
		screen = core.NewScreen(core.DefaultScreenW, core.DefaultScreenH)
		surface = tui.NewScreenSurface(screen, tui.ViewportFor(g))
	}
	driver := invaders.NewDriver(g, surface, flagFPS)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()
	ctx, cancelRun := context.WithTimeout(ctx, flagDuration)
	defer cancelRun()

	go autopilot(ctx, driver, flagSweep)

	if err := driver.Run(ctx); err != nil &&
		!errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return err
	}

	if screen != nil {
		fmt.Println(screen.String())
	}

	snap := g.Snapshot()
	fmt.Printf("state:  %s\n", snap.State)
	fmt.Printf("ticks:  %d\n", snap.Tick)
	fmt.Printf("score:  %d\n", snap.Score)
	fmt.Printf("level:  %d\n", snap.Level)
	fmt.Printf("lives:  %d\n", snap.Lives)
	fmt.Printf("hash:   %016x\n", snap.Hash())
	return nil
}

// autopilot feeds input through the driver's queue until ctx is done.
func autopilot(ctx context.Context, d *invaders.Driver, sweep time.Duration) {
	fire := time.NewTicker(d.Interval() * 5)
	defer fire.Stop()
	turn := time.NewTicker(sweep)
	defer turn.Stop()

	dir, other := core.KeyRight, core.KeyLeft
	d.KeyDown(dir)
	for {
		select {
		case <-ctx.Done():
			return
		case <-fire.C:
			d.KeyDown(core.KeySpace)
		case <-turn.C:
			dir, other = other, dir
			d.KeyUp(other)
			d.KeyDown(dir)
		}
	}
}
