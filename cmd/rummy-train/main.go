// Command rummy-train trains a tabular learner at Simple Rummy against random
// bots, then evaluates the greedy policy. Settings come from RUMMY_*
// environment variables or a .env file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	engine "github.com/jason-s-yu/rummy/engine"
	"github.com/jason-s-yu/rummy/engine/agent"
	"github.com/jason-s-yu/rummy/internal/config"
	"github.com/jason-s-yu/rummy/internal/report"
	"github.com/sirupsen/logrus"
)

// policyRows is how many learned entries are printed after training.
const policyRows = 15

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	logger := logrus.New()
	logger.SetLevel(cfg.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: !cfg.Color})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.WithError(err).Fatal("training failed")
	}
}

// run builds the table, trains, evaluates, and reports to out.
func run(ctx context.Context, cfg config.Config, logger *logrus.Logger, out io.Writer) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.WithFields(logrus.Fields{
		"seed":          seed,
		"episodes":      cfg.Episodes,
		"bots":          cfg.Bots,
		"reward_policy": cfg.Rules.RewardPolicy,
	}).Info("starting")

	g := engine.NewGame(cfg.Rules, engine.NewRand(seed))
	g.Logger = logger
	if cfg.Debug {
		g.OnEvent = report.NewTracer(out, cfg.Color).Event
	}

	seats := []*engine.Player{engine.NewPlayer(cfg.LearnerName, false)}
	for i := 1; i <= cfg.Bots; i++ {
		seats = append(seats, engine.NewPlayer(fmt.Sprintf("comp%d", i), true))
	}

	learner := agent.NewLearner(agent.Config{Alpha: cfg.Alpha, Gamma: cfg.Gamma}, engine.NewRand(seed+1))
	trainer, err := agent.NewTrainer(g, learner, seats, cfg.Epsilon)
	if err != nil {
		return err
	}
	trainer.Logger = logger
	trainer.LogEvery = cfg.LogEvery

	trained, err := trainer.Train(ctx, cfg.Episodes)
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}
	report.PrintSummary(out, "train", trained, cfg.Color)

	series := []report.Series{{Name: "train", History: trained.History}}
	if cfg.EvalEpisodes > 0 {
		evaluated, err := trainer.Evaluate(ctx, cfg.EvalEpisodes)
		if err != nil {
			return fmt.Errorf("evaluate: %w", err)
		}
		report.PrintSummary(out, "eval", evaluated, cfg.Color)
		series = append(series, report.Series{Name: "eval", History: evaluated.History})
	}

	report.PrintPolicy(out, learner.Table, policyRows, cfg.Color)

	if cfg.ChartPath != "" {
		if err := report.WriteChart(cfg.ChartPath, report.DefaultWindow, series...); err != nil {
			return err
		}
		logger.WithField("path", cfg.ChartPath).Info("chart written")
	}
	return nil
}
