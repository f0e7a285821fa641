// Package app wires the sources, aggregation and rendering into a run.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/config"
	"github.com/fr4nk3nst1ner/devsalary/internal/logger"
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/scraper"
	"github.com/fr4nk3nst1ner/devsalary/internal/stats"
	"github.com/fr4nk3nst1ner/devsalary/internal/ui"
)

// Report pairs a source with the title of its table.
type Report struct {
	Title  string
	Source scraper.Source
}

// App runs every report in order and prints its table.
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	stdout  io.Writer
	stderr  io.Writer
	reports []Report
}

// New builds the HeadHunter and SuperJob reports from cfg. Tables go to
// stdout; the progress bar, if enabled, goes to stderr.
func New(cfg *config.Config, log *logger.Logger, stdout, stderr io.Writer) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	httpClient, err := client.CreateProxyHTTPClient(cfg.HTTP.Proxy, cfg.HTTP.Timeout)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:    cfg,
		log:    log,
		stdout: stdout,
		stderr: stderr,
		reports: []Report{
			{Title: cfg.HeadHunter.Title, Source: scraper.NewHeadHunter(cfg.HeadHunter, httpClient, log)},
			{Title: cfg.SuperJob.Title, Source: scraper.NewSuperJob(cfg.SuperJob, httpClient, log)},
		},
	}, nil
}

// Reports returns the configured reports in run order.
func (a *App) Reports() []Report {
	return a.reports
}

// Run collects and prints each report. A failing source aborts the run;
// tables already printed for earlier sources stay printed.
func (a *App) Run(ctx context.Context) error {
	for _, r := range a.reports {
		table, err := a.collect(ctx, r)
		if err != nil {
			return err
		}

		out, err := ui.RenderTable(r.Title, table)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(a.stdout, out); err != nil {
			return fmt.Errorf("write %s table: %w", r.Title, err)
		}
	}
	return nil
}

func (a *App) collect(ctx context.Context, r Report) (*stats.Table, error) {
	name := r.Source.Name()
	start := time.Now()

	a.log.Info("collecting vacancies", a.log.Args(
		"source", name,
		"languages", len(a.cfg.Languages),
		"workers", a.cfg.Workers,
	))

	var bar *pb.ProgressBar
	if a.cfg.Progress {
		bar = pb.New(len(a.cfg.Languages)).
			SetWriter(a.stderr).
			Set("prefix", name+" ").
			Start()
		defer bar.Finish()
	}

	table, err := stats.Collect(ctx, r.Source, a.cfg.Languages, stats.CollectOptions{
		Workers: a.cfg.Workers,
		OnLanguage: func(language string, stat models.LanguageStatistic) {
			a.log.Debug("language aggregated", a.log.Args(
				"source", name,
				"language", language,
				"found", stat.VacanciesFound,
				"processed", stat.VacanciesProcessed,
				"average", stat.AverageSalary,
			))
			if bar != nil {
				bar.Increment()
			}
		},
	})
	if err != nil {
		a.log.Error("collection failed", a.log.Args("source", name, "error", err))
		return nil, err
	}

	a.log.Info("source complete", a.log.Args(
		"source", name,
		"duration", time.Since(start).Round(time.Millisecond),
	))
	return table, nil
}
