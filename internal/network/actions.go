package network

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/dtnitsch/cooccur-network/internal/common"
	"github.com/dtnitsch/cooccur-network/models"
	"github.com/dtnitsch/cooccur-network/pkg/cooccur"
	"github.com/dtnitsch/cooccur-network/pkg/report"
)

const (
	exitUsage   = 1
	exitRuntime = 2

	consoleRows = 10
)

// NetworkAction builds one network selected by --question or --kind.
func NetworkAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	q, err := selectQuestion(c, cfg)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	p := NewPipeline(cfg, logger)
	outcome, err := p.Run(c.Context, q)
	if err != nil {
		return cli.Exit(fmt.Sprintf("network %s failed: %v", q.ID, err), exitRuntime)
	}

	RecordHistory(cfg, []*Outcome{outcome}, logger)
	printOutcome(c, outcome)
	return nil
}

// AllAction builds every configured question concurrently.
func AllAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	p := NewPipeline(cfg, logger)
	outcomes, err := runAll(c.Context, p, cfg.Questions)
	if err != nil {
		return cli.Exit(err.Error(), exitRuntime)
	}

	RecordHistory(cfg, outcomes, logger)
	for _, o := range outcomes {
		printOutcome(c, o)
	}
	return nil
}

// runAll runs each question in its own goroutine. Outcomes keep the order of questions.
func runAll(ctx context.Context, p *Pipeline, questions []models.Question) ([]*Outcome, error) {
	outcomes := make([]*Outcome, len(questions))
	g, ctx := errgroup.WithContext(ctx)
	for i, q := range questions {
		g.Go(func() error {
			o, err := p.Run(ctx, q)
			if err != nil {
				return fmt.Errorf("network %s failed: %w", q.ID, err)
			}
			outcomes[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func selectQuestion(c *cli.Context, cfg *models.Config) (models.Question, error) {
	var (
		q   models.Question
		err error
	)
	switch {
	case c.IsSet("question") && c.IsSet("kind"):
		return q, fmt.Errorf("--question and --kind are mutually exclusive")
	case c.IsSet("question"):
		q, err = models.FindQuestion(cfg.Questions, c.String("question"))
	case c.IsSet("kind"):
		var kind models.EntityKind
		kind, err = models.ParseEntityKind(c.String("kind"))
		if err == nil {
			q, err = models.QuestionForKind(cfg.Questions, kind)
		}
	default:
		return q, fmt.Errorf("one of --question or --kind is required")
	}
	if err != nil {
		return q, err
	}

	if c.IsSet("group-mode") {
		mode, err := models.ParseGroupMode(c.String("group-mode"))
		if err != nil {
			return q, err
		}
		q.GroupMode = mode
	}
	return q, nil
}

func printOutcome(c *cli.Context, o *Outcome) {
	w := c.App.Writer
	n := o.Network

	fmt.Fprintf(w, "\n%s: %d %s records, %d selected, %d pairs\n",
		strings.ToUpper(o.Question.ID), n.RecordCount, n.Kind, len(n.Top), len(n.Pairs))

	limit := consoleRows
	if c.Bool("verbose") {
		limit = 0
	}
	report.TopEntities(w, n, limit)
	report.StrongestLinks(w, cooccur.StrongestLinks(n.Pairs, consoleRows))

	fmt.Fprintf(w, "Links:   %s\n", o.Files.Links)
	fmt.Fprintf(w, "Points:  %s\n", o.Files.Points)
	fmt.Fprintf(w, "Summary: %s\n", o.ManifestPath)
	if o.Previous != nil {
		fmt.Fprintf(w, "Same input and options as run %d (%s)\n",
			o.Previous.RunID, o.Previous.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}
