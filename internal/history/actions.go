package history

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/cooccur-network/internal/common"
	dbpkg "github.com/dtnitsch/cooccur-network/pkg/db"
	"github.com/dtnitsch/cooccur-network/pkg/report"
	"github.com/dtnitsch/cooccur-network/pkg/storage"
)

const detailLinks = 10

var errNoRuns = errors.New("no runs found. Run 'cooccur all' first")

// openHistory opens the configured history database. It returns a nil DB
// when no database file exists yet, so read-only commands never create one.
func openHistory(c *cli.Context) (*dbpkg.DB, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, cli.Exit(err.Error(), 1)
	}
	s := &storage.Storage{}
	if !s.HasFile(cfg.HistoryPath()) {
		return nil, nil
	}
	database, err := dbpkg.Open(cfg.HistoryPath())
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("failed to open database: %v", err), 2)
	}
	return database, nil
}

// RunsAction lists recorded runs, newest first.
func RunsAction(c *cli.Context) error {
	database, err := openHistory(c)
	if err != nil {
		return err
	}
	if database == nil {
		fmt.Fprintln(c.App.Writer, "No runs found")
		return nil
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to list runs: %v", err), 2)
	}

	w := c.App.Writer
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return nil
	}

	report.Runs(w, runs)
	fmt.Fprintf(w, "\nTotal: %d runs\n", len(runs))
	fmt.Fprintf(w, "Tip: Use 'cooccur run <id>' to see details\n")
	return nil
}

// RunAction shows one run with its selected entities and strongest links.
func RunAction(c *cli.Context) error {
	database, err := openHistory(c)
	if err != nil {
		return err
	}
	if database == nil {
		return cli.Exit(errNoRuns.Error(), 1)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to get run: %v", err), 2)
	}

	entities, err := database.GetRunEntities(runID)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to get run entities: %v", err), 2)
	}

	links, err := database.GetRunLinks(runID, detailLinks)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to get run links: %v", err), 2)
	}

	report.RunDetail(c.App.Writer, run, entities, links)
	return nil
}

// GetRunIDOrLatest returns the run ID from args, or the latest run if not provided
func GetRunIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		runID, err := database.GetLatestRunID()
		if err != nil {
			return 0, err
		}
		if runID == 0 {
			return 0, errNoRuns
		}
		return runID, nil
	}

	runID, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil || runID <= 0 {
		return 0, fmt.Errorf("invalid run ID: %s", c.Args().First())
	}
	return runID, nil
}
