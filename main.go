package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/cooccur-network/internal/history"
	"github.com/dtnitsch/cooccur-network/internal/network"
	"github.com/dtnitsch/cooccur-network/models"
	"github.com/dtnitsch/cooccur-network/pkg/help"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func resultsDirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "results-dir",
		Usage: "directory that receives one subdirectory per question",
		Value: models.DefaultResultsDir,
	}
}

// runFlags are shared by the commands that build networks.
func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "titles CSV to read",
			Value:   models.DefaultInput,
		},
		resultsDirFlag(),
		&cli.IntFlag{
			Name:  "top",
			Usage: "number of most frequent names kept per network",
			Value: models.DefaultTopN,
		},
		&cli.StringFlag{
			Name:  "db",
			Usage: "run history database (default <results-dir>/" + models.DefaultDBName + ")",
		},
		&cli.BoolFlag{
			Name:  "no-history",
			Usage: "do not record the run in the history database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "print every selected name, not only the strongest links",
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "cooccur",
		Usage: "Build co-occurrence networks of people credited together on titles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file",
				Value:   models.DefaultConfigFile,
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "network",
				Usage: "Build one network and write links.csv and points.csv",
				Flags: append(runFlags(),
					&cli.StringFlag{
						Name:  "question",
						Usage: "configured question id (q1, q2)",
					},
					&cli.StringFlag{
						Name:  "kind",
						Usage: "entity kind: actor or director",
					},
					&cli.StringFlag{
						Name:  "group-mode",
						Usage: "classified or constant",
					},
				),
				Action: network.NetworkAction,
			},
			{
				Name:   "all",
				Usage:  "Build every configured question",
				Flags:  runFlags(),
				Action: network.AllAction,
			},
			{
				Name:  "runs",
				Usage: "List recorded runs",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "maximum runs to show (0 for all)",
						Value: 20,
					},
					&cli.StringFlag{Name: "db", Usage: "run history database"},
					resultsDirFlag(),
				},
				Action: history.RunsAction,
			},
			{
				Name:      "run",
				Usage:     "Show a recorded run (latest if no id is given)",
				ArgsUsage: "[id]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "run history database"},
					resultsDirFlag(),
				},
				Action: history.RunAction,
			},
			{
				Name:  "quickstart",
				Usage: "Print a quick start guide",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return err
				},
			},
		},
	}
}
