// Command rascaline computes the neighbor-list descriptor tensor for a
// batch of systems described in a YAML file, using a calculator
// configuration loaded from a second YAML file, and prints a summary of
// the resulting TensorMap.
//
// Initial arg parsing and command definition follow the
// "github.com/urfave/cli/v2" pattern: a single &cli.App{} with one
// subcommand, "compute".
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/atomistics/rascaline/calculator"
	"github.com/atomistics/rascaline/driver"
)

func main() {
	if err := application().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func application() *cli.App {
	return &cli.App{
		Name:  "rascaline",
		Usage: "compute atomistic neighbor-list descriptors",
		Commands: []*cli.Command{
			{
				Name:  "compute",
				Usage: "compute the pair-direction TensorMap for a batch of systems",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Usage:    "path to a YAML calculator config (cutoff, full_neighbor_list)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "systems",
						Usage:    "path to a YAML list of systems (species, positions, cell)",
						Required: true,
					},
				},
				Action: computeCommand,
			},
		},
	}
}

func computeCommand(c *cli.Context) error {
	configData, err := os.ReadFile(c.String("config"))
	if err != nil {
		return fmt.Errorf("rascaline: reading config: %w", err)
	}

	cfg, err := calculator.ParseConfig(configData)
	if err != nil {
		return err
	}

	systems, err := loadSystems(c.String("systems"))
	if err != nil {
		return err
	}

	calc, err := calculator.NewCalculator(
		calculator.WithCutoff(cfg.Cutoff),
		calculator.WithFullNeighborList(cfg.FullNeighborList),
	)
	if err != nil {
		return err
	}

	result, err := driver.Run(calc, systems, calculator.Selection{})
	if err != nil {
		return err
	}

	return printSummary(c.App.Writer, result)
}
