package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"genetic/internal/model"
	"genetic/pkg/genetic"
)

// printer renders tables on a terminal and JSON lines everywhere else.
type printer struct {
	out  io.Writer
	asJSON bool
}

func newPrinter(out io.Writer, forceJSON bool) printer {
	return printer{out: out, asJSON: forceJSON || !isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type runSummaryLine struct {
	RunID            string    `json:"run_id"`
	Seed             int64     `json:"seed"`
	BestByGeneration []float64 `json:"best_by_generation"`
	FinalBestFitness float64   `json:"final_best_fitness"`
	FinalPopulation  [][]int   `json:"final_population,omitempty"`
}

func (p printer) runSummaries(summaries []genetic.RunSummary, withPopulation bool) error {
	if p.asJSON {
		enc := json.NewEncoder(p.out)
		for _, s := range summaries {
			line := runSummaryLine{
				RunID:            s.RunID,
				Seed:             s.Seed,
				BestByGeneration: s.BestByGeneration,
				FinalBestFitness: s.FinalBestFitness,
			}
			if withPopulation {
				line.FinalPopulation = s.FinalPopulation
			}
			if err := enc.Encode(line); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN ID\tSEED\tGENERATIONS\tFINAL BEST")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\n", s.RunID, s.Seed, len(s.BestByGeneration)-1, s.FinalBestFitness)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if withPopulation {
		for _, s := range summaries {
			fmt.Fprintf(p.out, "%s: %v\n", s.RunID, s.FinalPopulation)
		}
	}
	return nil
}

func (p printer) runItems(items []genetic.RunItem) error {
	if p.asJSON {
		enc := json.NewEncoder(p.out)
		for _, item := range items {
			if err := enc.Encode(item); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN ID\tCREATED\tPROBLEM\tPOP\tGENS\tEVALUATIONS\tFINAL BEST")
	for _, item := range items {
		created := item.CreatedAtUTC
		if ts, err := time.Parse(time.RFC3339, item.CreatedAtUTC); err == nil {
			created = humanize.Time(ts)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%.2f\n",
			item.RunID, created, item.Problem, item.Population, item.Generations,
			humanize.Comma(int64(item.Evaluations)), item.FinalBestFitness)
	}
	return tw.Flush()
}

func (p printer) runRecord(record model.RunRecord) error {
	if p.asJSON {
		return json.NewEncoder(p.out).Encode(record)
	}

	params := record.Parameters
	fmt.Fprintf(p.out, "run %s (%s, created %s)\n", record.ID, params.Problem, humanize.Time(record.CreatedAt))
	fmt.Fprintf(p.out, "population=%d length=%d generations=%d crossover=%g mutation=%g seed=%d evaluations=%s\n",
		params.PopulationSize, params.ChromosomeLength, params.Generations,
		params.CrossoverRate, params.MutationRate, params.Seed, humanize.Comma(int64(record.Evaluations)))

	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GEN\tBEST\tMEAN\tMIN")
	for _, diag := range record.Diagnostics {
		fmt.Fprintf(tw, "%d\t%.2f\t%.3f\t%.2f\n", diag.Generation, diag.BestFitness, diag.MeanFitness, diag.MinFitness)
	}
	return tw.Flush()
}
