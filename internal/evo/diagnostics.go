package evo

import "genetic/internal/model"

// Summarize reduces one generation's fitness sequence to best/mean/min.
func Summarize(generation int, fitnesses []float64) model.GenerationDiagnostics {
	diag := model.GenerationDiagnostics{
		Generation: generation,
		Population: len(fitnesses),
	}
	if len(fitnesses) == 0 {
		return diag
	}

	best, worst, sum := fitnesses[0], fitnesses[0], 0.0
	for _, f := range fitnesses {
		if f > best {
			best = f
		}
		if f < worst {
			worst = f
		}
		sum += f
	}
	diag.BestFitness = best
	diag.MinFitness = worst
	diag.MeanFitness = sum / float64(len(fitnesses))
	return diag
}
