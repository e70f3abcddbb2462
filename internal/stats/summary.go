// Package stats summarizes seeded populations for reporting and CSV export.
package stats

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"sporos/internal/model"
)

// GenomeSummary is one per-genome report row.
type GenomeSummary struct {
	GenomeID    uint32  `csv:"genome_id"`
	Birth       uint32  `csv:"birth_generation"`
	Connections int     `csv:"connections"`
	MeanWeight  float64 `csv:"mean_weight"`
	MinWeight   float64 `csv:"min_weight"`
	MaxWeight   float64 `csv:"max_weight"`
}

// Summarize builds one row per genome record, in input order.
func Summarize(genomes []model.GenomeRecord) []GenomeSummary {
	rows := make([]GenomeSummary, 0, len(genomes))
	for _, g := range genomes {
		row := GenomeSummary{
			GenomeID:    g.ID,
			Birth:       g.Birth,
			Connections: len(g.Connections),
		}
		if len(g.Connections) > 0 {
			weights := make([]float64, len(g.Connections))
			row.MinWeight = g.Connections[0].Weight
			row.MaxWeight = g.Connections[0].Weight
			for i, c := range g.Connections {
				weights[i] = c.Weight
				if c.Weight < row.MinWeight {
					row.MinWeight = c.Weight
				}
				if c.Weight > row.MaxWeight {
					row.MaxWeight = c.Weight
				}
			}
			row.MeanWeight = stat.Mean(weights, nil)
		}
		rows = append(rows, row)
	}
	return rows
}

// MeanConnections is the population-wide mean connection count.
func MeanConnections(rows []GenomeSummary) float64 {
	if len(rows) == 0 {
		return 0
	}
	counts := make([]float64, len(rows))
	for i, row := range rows {
		counts[i] = float64(row.Connections)
	}
	return stat.Mean(counts, nil)
}

// WriteSummaryCSV writes the rows under dir and returns the file path.
func WriteSummaryCSV(dir, name string, rows []GenomeSummary) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("export directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
