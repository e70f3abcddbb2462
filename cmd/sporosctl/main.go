package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"sporos/internal/nn"
	"sporos/internal/storage"
	sporosapi "sporos/pkg/sporos"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "seed":
		return runSeed(ctx, args[1:])
	case "population":
		return runPopulation(ctx, args[1:])
	case "populations":
		return runPopulations(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	case "activations":
		return runActivations(args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\n\nusage: sporosctl <init|seed|population|populations|export|activations> [flags]", msg)
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "sporos.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	if err := store.Init(ctx); err != nil {
		return err
	}
	fmt.Printf("initialized %s store\n", *storeKind)
	return nil
}

func runSeed(ctx context.Context, args []string) error {
	fs, opts := newSeedFlagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := buildSeedConfig(fs, opts)
	if err != nil {
		return err
	}

	client, err := sporosapi.NewClient(ctx, sporosapi.Options{
		StoreKind:  cfg.Store.Backend,
		DBPath:     cfg.Store.DBPath,
		ExportsDir: cfg.Export.Dir,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	result, err := client.SeedPopulation(ctx, cfg, opts.populationID)
	if err != nil {
		return err
	}

	fmt.Printf("population: %s\n", result.PopulationID)
	fmt.Printf("genomes: %d\n", result.Genomes)
	fmt.Printf("candidate connections: %d\n", result.CandidateCount)
	fmt.Printf("mean connections per genome: %.2f\n", result.MeanConnections)
	return nil
}

func runPopulation(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("population", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "sporos.db", "sqlite database path")
	populationID := fs.String("id", "", "population snapshot id")
	limit := fs.Int("limit", 10, "genome rows to print (0 for all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *populationID == "" {
		return usageError("population requires -id")
	}

	client, err := sporosapi.NewClient(ctx, sporosapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	rec, rows, err := client.PopulationSummary(ctx, *populationID)
	if err != nil {
		return err
	}

	fmt.Printf("population %s: %d inputs, %d outputs, weights [%g, %g), precision %s\n",
		rec.ID, rec.Inputs, rec.Outputs, rec.WeightMin, rec.WeightMax, rec.Precision)
	fmt.Printf("next genome id %d, next innovation id %d, %d genomes\n",
		rec.NextGenomeID, rec.NextInnovationID, len(rec.GenomeIDs))

	n := len(rows)
	if *limit > 0 && *limit < n {
		n = *limit
	}
	for _, row := range rows[:n] {
		fmt.Printf("  genome %d: %d connections, weight mean %.3f range [%.3f, %.3f]\n",
			row.GenomeID, row.Connections, row.MeanWeight, row.MinWeight, row.MaxWeight)
	}
	if n < len(rows) {
		fmt.Printf("  ... %d more\n", len(rows)-n)
	}
	return nil
}

func runPopulations(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("populations", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "sporos.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := sporosapi.NewClient(ctx, sporosapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	ids, err := client.ListPopulations(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "sporos.db", "sqlite database path")
	populationID := fs.String("id", "", "population snapshot id")
	dir := fs.String("dir", "exports", "export directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *populationID == "" {
		return usageError("export requires -id")
	}

	client, err := sporosapi.NewClient(ctx, sporosapi.Options{
		StoreKind:  *storeKind,
		DBPath:     *dbPath,
		ExportsDir: *dir,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	path, err := client.ExportSummary(ctx, *populationID)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runActivations(args []string) error {
	fs := flag.NewFlagSet("activations", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, name := range nn.ListActivations() {
		if name == nn.DefaultActivationName {
			fmt.Printf("%s (default)\n", name)
			continue
		}
		fmt.Println(name)
	}
	return nil
}
