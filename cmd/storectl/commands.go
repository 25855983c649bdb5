package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"recyclemart/config"
	"recyclemart/internal/infra/auth"
	logs "recyclemart/internal/infra/log"
	"recyclemart/internal/infra/persistence/kv"
	"recyclemart/internal/infra/persistence/local"
	"recyclemart/internal/infra/persistence/storage"
	"recyclemart/internal/usecase/impl"
	"recyclemart/internal/util"

	"github.com/pkg/errors"
)

// openStore loads the config and opens the configured backend.
func openStore(ctx context.Context) (*config.Config, *slog.Logger, *storage.Backend, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, nil, nil, err
	}

	// A tool run must never write to a silent in-memory overlay.
	cfg.Storage.DegradeOnError = false

	backend, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to open store")
	}
	if err := backend.Start(ctx); err != nil {
		_ = backend.Close(ctx)

		return nil, nil, nil, errors.Wrap(err, "store is unreachable")
	}

	return cfg, logger, backend, nil
}

func runSeed(ctx context.Context) error {
	cfg, logger, backend, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer backend.Close(ctx)

	store := backend.Store
	seeder := impl.NewSeedService(impl.SeedServiceParams{
		UserRepo:      local.NewUserRepository(store, logger),
		VoucherRepo:   local.NewVoucherRepository(store, logger),
		ProductRepo:   local.NewMarketProductRepository(store, logger),
		InventoryRepo: local.NewInventoryRepository(store, logger),
		Hasher:        auth.NewBcryptHasher(cfg),
		Config:        cfg,
		Logger:        logger,
	})

	start := time.Now()
	report, err := seeder.Seed(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %s store in %s\n", cfg.Storage.Driver, util.FormatDuration(time.Since(start)))
	fmt.Printf("  users:    %d\n", report.Users)
	fmt.Printf("  vouchers: %d\n", report.Vouchers)
	fmt.Printf("  products: %d\n", report.Products)
	fmt.Printf("  devices:  %d\n", report.Devices)

	return nil
}

func runDump(ctx context.Context, output, prefix string) error {
	_, _, backend, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer backend.Close(ctx)

	snap, err := kv.Export(ctx, backend.Store, prefix, time.Now())
	if err != nil {
		return err
	}

	// Keep stdout clean for piping
	fmt.Fprintf(os.Stderr, "Dumped %d keys (%s), checksum %s\n", len(snap.Entries), util.FormatBytes(snap.Size()), snap.Checksum)

	if output == "-" {
		return writeSnapshot(os.Stdout, snap)
	}

	file, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "failed to create snapshot file")
	}
	if err := writeSnapshot(file, snap); err != nil {
		_ = file.Close()

		return err
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "failed to close snapshot file")
	}

	fileSum, err := util.CalculateFileChecksum(output)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (sha256 %s)\n", output, fileSum)

	return nil
}

func writeSnapshot(w io.Writer, snap *kv.Snapshot) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return errors.Wrap(encoder.Encode(snap), "failed to write snapshot")
}

func runRestore(ctx context.Context, input string, replace, verify bool) error {
	file, err := os.Open(input)
	if err != nil {
		return errors.Wrap(err, "failed to open snapshot file")
	}
	defer file.Close()

	var snap kv.Snapshot
	if err := json.NewDecoder(file).Decode(&snap); err != nil {
		return errors.Wrap(err, "failed to parse snapshot")
	}

	if verify {
		if err := snap.Verify(); err != nil {
			return err
		}
	}

	_, _, backend, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer backend.Close(ctx)

	start := time.Now()
	restored, err := kv.Import(ctx, backend.Store, &snap, replace)
	if err != nil {
		return err
	}

	fmt.Printf("Restored %d keys from %s in %s\n", restored, input, util.FormatDuration(time.Since(start)))

	return nil
}
