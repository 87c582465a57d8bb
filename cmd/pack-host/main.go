// Command pack-host loads a pack and invokes its greet export locally,
// the way the Builder orchestration host would. It exists for pack
// development: build your pack, point pack-host at its manifest, and see
// the status and captured output without deploying to a device.
//
// Packs must be built in reactor mode (GOOS=wasip1 GOARCH=wasm with
// -buildmode=c-shared); a pack built as a plain command exits while
// loading and is rejected before any invocation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	packsdk "github.com/RachEma-ux/pack-sdk"
	"github.com/RachEma-ux/pack-sdk/domain/errors"
	"github.com/RachEma-ux/pack-sdk/host"
	"github.com/RachEma-ux/pack-sdk/schema"
)

func main() {
	manifestPath := flag.String("manifest", "", "path to the pack manifest (YAML)")
	wasmPath := flag.String("wasm", "", "path to a wasm module (bypasses the manifest)")
	printSchema := flag.Bool("print-schema", false, "print the manifest JSON schema and exit")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	slog.Info("pack-host starting", "sdk_version", packsdk.Version)

	if *printSchema {
		data, err := schema.ManifestSchema()
		if err != nil {
			slog.Error("Failed to generate manifest schema", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	if err := run(context.Background(), *manifestPath, *wasmPath, flag.Arg(0)); err != nil {
		detail := errors.ToErrorDetail(err)
		slog.Error("Pack invocation failed", "type", detail.Type, "code", detail.Code, "error", detail.Message)
		os.Exit(1)
	}
}

func run(ctx context.Context, manifestPath, wasmPath, name string) error {
	modulePath := wasmPath
	entry := ""

	if manifestPath != "" {
		raw, err := os.ReadFile(manifestPath)
		if err != nil {
			return fmt.Errorf("reading manifest: %w", err)
		}
		manifest, err := host.NewLoader().LoadManifest(raw)
		if err != nil {
			return err
		}
		modulePath = filepath.Join(filepath.Dir(manifestPath), manifest.Module)
		entry = manifest.EntryOrDefault()
		slog.Info("Loaded manifest", "pack", manifest.Name, "version", manifest.Version, "entry", entry)
	}

	if modulePath == "" {
		return fmt.Errorf("either -manifest or -wasm is required")
	}

	wasmBytes, err := os.ReadFile(modulePath)
	if err != nil {
		return fmt.Errorf("reading pack module: %w", err)
	}

	var opts []host.Option
	if entry != "" {
		opts = append(opts, host.WithInstanceOptions(host.WithEntry(entry)))
	}

	executor, err := host.NewExecutor(ctx, opts...)
	if err != nil {
		return fmt.Errorf("creating executor: %w", err)
	}
	defer executor.Close(ctx)

	instance, err := executor.LoadPack(ctx, wasmBytes)
	if err != nil {
		return err
	}

	outcome, err := instance.Greet(ctx, name)
	if err != nil {
		return err
	}

	slog.Info("Pack returned", "status", outcome.StatusCode(), "outcome", outcome.String())
	if !outcome.IsSuccess() {
		return fmt.Errorf("pack reported %s (status %d)", outcome, outcome.StatusCode())
	}
	return nil
}
