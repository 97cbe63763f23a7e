package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/MeKo-Tech/pixsynth/internal/export"
	"github.com/MeKo-Tech/pixsynth/internal/pack"
	"github.com/MeKo-Tech/pixsynth/internal/rng"
	"github.com/MeKo-Tech/pixsynth/internal/sprite"
	"github.com/MeKo-Tech/pixsynth/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Render every known kind in parallel",
	Long: `Render a texture for every item and material kind.

Textures go to the output directory as individual PNG files, or into a
single SQLite pack archive with --format=pack.`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Int("size", 16, "Texture size in pixels (square)")
	batchCmd.Flags().Int("frames", 1, "Animation frame count per texture")
	batchCmd.Flags().Int64("seed", -1, "Deterministic base seed (negative draws a random seed)")
	batchCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	batchCmd.Flags().Bool("progress", true, "Show progress bar")
	batchCmd.Flags().String("format", "folder", "Output format: folder or pack")
	batchCmd.Flags().String("output-file", "", "Output file path for pack format (e.g., textures.pixpack)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"batch.size", "size"},
		{"batch.frames", "frames"},
		{"batch.seed", "seed"},
		{"batch.workers", "workers"},
		{"batch.progress", "progress"},
		{"batch.format", "format"},
		{"batch.output_file", "output-file"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, batchCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	size := viper.GetInt("batch.size")
	frames := viper.GetInt("batch.frames")
	workers := viper.GetInt("batch.workers")
	showProgress := viper.GetBool("batch.progress")
	format := viper.GetString("batch.format")
	outputFile := viper.GetString("batch.output_file")
	outputDir := viper.GetString("output-dir")

	if format != "folder" && format != "pack" {
		return fmt.Errorf("invalid format %q: must be 'folder' or 'pack'", format)
	}
	if format == "pack" && outputFile == "" {
		return fmt.Errorf("--output-file is required when using --format=pack")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Resolve the base seed once so every texture in the batch shares
	// the same deterministic run.
	seed := rng.Resolve(seedFlag(viper.GetInt64("batch.seed")))

	kinds := sprite.Kinds()

	logger.Info("Starting batch texture rendering",
		"kinds", len(kinds),
		"size", size,
		"frames", frames,
		"seed", seed,
		"workers", workers,
		"format", format,
	)

	var packWriter *pack.Writer
	if format == "pack" {
		meta := pack.Metadata{
			Name:        "pixsynth textures",
			Description: "Procedural pixel-art texture pack",
			Generator:   "pixsynth",
			Version:     "1.0",
			Size:        size,
			Frames:      frames,
			Seed:        seed,
		}
		var err error
		packWriter, err = pack.NewWriter(outputFile, meta)
		if err != nil {
			return fmt.Errorf("failed to create pack writer: %w", err)
		}
		defer packWriter.Close()
	} else {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	renderer := &batchRenderer{
		size:       size,
		frames:     frames,
		seed:       seed,
		outputDir:  outputDir,
		packWriter: packWriter,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received interrupt signal, cancelling...")
		cancel()
	}()

	tasks := make([]worker.Task, 0, len(kinds))
	for _, kind := range kinds {
		tasks = append(tasks, worker.Task{Key: kind})
	}

	progress := worker.NewProgress(len(tasks), showProgress)

	pool := worker.New(worker.Config{
		Workers:    workers,
		Renderer:   renderer,
		OnProgress: progress.Callback(),
	})

	results := pool.Run(ctx, tasks)
	progress.Done()

	var failedCount int
	for _, r := range results {
		if r.Err != nil {
			failedCount++
			logger.Error("Texture rendering failed", "kind", r.Task.Key, "error", r.Err)
		}
	}

	logger.Info(progress.Summary())

	if failedCount > 0 {
		return fmt.Errorf("%d textures failed to render", failedCount)
	}

	if format == "pack" {
		if err := packWriter.Flush(); err != nil {
			return fmt.Errorf("failed to flush pack: %w", err)
		}
		logger.Info("Pack written", "path", outputFile, "textures", len(kinds))
	}

	return nil
}

// batchRenderer renders one kind per task, either to a PNG file in the
// output directory or into the shared pack writer.
type batchRenderer struct {
	size       int
	frames     int
	seed       int64
	outputDir  string
	packWriter *pack.Writer
}

func (b *batchRenderer) Render(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	img, err := sprite.Generate(sprite.Config{
		Size:   b.size,
		Kind:   key,
		Frames: b.frames,
		Seed:   &b.seed,
	})
	if err != nil {
		return "", err
	}

	if b.packWriter != nil {
		data, err := export.EncodePNG(img)
		if err != nil {
			return "", err
		}
		if err := b.packWriter.WriteTexture(key, b.frames, data); err != nil {
			return "", err
		}
		return key, nil
	}

	path := filepath.Join(b.outputDir, key+".png")
	if err := export.WritePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}
