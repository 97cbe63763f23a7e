package cmd

import (
	"fmt"
	"strings"

	"github.com/MeKo-Tech/pixsynth/internal/export"
	"github.com/MeKo-Tech/pixsynth/internal/palette"
	"github.com/MeKo-Tech/pixsynth/internal/sprite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var textureCmd = &cobra.Command{
	Use:   "texture OUTPUT.png",
	Short: "Render a pixel-art texture or animation sheet",
	Long: `Render a pixel-art texture for an item or material kind.

With --frames > 1 the output is a vertical animation sheet, or a true
animated PNG when --apng is set. Known kinds: ` + strings.Join(sprite.Kinds(), ", ") + `.`,
	Args: cobra.ExactArgs(1),
	RunE: runTexture,
}

func init() {
	rootCmd.AddCommand(textureCmd)

	textureCmd.Flags().Int("size", 16, "Texture size in pixels (square)")
	textureCmd.Flags().String("kind", "bottle", "Item or material kind to render")
	textureCmd.Flags().String("palette", "", "Palette override (empty uses the kind's default, 'random' generates one)")
	textureCmd.Flags().Int("frames", 1, "Animation frame count")
	textureCmd.Flags().Int64("seed", -1, "Deterministic seed (negative draws a random seed)")
	textureCmd.Flags().Bool("apng", false, "Write an animated PNG instead of a sheet")
	textureCmd.Flags().Int("apng-delay", 8, "Frame delay in 1/100s when writing an animated PNG")
	textureCmd.Flags().Int("preview-scale", 1, "Nearest-neighbor upscale factor for the output")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"texture.size", "size"},
		{"texture.kind", "kind"},
		{"texture.palette", "palette"},
		{"texture.frames", "frames"},
		{"texture.seed", "seed"},
		{"texture.apng", "apng"},
		{"texture.apng_delay", "apng-delay"},
		{"texture.preview_scale", "preview-scale"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, textureCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runTexture(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	output := args[0]

	cfg := sprite.Config{
		Size:    viper.GetInt("texture.size"),
		Kind:    viper.GetString("texture.kind"),
		Palette: viper.GetString("texture.palette"),
		Frames:  viper.GetInt("texture.frames"),
		Seed:    seedFlag(viper.GetInt64("texture.seed")),
	}
	useAPNG := viper.GetBool("texture.apng")
	apngDelay := viper.GetInt("texture.apng_delay")
	previewScale := viper.GetInt("texture.preview_scale")

	logger.Info("Rendering texture",
		"kind", cfg.Kind,
		"size", cfg.Size,
		"frames", cfg.Frames,
		"output", output,
	)

	if useAPNG {
		frames, err := sprite.Frames(cfg)
		if err != nil {
			return fmt.Errorf("failed to render frames: %w", err)
		}
		if err := export.WriteAPNG(output, frames, apngDelay); err != nil {
			return fmt.Errorf("failed to write animated PNG: %w", err)
		}
		logger.Info("Animated texture written", "path", output, "frames", len(frames))
		return nil
	}

	img, err := sprite.Generate(cfg)
	if err != nil {
		return fmt.Errorf("failed to render texture: %w", err)
	}

	scaled := export.Upscale(img, previewScale)
	if err := export.WritePNG(output, scaled); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("Texture written", "path", output)
	return nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known kinds and palettes",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Kinds:")
		for _, k := range sprite.Kinds() {
			fmt.Println("  " + k)
		}
		fmt.Println("Palettes:")
		for _, p := range palette.Names() {
			fmt.Println("  " + p)
		}
		fmt.Println("  " + palette.RandomName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
