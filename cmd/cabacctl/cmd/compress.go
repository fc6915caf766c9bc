package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramabhadrarao/DeepCABAC-Final/pkg/cabac"
	"github.com/ramabhadrarao/DeepCABAC-Final/pkg/util"
)

// NewCompressCmd creates the compress cobra command
func NewCompressCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Compress a raster image and report the result",
		Long:  "Decodes a PNG/JPEG/GIF, runs the block compression pipeline, and prints per-block bit counts, payload size and metadata.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			blockSize, _ := cmd.Flags().GetInt("block-size")
			quantLevel, _ := cmd.Flags().GetInt("quant-level")
			colorSpace, _ := cmd.Flags().GetString("color-space")
			adaptive, _ := cmd.Flags().GetBool("adaptive")
			outPath, _ := cmd.Flags().GetString("out")

			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}

			opts := &cabac.Options{
				BlockSize:         blockSize,
				QuantizationLevel: quantLevel,
				ColorSpace:        cabac.ColorSpace(colorSpace),
				Adaptive:          adaptive,
			}
			return runCompress(filePath, opts, outPath)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "Image file path to compress")
	pf.Int("block-size", 8, "Side of the square coding blocks")
	pf.Int("quant-level", 8, "Number of quantization buckets per sample")
	pf.String("color-space", "YCbCr", "Coding color space (RGB|YCbCr)")
	pf.Bool("adaptive", false, "Update context statistics after each coded sample")
	pf.String("out", "", "Write the packed per-block payload to this file")

	return cmd
}

// runCompress executes the pipeline and prints the report
func runCompress(filePath string, opts *cabac.Options, outPath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %v", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode error: %w", err)
	}

	frame := cabac.FromImage(src)
	comp, err := cabac.NewCompressor(opts)
	if err != nil {
		return err
	}

	res, err := comp.Compress(frame)
	if err != nil {
		return fmt.Errorf("compress error: %w", err)
	}

	fmt.Printf("Source: %s (%s, %dx%d)\n\n", filePath, format, frame.Width, frame.Height)

	fmt.Println("=== Metadata ===")
	meta, _ := json.MarshalIndent(res.Metadata, "", "  ")
	fmt.Println(string(meta))
	fmt.Printf("Result ID: %s\n\n", util.HashUUID(res.Metadata))

	fmt.Println("=== Blocks ===")
	fmt.Printf("Blocks: %d\n", len(res.Blocks))

	maxBlocksToShow := 4
	if len(res.Blocks) < maxBlocksToShow {
		maxBlocksToShow = len(res.Blocks)
	}
	for i := 0; i < maxBlocksToShow; i++ {
		fmt.Printf("Block %d: %d bits\n", i, res.Blocks[i].Len())
	}
	if len(res.Blocks) > maxBlocksToShow {
		fmt.Printf("... %d more\n", len(res.Blocks)-maxBlocksToShow)
	}

	rawBytes := frame.Width * frame.Height * 3
	fmt.Println("\n=== Size ===")
	fmt.Printf("Raw: %d bytes\n", rawBytes)
	fmt.Printf("Compressed: %d bits (%d bytes packed)\n", res.CompressedBits(), res.CompressedBytes())
	if res.CompressedBytes() > 0 {
		fmt.Printf("Ratio: %.3f\n", float64(rawBytes)/float64(res.CompressedBytes()))
	}

	if outPath != "" {
		var payload []byte
		for _, b := range res.Blocks {
			payload = append(payload, b.Bytes()...)
		}
		fmt.Printf("\nWriting payload (%d bytes) to %s\n", len(payload), outPath)
		return os.WriteFile(outPath, payload, 0644)
	}
	return nil
}
