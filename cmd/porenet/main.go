package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"porenet/internal/models"
	"porenet/pkg/config"
	"porenet/pkg/snow"
	"porenet/pkg/visualization"
)

func main() {
	inputDir := flag.String("input", "", "Directory containing binary slice images (PNG or JPEG)")
	outputDir := flag.String("output", "regions", "Directory to save labeled region slices")
	configPath := flag.String("config", "porenet.yaml", "Configuration file path")
	writeConfig := flag.Bool("write-config", false, "Write the default configuration file and exit")
	flag.Parse()

	if *writeConfig {
		if err := config.CreateDefaultConfigFile(*configPath); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		fmt.Printf("Default configuration written to %s\n", *configPath)
		return
	}

	if *inputDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Println("================================")
	fmt.Println("PORENET: SNOW PORE-NETWORK PARTITIONING")
	fmt.Println("================================")

	stack, err := loadStack(*inputDir)
	if err != nil {
		log.Fatalf("Failed to load slices: %v", err)
	}
	fmt.Printf("Loaded %d slices with dimensions %dx%d\n", len(stack.Slices), stack.Width, stack.Height)

	mask := stack.ToMask(cfg.Input.Threshold, cfg.Input.Invert)

	opts := snow.DefaultOptions()
	opts.RMax = cfg.Partition.RMax
	opts.Sigma = cfg.Partition.Sigma
	opts.MaxIters = cfg.Partition.MaxIters
	opts.Mask = cfg.Partition.Mask
	opts.Randomize = cfg.Partition.Randomize
	opts.Seed = cfg.Partition.Seed
	if cfg.Output.Verbose {
		opts.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	fmt.Println("Starting partitioning...")
	startTime := time.Now()
	res, err := snow.Partition(mask, opts)
	if err != nil {
		log.Fatalf("Partitioning failed: %v", err)
	}

	summary := snow.Summarize(res)
	fmt.Printf("\nPartitioning completed in %.2f seconds\n", time.Since(startTime).Seconds())
	fmt.Printf("Porosity: %.3f\n", summary.Porosity)
	fmt.Printf("Pore regions: %d\n", summary.Regions)
	fmt.Printf("Mean region size: %.1f voxels (stddev %.1f)\n", summary.MeanRegionSize, summary.StdRegionSize)
	fmt.Printf("Largest region: %d voxels\n", summary.MaxRegionSize)

	viewer, err := visualization.NewViewer(res.Regions)
	if err != nil {
		log.Fatalf("Failed to create viewer: %v", err)
	}
	fmt.Printf("\nSaving labeled slices along %s axis to: %s\n", cfg.Output.SliceAxis, *outputDir)
	if err := viewer.SaveSliceSequence(cfg.Output.SliceAxis, *outputDir); err != nil {
		log.Fatalf("Failed to save slices: %v", err)
	}
	fmt.Println("Done.")
}

// loadStack reads all PNG/JPEG images in a directory, sorted by the numeric
// part of their filenames so slice order is preserved.
func loadStack(dir string) (*models.Stack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".png" || ext == ".jpg" || ext == ".jpeg" {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no PNG or JPEG images found in %s", dir)
	}

	sort.Slice(files, func(i, j int) bool {
		return extractNumber(files[i]) < extractNumber(files[j])
	})

	stack := &models.Stack{}
	for _, name := range files {
		img, err := loadImage(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to load image %s: %w", name, err)
		}
		if len(stack.Slices) == 0 {
			bounds := img.Bounds()
			stack.Width = bounds.Dx()
			stack.Height = bounds.Dy()
		}
		stack.Slices = append(stack.Slices, img)
	}
	return stack, nil
}

// extractNumber extracts the numeric part from a filename.
func extractNumber(filename string) int {
	numStr := ""
	for _, c := range filepath.Base(filename) {
		if c >= '0' && c <= '9' {
			numStr += string(c)
		}
	}
	if numStr != "" {
		if num, err := strconv.Atoi(numStr); err == nil {
			return num
		}
	}
	return 0
}

// loadImage loads an image from a file.
func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}
