package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio.dev/internal/handlers"
	"folio.dev/internal/render"
	"folio.dev/internal/services"
)

var viewer string

var generateCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Fetch projects once and write a static index.html",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&viewer, "viewer", "", "viewer id, defaults to viewer.fallback")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	outputDir := args[0]

	// Ensure output directory exists
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	page, err := render.NewPage(cfg)
	if err != nil {
		return err
	}

	id := services.ResolveViewer(viewer, "", cfg.Viewer.Fallback)
	renderer := render.NewRenderer(handlers.Animator(cfg))
	svc := handlers.NewProjectService(cfg, logger)

	fmt.Printf("Generating portfolio for viewer %q...\n", id)
	projects, err := handlers.LoadProjects(cmd.Context(), svc, renderer, id)
	if err != nil {
		// The page is still written, with the error message in place of the cards.
		logger.Warn("Project fetch failed", zap.String("viewer", id), zap.Error(err))
		fmt.Fprintf(os.Stderr, "  WARNING: %s\n", render.ErrorMessage(err))
	}

	var buf bytes.Buffer
	if err := page.Write(&buf, id, projects); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	path := filepath.Join(outputDir, "index.html")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Printf("  Created %s (%d bytes)\n", path, buf.Len())
	fmt.Println("Done!")
	return nil
}
