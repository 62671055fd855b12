package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/quizblocks/internal/app"
	"github.com/abhisek/quizblocks/internal/block"
)

// loadDocument reads path and loads every quiz block in it.
func loadDocument(path string) ([]block.Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return block.Process(block.Document{Path: path, Source: source}), nil
}

// runApp loads the document and launches the TUI.
func runApp(path string) error {
	results, err := loadDocument(path)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no quiz blocks in %s", path)
	}

	return app.Run(app.Options{
		Path:    path,
		Results: results,
	})
}
