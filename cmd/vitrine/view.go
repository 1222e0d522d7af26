package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/vitrine/internal/config"
	"github.com/alexisbeaulieu97/vitrine/internal/imaging"
	"github.com/alexisbeaulieu97/vitrine/internal/logger"
	"github.com/alexisbeaulieu97/vitrine/internal/prefs"
	"github.com/alexisbeaulieu97/vitrine/internal/tui/viewer"
)

const defaultGalleryFile = "gallery.yaml"

func newViewCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [gallery.yaml]",
		Short: "Open a gallery document in the interactive viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultGalleryFile
			if len(args) == 1 {
				path = args[0]
			}
			return runView(path, flags, log)
		},
	}

	return cmd
}

func runView(path string, flags *rootFlags, log *logger.Logger) error {
	if err := validateGalleryPath(path); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the viewer needs an interactive terminal")
	}

	gal, err := config.ParseGallery(path)
	if err != nil {
		return err
	}

	// Relative image sources resolve against the document's directory.
	root := filepath.Dir(path)
	loader := imaging.NewLoader(root)

	var store *prefs.Store
	if !flags.noPrefs {
		store = openPrefs(log)
		if store != nil {
			defer store.Close()
		}
	}

	log.WithFields(map[string]any{
		"gallery": gal.Name,
		"entries": len(gal.Entries),
	}).Info("opening viewer")

	m := viewer.NewModel(gal, loader, store, log)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error(err, "viewer terminated abnormally")
		return fmt.Errorf("failed to run viewer: %w", err)
	}

	return nil
}

// openPrefs opens the preference store. Failure is not fatal: the
// viewer runs with session-only preferences and logs why.
func openPrefs(log *logger.Logger) *prefs.Store {
	path, err := prefs.DefaultPath()
	if err != nil {
		log.Error(err, "preference path resolution failed")
		return nil
	}
	store, err := prefs.Open(path)
	if err != nil {
		log.Error(err, "preference store unavailable")
		return nil
	}
	return store
}

func validateGalleryPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("gallery file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve gallery path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("gallery file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("gallery path %s is a directory", abs)
	}

	return nil
}
