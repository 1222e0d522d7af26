package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/vitrine/internal/config"
)

// imageExtensions lists the decodable formats the init scan picks up.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a gallery document interactively",
		Long:  `Walk through a short form and write a gallery.yaml, optionally pre-filled with the images found in the target directory.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing gallery file")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	target := filepath.Join(dir, defaultGalleryFile)
	if !force {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", target)
		}
	}

	var (
		name      = filepath.Base(absOrSelf(dir))
		desc      string
		themeName = "dark"
		scan      = true
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Gallery name").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Description("Shown in the viewer's info overlay, markdown allowed").
				Value(&desc),
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Dark", "dark"),
					huh.NewOption("Light", "light"),
				).
				Value(&themeName),
			huh.NewConfirm().
				Title("Scan the directory for images?").
				Value(&scan),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	gal := &config.Gallery{
		Version:     "1.0.0",
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(desc),
		Theme:       themeName,
		Layout:      config.DefaultLayout(),
	}

	if scan {
		entries, err := scanImages(dir)
		if err != nil {
			return err
		}
		gal.Entries = entries
	}

	out, err := yaml.Marshal(gal)
	if err != nil {
		return fmt.Errorf("encode gallery: %w", err)
	}
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return fmt.Errorf("write gallery file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s with %d image(s)\n", target, len(gal.Entries))
	return nil
}

// scanImages lists decodable images directly inside dir, sorted by
// name (ReadDir order), with captions derived from file names.
func scanImages(dir string) ([]config.Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan directory: %w", err)
	}

	var entries []config.Entry
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !imageExtensions[ext] {
			continue
		}
		entries = append(entries, config.Entry{
			Source:  d.Name(),
			Caption: captionFromName(d.Name()),
		})
	}
	return entries, nil
}

// captionFromName turns "alpine-lake_01.png" into "Alpine lake 01".
func captionFromName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return name
	}
	return strings.ToUpper(base[:1]) + base[1:]
}

func absOrSelf(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}
