package main

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var rootsConfigPath string

func init() {
	rootsCmd.Flags().StringVarP(&rootsConfigPath, "config", "c", "", "diagnosis config (TOML)")
}

var rootsCmd = &cobra.Command{
	Use:   "roots",
	Short: "Validate the configured symbol search roots",
	Long: `Roots resolves the search roots declared by the configured loaders and
reports every directory that does not exist on disk. Broken roots are
skipped silently during diagnosis; this command makes them visible.`,
	RunE: runRoots,
}

func runRoots(cmd *cobra.Command, args []string) error {
	configureColor(cmd)

	cfg, err := loadDiagnosisConfig(rootsConfigPath)
	if err != nil {
		return err
	}
	_, loaders := buildSuggester(cfg)
	roots := loaders.ResolveSearchRoots()
	if len(roots) == 0 {
		fmt.Println("no search roots configured")
		return nil
	}

	type report struct {
		prefix string
		dir    string
		ok     bool
	}

	var (
		mu      sync.Mutex
		reports []report
	)
	var g errgroup.Group
	for _, root := range roots {
		root := root
		for _, dir := range root.Dirs {
			dir := dir
			g.Go(func() error {
				info, statErr := os.Stat(dir)
				ok := statErr == nil && info.IsDir()
				mu.Lock()
				reports = append(reports, report{prefix: root.Prefix, dir: dir, ok: ok})
				mu.Unlock()
				return nil
			})
		}
	}
	_ = g.Wait()

	sort.Slice(reports, func(i, j int) bool {
		if reports[i].prefix != reports[j].prefix {
			return reports[i].prefix < reports[j].prefix
		}
		return reports[i].dir < reports[j].dir
	})

	okMark := color.New(color.FgGreen).Sprint("ok")
	missingMark := color.New(color.FgRed).Sprint("missing")
	broken := 0
	for _, r := range reports {
		mark := okMark
		if !r.ok {
			mark = missingMark
			broken++
		}
		fmt.Printf("%-10s %s -> %s\n", mark, r.prefix, r.dir)
	}
	if broken > 0 {
		return fmt.Errorf("%d of %d search directories are missing", broken, len(reports))
	}
	return nil
}
