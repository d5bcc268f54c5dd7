package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/txnotify-dev/txnotify/internal/config"
	"github.com/txnotify-dev/txnotify/internal/ingest"
	"github.com/txnotify-dev/txnotify/internal/parser"
	"github.com/txnotify-dev/txnotify/internal/report"
	"github.com/txnotify-dev/txnotify/internal/runlog"
)

func newBatchCommand() *cobra.Command {
	var writeLog bool
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "batch <file-or-dir>",
		Short: "Parse a multi-example file or a directory of notification files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			return runBatch(cmd.OutOrStdout(), args[0], cfg, writeLog)
		},
	}

	cmd.Flags().BoolVar(&writeLog, "log", false, "append a CSV summary row per record")
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to txnotify.yaml")

	return cmd
}

// defaultConfigFile is picked up from the working directory when no
// --config flag is given.
const defaultConfigFile = "txnotify.yaml"

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return config.Default(), nil
		}
		path = defaultConfigFile
	}
	return config.Load(path)
}

func runBatch(out io.Writer, target string, cfg *config.Config, writeLog bool) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	var entries []runlog.Entry
	now := time.Now()

	if info.IsDir() {
		files, err := ingest.Scan(target)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no .txt files in %s", target)
		}
		for _, f := range files {
			n, err := ingest.ReadFile(f.Path)
			if err != nil {
				return err
			}
			rec, err := parser.Parse(n.Content, n.AppName, n.Title)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", f.Name, err)
			}
			outPath := resultPath(f.Path, cfg)
			if err := report.WriteFile(outPath, rec); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s -> %s\n", f.Name, filepath.Base(outPath))
			if writeLog {
				entries = append(entries, runlog.FromRecord(f.Name, rec, now))
			}
		}
	} else {
		f, err := os.Open(target)
		if err != nil {
			return fmt.Errorf("opening %s: %w", target, err)
		}
		ns, err := ingest.ReadBatch(f)
		f.Close()
		if err != nil {
			return err
		}
		for i, n := range ns {
			rec, err := parser.Parse(n.Content, n.AppName, n.Title)
			if err != nil {
				return fmt.Errorf("example %d: %w", i+1, err)
			}
			fmt.Fprintf(out, "example %d (%s):\n", i+1, n.AppName)
			if err := report.Write(out, rec); err != nil {
				return err
			}
			if writeLog {
				source := fmt.Sprintf("%s#%d", filepath.Base(target), i+1)
				entries = append(entries, runlog.FromRecord(source, rec, now))
			}
		}
	}

	if writeLog && len(entries) > 0 {
		dir := target
		if !info.IsDir() {
			dir = filepath.Dir(target)
		}
		if err := runlog.Append(dir, entries); err != nil {
			return err
		}
	}
	return nil
}

// resultPath maps source.txt to source<suffix>.json, honoring the
// configured output directory.
func resultPath(src string, cfg *config.Config) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	dir := filepath.Dir(src)
	if cfg.Output.Dir != "" {
		dir = cfg.Output.Dir
	}
	return filepath.Join(dir, base+cfg.Output.Suffix+".json")
}
