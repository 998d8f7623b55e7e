package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/datasource/file"
	"github.com/go-sif/tidy/internal/table"
	"github.com/go-sif/tidy/operations/transform"
	"github.com/go-sif/tidy/serializer"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// loadConfig reads the --config file, if any, and applies the input argument on top of it
func loadConfig(cmd *cobra.Command, args []string) (*Config, error) {
	conf := &Config{}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if len(path) > 0 {
		if conf, err = LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if len(args) > 0 {
		conf.Input = args[0]
	}
	if len(conf.Input) == 0 {
		return nil, fmt.Errorf("no input file given")
	}
	return conf, nil
}

// loadInput loads the input described by conf, grouping it if requested
func loadInput(conf *Config) (tidy.Table, error) {
	s, err := conf.Schema()
	if err != nil {
		return nil, err
	}
	parser, err := conf.Parser()
	if err != nil {
		return nil, err
	}
	t, err := file.LoadTable(conf.Input, parser, s)
	if err != nil {
		return nil, err
	}
	if len(conf.GroupBy) > 0 {
		return t.To(transform.GroupBy(conf.GroupBy...))
	}
	return t, nil
}

// writeSnapshot stores t at path, via a snapshot Store rooted in its directory
func writeSnapshot(conf *Config, path string, t tidy.Table) error {
	ser, err := conf.Serializer()
	if err != nil {
		return err
	}
	store, err := serializer.NewStore(filepath.Dir(path), ser)
	if err != nil {
		return err
	}
	return store.Save(strings.TrimSuffix(filepath.Base(path), serializer.SnapshotExtension), t)
}

// terminalWidth returns the width of the terminal behind w, or 0 if w is not a terminal
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// printTable renders t to the command's output, within the terminal width
func printTable(cmd *cobra.Command, t tidy.Table) error {
	rows, err := cmd.Flags().GetInt("rows")
	if err != nil {
		return err
	}
	ct, err := table.From(t)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	_, err = io.WriteString(out, table.Format(ct, rows, terminalWidth(out)))
	return err
}
