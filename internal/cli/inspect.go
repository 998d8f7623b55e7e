package cli

import (
	"strings"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/serializer"
	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [flags] file",
		Short: "Print a table.",
		Long:  `Print a data file described by --config, or a compressed snapshot written by the categorical command.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	var t tidy.Table
	if strings.HasSuffix(conf.Input, serializer.SnapshotExtension) {
		ser, err := conf.Serializer()
		if err != nil {
			return err
		}
		t, err = serializer.LoadFile(conf.Input, ser)
		if err != nil {
			return err
		}
	} else if t, err = loadInput(conf); err != nil {
		return err
	}
	return printTable(cmd, t)
}
