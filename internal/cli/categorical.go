package cli

import (
	"fmt"
	"strings"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/operations/transform"
	"github.com/spf13/cobra"
)

func newCategoricalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorical [flags] input_file",
		Short: "Reorder the levels of a categorical column.",
		Long: `Convert a column to a categorical whose levels are ordered by an aggregate of a value column,
optionally keeping only the top levels. Prints the resulting levels and a preview of the table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCategorical,
	}
	cmd.Flags().String("column", "", "column to convert")
	cmd.Flags().String("order-by", "", "value column whose aggregate orders the levels")
	cmd.Flags().String("aggregate", "", "aggregator applied to the value column: sum, mean, count, min or max")
	cmd.Flags().Bool("reverse", false, "reverse the level order")
	cmd.Flags().Int("top-n", 0, "retain only the first n levels")
	cmd.Flags().Bool("keep-other", false, "coalesce levels beyond top-n instead of voiding them")
	cmd.Flags().String("other-label", "", "label of the coalesced level")
	cmd.Flags().Bool("order-groups", false, "order groups by their total aggregate")
	cmd.Flags().StringSlice("group-by", nil, "columns to group by before ordering levels")
	cmd.Flags().String("snapshot", "", "write the result to a compressed snapshot file")
	return cmd
}

// applyCategoricalFlags overrides the categorical section of conf with any flags set on the command line
func applyCategoricalFlags(cmd *cobra.Command, conf *Config) error {
	flags := cmd.Flags()
	cc := &conf.Categorical
	var err error
	for name, target := range map[string]*string{
		"column":      &cc.Column,
		"order-by":    &cc.OrderBy,
		"aggregate":   &cc.Aggregate,
		"other-label": &cc.OtherLabel,
	} {
		if flags.Changed(name) {
			if *target, err = flags.GetString(name); err != nil {
				return err
			}
		}
	}
	for name, target := range map[string]*bool{
		"reverse":      &cc.Reverse,
		"keep-other":   &cc.KeepOther,
		"order-groups": &cc.OrderGroups,
	} {
		if flags.Changed(name) {
			*target = getFlag(cmd, name)
		}
	}
	if flags.Changed("top-n") {
		if cc.TopN, err = flags.GetInt("top-n"); err != nil {
			return err
		}
	}
	if flags.Changed("group-by") {
		if conf.GroupBy, err = flags.GetStringSlice("group-by"); err != nil {
			return err
		}
	}
	if len(cc.Column) == 0 {
		return fmt.Errorf("no categorical column given")
	}
	return nil
}

func runCategorical(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := applyCategoricalFlags(cmd, conf); err != nil {
		return err
	}
	opts, err := conf.CategoricalOptions()
	if err != nil {
		return err
	}
	t, err := loadInput(conf)
	if err != nil {
		return err
	}
	result, err := t.To(transform.SetCategorical(conf.Categorical.Column, opts...))
	if err != nil {
		return err
	}
	col, err := result.Column(conf.Categorical.Column)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# Levels: %s\n", strings.Join(col.(tidy.CategoricalSeries).Levels(), ", "))
	if err := printTable(cmd, result); err != nil {
		return err
	}
	snapshot, err := cmd.Flags().GetString("snapshot")
	if err != nil {
		return err
	}
	if len(snapshot) > 0 {
		return writeSnapshot(conf, snapshot, result)
	}
	return nil
}
