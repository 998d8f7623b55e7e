package file

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/internal/table"
	iutil "github.com/go-sif/tidy/internal/util"
	multierror "github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DataSource is a set of files containing data which will be loaded into a Table
type DataSource struct {
	glob        string
	concurrency int
}

// CreateDataSource is a factory for DataSources. At most runtime.NumCPU() files are parsed at once.
func CreateDataSource(glob string) *DataSource {
	return &DataSource{glob: glob, concurrency: runtime.NumCPU()}
}

// LoadTable loads every file matching glob into a single Table
func LoadTable(glob string, parser tidy.DataSourceParser, schema tidy.Schema) (tidy.Table, error) {
	return CreateDataSource(glob).Load(parser, schema)
}

// Analyze returns the files matched by this DataSource, in lexicographic order
func (fs *DataSource) Analyze() ([]string, error) {
	matches, err := filepath.Glob(fs.glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", fs.glob)
	}
	sort.Strings(matches)
	return matches, nil
}

// Load parses every matched file and stacks the results. Errors from all files are reported together.
func (fs *DataSource) Load(parser tidy.DataSourceParser, schema tidy.Schema) (tidy.Table, error) {
	files, err := fs.Analyze()
	if err != nil {
		return nil, err
	}
	tables := make([]tidy.Table, len(files))
	errs := make([]error, len(files))
	var g errgroup.Group
	g.SetLimit(fs.concurrency)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			tables[i], errs[i] = loadFile(path, parser, schema)
			return nil
		})
	}
	g.Wait()

	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if merr != nil {
		log.WithField("glob", fs.glob).Debugf("failed to load files:\n%s", iutil.FormatMultiError(merr.Errors))
		return nil, merr.ErrorOrNil()
	}
	result, err := table.Concat(schema, tables...)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"glob":  fs.glob,
		"files": len(files),
		"rows":  result.NumRows(),
	}).Debug("loaded files")
	return result, nil
}

func loadFile(path string, parser tidy.DataSourceParser, schema tidy.Schema) (tidy.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("couldn't close file %s: %v", path, err)
		}
	}()
	t, err := parser.Parse(f, schema)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
