package democli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/autoseq_go/autoseq"
	"github.com/on-the-ground/autoseq_go/seqs"
	"github.com/on-the-ground/autoseq_go/seqstore"
)

// tableConfig is the YAML shape the table command reads: a list of named
// linear recurrences and how many terms to render for each.
type tableConfig struct {
	Sequences []tableEntry `yaml:"sequences"`
}

type tableEntry struct {
	Name   string  `yaml:"name"`
	Coeffs []int64 `yaml:"coeffs"`
	Seeds  []int64 `yaml:"seeds"`
	Terms  int     `yaml:"terms"`
}

func (e tableEntry) validate() error {
	if e.Name == "" {
		return fmt.Errorf("sequence with empty name")
	}
	if len(e.Seeds) < len(e.Coeffs) {
		return fmt.Errorf("sequence %q: %d coefficients need at least %d seeds, got %d",
			e.Name, len(e.Coeffs), len(e.Coeffs), len(e.Seeds))
	}
	if e.Terms < 1 {
		return fmt.Errorf("sequence %q: terms must be at least 1, got %d", e.Name, e.Terms)
	}
	return nil
}

// NewTableCommand creates the table command: it registers the linear
// recurrences defined in a YAML file in a sequence store, fills them
// concurrently, and renders a terms table.
func NewTableCommand(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:           "table <config.yaml>",
		Short:         "Render linear recurrences defined in a YAML file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(logger, cmd, args[0])
		},
	}
}

func runTable(logger *zap.Logger, cmd *cobra.Command, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var cfg tableConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Sequences) == 0 {
		return fmt.Errorf("config %q defines no sequences", path)
	}

	store := seqstore.New[int64](seqstore.WithLogger(logger))
	defer store.Close()

	for _, entry := range cfg.Sequences {
		if err := entry.validate(); err != nil {
			return err
		}
		formula, err := seqs.LinRecFormula(entry.Coeffs)
		if err != nil {
			return fmt.Errorf("sequence %q: %w", entry.Name, err)
		}
		if err := store.Register(entry.Name, formula, entry.Seeds...); err != nil {
			return err
		}
	}

	// One goroutine per sequence; the store confines each underlying
	// sequence, so the fills never race.
	var g errgroup.Group
	for _, entry := range cfg.Sequences {
		g.Go(func() error {
			return store.Do(entry.Name, func(seq *autoseq.Sequence[int64]) {
				seq.PrefetchUpTo(entry.Terms - 1)
			})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	nameWidth := 0
	for _, entry := range cfg.Sequences {
		nameWidth = max(nameWidth, len(entry.Name))
	}
	for _, entry := range cfg.Sequences {
		window, err := store.Window(entry.Name, 0, entry.Terms)
		if err != nil {
			return err
		}
		terms := make([]string, len(window))
		for i, term := range window {
			terms[i] = fmt.Sprintf("%d", term)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-*s  %s\n", nameWidth, entry.Name, strings.Join(terms, " "))
	}
	return nil
}
