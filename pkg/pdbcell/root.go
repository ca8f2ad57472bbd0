// Package pdbcell is the command line side of the pdb packages. Each
// sub-command reads one or more old format PDB files and prints what
// it finds, as plain text or toml.
package pdbcell

import (
	"context"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrew-torda/pdbcell/pkg/config"
	"github.com/andrew-torda/pdbcell/pkg/logging"
)

// Version is set with -ldflags at build time.
var Version = "dev"

// app is shared by all the sub-commands. cfg and log are only valid
// once the persistent pre-run has happened.
type app struct {
	v       *viper.Viper
	cfgPath string
	toml    bool
	cfg     *config.Config
	log     logging.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: logging.NewNopLogger()}
	root := &cobra.Command{
		Use:   "pdbcell",
		Short: "Read PDB files and look at them in their unit cell",
		Long: `pdbcell reads coordinate files in the old PDB format, plain or gzipped,
and answers questions about the crystal: nearest symmetry images,
contacts, atoms on special positions, entities and chain breaks.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file, yaml or toml")
	pf.String("log-level", "info", "debug, info, warn or error")
	pf.String("log-format", "console", "console or json")
	pf.BoolVar(&a.toml, "toml", false, "write reports as toml")
	a.v.BindPFlag("log.level", pf.Lookup("log-level"))
	a.v.BindPFlag("log.format", pf.Lookup("log-format"))

	root.AddCommand(
		a.infoCmd(),
		a.nearCmd(),
		a.contactsCmd(),
		a.specialCmd(),
		a.seqresCmd(),
		a.checkCmd(),
		a.batchCmd(),
		a.fetchCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.cfgPath)
	if err != nil {
		return err
	}
	log, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

// emit writes a report. With --toml it is encoded, otherwise text is
// called to do the plain version.
func (a *app) emit(w io.Writer, rep any, text func(io.Writer) error) error {
	if !a.toml {
		return text(w)
	}
	b, err := toml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encoding toml: %w", err)
	}
	_, err = w.Write(b)
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "pdbcell", Version)
			return err
		},
	}
}

// Execute runs the root command. main does nothing else.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
