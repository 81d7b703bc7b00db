package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nvuaille/nwcread/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nwcread",
	Short: "NoteWorthy Composer binary tools",
	Long:  `Decodes .nwc binaries into the nwctxt token protocol.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var l *zap.Logger
		if verbose {
			l, _ = zap.NewDevelopment()
		} else {
			cfg := zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
			l, _ = cfg.Build()
		}
		logging.SetLogger(l)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every decode detail")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
