package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvuaille/nwcread/midiout"
	"github.com/nvuaille/nwcread/song"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file.nwc> [out.mid]",
	Short: "Exports an nwc file as standard midi",
	Long:  `Exports an nwc file as standard midi`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		out := ""
		if len(args) > 1 {
			out = args[1]
		}
		export(args[0], out)
	},
}

func export(path string, out string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read file: " + err.Error())
	}
	s, err := song.Parse(data)
	if err != nil {
		panic("Could not parse file: " + err.Error())
	}

	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".mid"
	}
	mf := midiout.Create(s)
	if err := mf.WriteFile(out); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
}
