package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvuaille/nwcread/song"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <file.nwc | -> [out.nwctxt]",
	Short: "Converts one file to token lines",
	Long:  `Converts one file (or stdin with -) to token lines, to stdout or a file`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		out := ""
		if len(args) == 2 {
			out = args[1]
		}
		cobra.CheckErr(convert(args[0], out))
	},
}

func convert(path, out string) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}
	s, err := song.Parse(data)
	if err != nil {
		return err
	}

	text := strings.Join(song.Dump(s), "\n") + "\n"
	if out == "" {
		fmt.Print(text)
		return nil
	}
	return os.WriteFile(out, []byte(text), 0644)
}
