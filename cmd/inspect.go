package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvuaille/nwcread/song"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.nwc>",
	Short: "Inspects a decoded file",
	Long:  `Inspects a decoded file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(inspect(args[0]))
	},
}

func inspect(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s, err := song.Parse(data)
	if err != nil {
		return err
	}

	fmt.Printf("version: %v\n", s.Version)
	fmt.Printf("user: %v\n", s.User)
	fmt.Printf("title: %v\n", s.Title)
	fmt.Printf("author: %v\n", s.Author)
	if s.Lyricist != "" {
		fmt.Printf("lyricist: %v\n", s.Lyricist)
	}
	if s.Copyright1 != "" {
		fmt.Printf("copyright: %v %v\n", s.Copyright1, s.Copyright2)
	}
	if s.Comment != "" {
		fmt.Printf("comment: %v\n", s.Comment)
	}
	fmt.Printf("margins: %v\n", s.Margins)
	fmt.Printf("typeface: %v\n", s.NotationTypeface)
	fmt.Printf("staff height: %v\n", s.StaffHeight)
	fmt.Printf("measure start: %v\n", s.MeasureStart)
	for i, f := range s.Fonts {
		fmt.Printf("font %v: %v style=%v size=%v charset=%v\n", i, f.Name, f.Style, f.Size, f.Charset)
	}
	fmt.Printf("staves: %v declared, %v emitted\n", s.StaffCount, len(s.Staves))
	for i, st := range s.Staves {
		fmt.Printf("staff %v: name=%q label=%q instrument=%q trans=%v objects=%v\n",
			i, st.Name, st.Label, st.InstrumentName, st.Transposition, len(st.Objects))
		for j, lb := range st.Lyrics {
			fmt.Printf("  lyrics %v: %v syllables\n", j, len(lb.Syllables))
		}
	}
	return nil
}
