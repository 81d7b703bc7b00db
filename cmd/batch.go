package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvuaille/nwcread/db"
	"github.com/nvuaille/nwcread/song"
	"github.com/nvuaille/nwcread/util"
)

var (
	batchMax      int
	batchMetadata bool
)

func init() {
	batchCmd.Flags().IntVar(&batchMax, "max", 0, "stop after this many files (0 = all)")
	batchCmd.Flags().BoolVar(&batchMetadata, "metadata", false, "record song metadata in DynamoDB")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Converts every .nwc under a directory",
	Long:  `Converts every .nwc under a directory, writing .nwctxt next to each source`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		batch(args[0])
	},
}

func batch(dir string) {
	paths := util.GatherAllNwcPaths(dir, batchMax)
	for i, path := range paths {
		fmt.Printf("Processing %v of %v nwc files\n", i+1, len(paths))
		processNwcFile(path)
	}
}

func processNwcFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return
	}
	s, err := song.Parse(data)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return
	}

	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".nwctxt"
	text := strings.Join(song.Dump(s), "\n") + "\n"
	if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		fmt.Printf("Write failed for file: %v %v\n", out, err)
		return
	}

	if batchMetadata {
		db.PutSongMetadata(filepath.Base(path), db.SongMetadata{
			Title:    s.Title,
			Author:   s.Author,
			Lyricist: s.Lyricist,
			Staves:   len(s.Staves),
		})
	}
}
