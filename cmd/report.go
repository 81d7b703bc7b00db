package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvuaille/nwcread/song"
	"github.com/nvuaille/nwcread/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <dir>",
	Short: "Creates a report over a directory of nwc files",
	Long:  `Creates a report over a directory of nwc files`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		report(args[0])
	},
}

type corpusReport struct {
	numFiles      int64
	numParsed     int64
	numFailed     int64
	numBytes      int64
	numStaves     int64
	numObjects    int64
	versionCounts map[int]int64
	failures      []string
}

func analyzeCorpus(dir string) corpusReport {
	report := corpusReport{versionCounts: make(map[int]int64)}

	for _, path := range util.GatherAllNwcPaths(dir, 0) {
		report.numFiles += 1
		data, err := os.ReadFile(path)
		if err != nil {
			report.numFailed += 1
			report.failures = append(report.failures, path+": "+err.Error())
			continue
		}
		report.numBytes += int64(len(data))
		s, err := song.Parse(data)
		if err != nil {
			report.numFailed += 1
			report.failures = append(report.failures, path+": "+err.Error())
			continue
		}
		report.numParsed += 1
		report.versionCounts[s.Version] += 1
		report.numStaves += int64(len(s.Staves))
		for _, st := range s.Staves {
			report.numObjects += int64(len(st.Objects))
		}
	}

	return report
}

func report(dir string) {
	report := analyzeCorpus(dir)
	fmt.Printf("report.numFiles: %v\n", report.numFiles)
	fmt.Printf("report.numParsed: %v\n", report.numParsed)
	fmt.Printf("report.numFailed: %v\n", report.numFailed)
	fmt.Printf("report.numBytes: %v\n", report.numBytes)
	fmt.Printf("report.numStaves: %v\n", report.numStaves)
	fmt.Printf("report.numObjects: %v\n", report.numObjects)
	for _, version := range util.GetKeys(report.versionCounts) {
		fmt.Printf("version %v: %v files\n", version, report.versionCounts[version])
	}
	for _, failure := range report.failures {
		fmt.Printf("failed: %v\n", failure)
	}
}
