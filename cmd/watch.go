package cmd

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"

	"github.com/nvuaille/nwcread/util"
)

var watchInterval time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", time.Second, "poll interval")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watches a directory and reconverts changed nwc files",
	Long:  `Watches a directory and reconverts changed nwc files`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		watch(args[0])
	},
}

type watcher struct {
	mu       sync.Mutex
	modTimes map[string]time.Time
	pending  map[string]bool
}

func (w *watcher) markPending(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[path] = true
}

func (w *watcher) takePending() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	paths := util.GetKeys(w.pending)
	w.pending = make(map[string]bool)
	return paths
}

func (w *watcher) scan(dir string, changed func(string)) {
	for _, path := range util.GatherAllNwcPaths(dir, 0) {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		prev, seen := w.modTimes[path]
		w.modTimes[path] = info.ModTime()
		if !seen || info.ModTime().After(prev) {
			changed(path)
		}
	}
}

func watch(dir string) {
	w := watcher{
		modTimes: make(map[string]time.Time),
		pending:  make(map[string]bool),
	}

	debounced := debounce.New(500 * time.Millisecond)
	convertPending := func() {
		for _, path := range w.takePending() {
			fmt.Printf("Converting %v\n", path)
			processNwcFile(path)
		}
	}

	// Seed mod times so only subsequent edits trigger conversion.
	w.scan(dir, func(string) {})
	fmt.Printf("Watching %v for changes\n", dir)

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()
	for range ticker.C {
		w.scan(dir, func(path string) {
			w.markPending(path)
			debounced(convertPending)
		})
	}
}
