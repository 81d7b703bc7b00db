package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nvuaille/nwcread/db"
	"github.com/nvuaille/nwcread/logging"
	"github.com/nvuaille/nwcread/model"
	"github.com/nvuaille/nwcread/song"
)

var servePort string

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves a conversion endpoint",
	Long:  `Serves a conversion endpoint`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// HandleConvert accepts raw nwc bytes and responds with the decoded song.
func HandleConvert(w http.ResponseWriter, r *http.Request) {
	requestId := uuid.NewString()
	logging.L().Info("convert request", zap.String("requestId", requestId))

	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body: "+err.Error())
		return
	}
	if len(data) == 0 {
		writeError(w, 400, "Request body is empty")
		return
	}

	s, err := song.Parse(data)
	if err != nil {
		logging.L().Warn("convert failed",
			zap.String("requestId", requestId), zap.Error(err))
		writeError(w, 400, err.Error())
		return
	}

	res := model.ConvertResponse{
		Title:  s.Title,
		Author: s.Author,
		Staves: len(s.Staves),
		Tokens: song.Dump(s),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// HandleMetadata looks up stored metadata for a list of filenames.
func HandleMetadata(w http.ResponseWriter, r *http.Request) {
	var filenames []string
	if err := json.NewDecoder(r.Body).Decode(&filenames); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}
	if len(filenames) == 0 || len(filenames) > 10 {
		writeError(w, 400, "Between 1 and 10 filenames per request")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(db.GetSongMetadatas(filenames))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	router.HandleFunc("/metadata", HandleMetadata).Methods("POST")
	router.HandleFunc("/health", handleHealth).Methods("GET")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":"+servePort, handler))
}
