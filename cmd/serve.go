package cmd

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/GuglioIsStupid/OpenUtau/model"
	"github.com/GuglioIsStupid/OpenUtau/svp"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves an HTTP import endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/import", HandleImport).Methods("POST")
	router.HandleFunc("/healthz", handleHealth).Methods("GET")
	handler := cors.Default().Handler(router)

	slog.Info("listening", "addr", serveAddr)
	return http.ListenAndServe(serveAddr, handler)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// HandleImport accepts a raw project container as the request body and
// responds with an import summary. The payload is staged under a throwaway
// name because the importer works from a path.
func HandleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	tmp := filepath.Join(os.TempDir(), uuid.New().String()+".svp")
	if err := os.WriteFile(tmp, body, 0644); err != nil {
		writeError(w, http.StatusInternalServerError, "could not stage payload")
		return
	}
	defer os.Remove(tmp)

	project, err := svp.Load(tmp, slog.Default())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.Summarize(project))
}

func writeError(w http.ResponseWriter, code int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}
