package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ganten7/ivory/config"
	"github.com/ganten7/ivory/detect"
	"github.com/ganten7/ivory/model"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve chord detection over HTTP",
	Long:  `Serves POST /detect, naming the chord in the posted note set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

type detectServer struct {
	settings config.Settings
	log      *zap.Logger
}

func (s *detectServer) handleDetect(w http.ResponseWriter, r *http.Request) {
	requestId := uuid.NewString()
	w.Header().Set("Content-Type", "application/json")

	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body", requestId)
		return
	}

	var input model.DetectRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body", requestId)
		return
	}

	preferFlats := s.settings.PreferFlats
	if input.PreferFlats != nil {
		preferFlats = *input.PreferFlats
	}

	d := detect.New(detect.WithLogger(s.log))
	d.SetNotePreference(preferFlats)

	label, ok := d.Detect(input.Notes)
	s.log.Info("detect request",
		zap.String("request_id", requestId),
		zap.Int("notes", len(input.Notes)),
		zap.String("label", label))

	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "no match", requestId)
		return
	}
	json.NewEncoder(w).Encode(model.DetectResponse{Label: label, RequestId: requestId})
}

func writeError(w http.ResponseWriter, status int, detail, requestId string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail, RequestId: requestId})
}

func servePort() string {
	if port := os.Getenv("IVORY_PORT"); port != "" {
		return port
	}
	return "8080"
}

func serve() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	server := &detectServer{settings: settings, log: newLogger()}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/detect", server.handleDetect).Methods("POST")

	handler := cors.Default().Handler(router)
	addr := ":" + servePort()
	fmt.Printf("serving on %v\n", addr)
	return http.ListenAndServe(addr, handler)
}
