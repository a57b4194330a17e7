package cmd

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/ajensen/midi2json/midi"
	"github.com/ajensen/midi2json/note"
	"github.com/ajensen/midi2json/output"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the converter over HTTP",
	Long:  `Serves the converter over HTTP: POST a raw MIDI file to /convert?bpm=<tempo> and get the notes JSON back.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func HandleConvert(w http.ResponseWriter, r *http.Request) {
	bpm, err := strconv.ParseFloat(r.URL.Query().Get("bpm"), 64)
	if err != nil || bpm <= 0 {
		http.Error(w, "bpm must be a positive number", 400)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "could not read request body", 400)
		return
	}

	parsed, err := midi.Parse(body)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	track, err := midi.FirstTrack(parsed)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	notes, err := note.GetNotes(track, bpm)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := output.WriteNotes(w, notes); err != nil {
		log.Printf("could not write response: %v", err)
	}
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
