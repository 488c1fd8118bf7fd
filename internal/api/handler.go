package api

import (
	"encoding/json"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/lmoreno/framegrab/internal/rcapture"
)

func handleError(w http.ResponseWriter, err error) {
	log.Printf("Error: %v", err)
	w.WriteHeader(http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	payload, err := json.Marshal(body)
	if err != nil {
		handleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// MakeHandler returns an HTTP handler for the capture service
func MakeHandler(recorder rcapture.Service) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/frame", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		dims, err := recorder.DisplayDimensions()
		if err != nil {
			handleError(w, err)
			return
		}
		frame, err := recorder.CaptureNextFrame()
		if err != nil {
			handleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("X-Capture-Id", uuid.New().String())
		w.Header().Set("X-Frame-Width", strconv.Itoa(dims.Width))
		w.Header().Set("X-Frame-Height", strconv.Itoa(dims.Height))
		w.Header().Set("X-Frame-Count", strconv.FormatUint(recorder.FrameCount(), 10))
		w.Write(frame)
	})

	mux.HandleFunc("/frame/png", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		width := 0
		if arg := r.URL.Query().Get("width"); arg != "" {
			parsed, err := strconv.Atoi(arg)
			if err != nil || parsed < 0 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			width = parsed
		}

		dims, err := recorder.DisplayDimensions()
		if err != nil {
			handleError(w, err)
			return
		}
		frame, err := recorder.CaptureNextFrame()
		if err != nil {
			handleError(w, err)
			return
		}
		img, err := frameImage(frame, dims)
		if err != nil {
			handleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("X-Capture-Id", uuid.New().String())
		if err := png.Encode(w, scaleImage(img, width)); err != nil {
			log.Printf("Error encoding preview: %v", err)
		}
	})

	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, statsResponse{Frames: recorder.FrameCount()})
	})

	mux.HandleFunc("/display", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		dims, err := recorder.DisplayDimensions()
		if err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, displayResponse{Width: dims.Width, Height: dims.Height})
	})

	mux.HandleFunc("/screens", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		screens, err := rcapture.Screens()
		if err != nil {
			handleError(w, err)
			return
		}
		payload := make([]screenPayload, len(screens))
		for i, s := range screens {
			payload[i] = screenPayload{
				Index:  s.Index,
				Width:  s.Bounds.Dx(),
				Height: s.Bounds.Dy(),
			}
		}
		writeJSON(w, screensResponse{Screens: payload})
	})

	return mux
}
