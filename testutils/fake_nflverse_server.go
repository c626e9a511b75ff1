package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed nflversedata
var nflversedata embed.FS

type FakeNFLverseServer struct {
	s *httptest.Server
}

func NewFakeNFLverseServer() *FakeNFLverseServer {
	r := chi.NewRouter()
	r.Get("/nflverse/nflverse-data/releases/download/pbp/{file}", playByPlayHandler)

	return &FakeNFLverseServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeNFLverseServer) Close() {
	f.s.Close()
}

func (f *FakeNFLverseServer) URL() string {
	return f.s.URL
}

func playByPlayHandler(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")

	b, err := nflversedata.ReadFile(fmt.Sprintf("nflversedata/%s", file))
	if err != nil {
		log.Printf("error reading nflversedata/%s: %v", file, err)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
