package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed sleeperdata
var sleeperdata embed.FS

// LeagueID is the league that the fixture data under sleeperdata/ describes.
const LeagueID = "1050127292493721600"

type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/players/nfl", nflPlayersHandler)

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler)
			r.Get("/rosters", leagueRostersHandler)
			r.Get("/users", leagueUsersHandler)
			r.Get("/matchups/{week}", leagueMatchupsHandler)
		})
	})

	return &FakeSleeperServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func nflPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") == LeagueID {
		serveFile(w, "league.json")
	} else {
		// requesting a league that doesn't exist returns a 200 with "null" as the response body as of 2024-08-12
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
	}
}

func leagueRostersHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") == LeagueID {
		serveFile(w, "rosters.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func leagueUsersHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") == LeagueID {
		serveFile(w, "users.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func leagueMatchupsHandler(w http.ResponseWriter, r *http.Request) {
	week := chi.URLParam(r, "week")
	if chi.URLParam(r, "leagueID") != LeagueID {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
		return
	}

	switch week {
	case "1", "2":
		serveFile(w, fmt.Sprintf("matchups_%s.json", week))
	default:
		// weeks that haven't been played yet come back as an empty list
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Printf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
