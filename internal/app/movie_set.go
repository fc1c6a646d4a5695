package app

import "github.com/jpp0ca/MovieCatalog-API/internal/domain"

// movieSet is an insertion-ordered set of movies keyed by ID.
type movieSet struct {
	seen   map[string]struct{}
	movies []domain.Movie
}

func newMovieSet() *movieSet {
	return &movieSet{seen: make(map[string]struct{})}
}

// addAll appends movies whose ID has not been seen yet and returns how many
// were added. Later duplicates are dropped.
func (s *movieSet) addAll(movies []domain.Movie) int {
	added := 0
	for _, m := range movies {
		if _, dup := s.seen[m.ID]; dup {
			continue
		}
		s.seen[m.ID] = struct{}{}
		s.movies = append(s.movies, m)
		added++
	}
	return added
}

func (s *movieSet) len() int {
	return len(s.movies)
}

// take returns a copy of the first n movies in insertion order.
func (s *movieSet) take(n int) []domain.Movie {
	if n > len(s.movies) {
		n = len(s.movies)
	}
	if n < 0 {
		n = 0
	}
	out := make([]domain.Movie, n)
	copy(out, s.movies[:n])
	return out
}
