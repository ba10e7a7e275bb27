// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package dataset

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/cinegraph/internal/logging"
)

func writeDataset(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func defaultFiles() map[string]string {
	return map[string]string{
		"movies.csv": "movieId,title,genres\n" +
			"1,Toy Story (1995),Adventure|Animation|Comedy\n" +
			"2,Jumanji (1995),Adventure|Children|Fantasy\n" +
			"3,Weird Short,(no genres listed)\n",
		"ratings.csv": "userId,movieId,rating,timestamp\n" +
			"10,1,4.0,964982703\n" +
			"10,2,3.5,964982931\n" +
			"11,1,bogus,964983000\n",
		"tags.csv": "userId,movieId,tag,timestamp\n" +
			"10,1,Pixar,1445714994\n" +
			"11,1,fun,1445715000\n",
	}
}

func newTestLoader(dir string) *Loader {
	return NewLoader(dir, logging.NewTestLogger(io.Discard))
}

func TestLoader_Load(t *testing.T) {
	dir := writeDataset(t, defaultFiles())
	snap, err := newTestLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if snap.MovieCount() != 3 {
		t.Errorf("MovieCount = %d, want 3", snap.MovieCount())
	}
	if snap.RatingCount() != 3 {
		t.Errorf("RatingCount = %d, want 3", snap.RatingCount())
	}
	if snap.TagCount() != 2 {
		t.Errorf("TagCount = %d, want 2", snap.TagCount())
	}
	if snap.Version == "" {
		t.Error("snapshot version must be set")
	}
}

func TestLoader_MovieParsing(t *testing.T) {
	dir := writeDataset(t, defaultFiles())
	snap, err := newTestLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	toy := snap.MovieByID("1")
	if toy == nil {
		t.Fatal("movie 1 not found")
	}
	if toy.Title != "Toy Story (1995)" {
		t.Errorf("Title = %q", toy.Title)
	}
	if toy.Year != 1995 {
		t.Errorf("Year = %d, want 1995", toy.Year)
	}
	if len(toy.Genres) != 3 {
		t.Errorf("Genres = %v, want 3 entries", toy.Genres)
	}

	// The "(no genres listed)" placeholder is dropped entirely.
	short := snap.MovieByID("3")
	if short == nil {
		t.Fatal("movie 3 not found")
	}
	if len(short.Genres) != 0 {
		t.Errorf("placeholder genres must be dropped, got %v", short.Genres)
	}
}

func TestLoader_UnparseableRatingBecomesNaN(t *testing.T) {
	dir := writeDataset(t, defaultFiles())
	snap, err := newTestLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var sawNaN bool
	for _, r := range snap.RatingsFor("1") {
		if math.IsNaN(r.Value) {
			sawNaN = true
		}
	}
	if !sawNaN {
		t.Error("expected the bogus rating to load as NaN, not fail the load")
	}
}

func TestLoader_MissingRequiredFile(t *testing.T) {
	files := defaultFiles()
	delete(files, "ratings.csv")
	dir := writeDataset(t, files)

	if _, err := newTestLoader(dir).Load(); err == nil {
		t.Fatal("expected error for missing ratings.csv")
	}
}

func TestLoader_OptionalLinks(t *testing.T) {
	files := defaultFiles()
	files["links.csv"] = "movieId,imdbId,tmdbId\n1,0114709,862\n"
	dir := writeDataset(t, files)

	snap, err := newTestLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	toy := snap.MovieByID("1")
	if toy.ImdbID != "0114709" || toy.TmdbID != "862" {
		t.Errorf("links not attached: imdb=%q tmdb=%q", toy.ImdbID, toy.TmdbID)
	}
	// Movies without a link row stay unlinked.
	if jumanji := snap.MovieByID("2"); jumanji.TmdbID != "" {
		t.Errorf("movie 2 should have no tmdb id, got %q", jumanji.TmdbID)
	}
}

func TestLoader_HeaderlessFile(t *testing.T) {
	files := defaultFiles()
	files["movies.csv"] = "1,Toy Story (1995),Adventure\n2,Jumanji (1995),Fantasy\n"
	dir := writeDataset(t, files)

	snap, err := newTestLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.MovieCount() != 2 {
		t.Errorf("MovieCount = %d, want 2 (headerless file must keep first row)", snap.MovieCount())
	}
}
