// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package models

import (
	"math"
	"testing"
)

func TestExtractYear(t *testing.T) {
	tests := []struct {
		title string
		want  int
	}{
		{"Toy Story (1995)", 1995},
		{"Matrix, The (1999)", 1999},
		{"Untitled", 0},
		{"Fahrenheit 451", 0},
		{"2001: A Space Odyssey (1968)", 1968},
		{"", 0},
	}
	for _, tt := range tests {
		if got := ExtractYear(tt.title); got != tt.want {
			t.Errorf("ExtractYear(%q) = %d, want %d", tt.title, got, tt.want)
		}
	}
}

func TestMovie_ShortTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Toy Story (1995)", "Toy Story"},
		{"Heat (1995)", "Heat"},
		{"Untitled", "Untitled"},
		{"Blade Runner 2049 (2017)", "Blade Runner 2049"},
	}
	for _, tt := range tests {
		m := Movie{Title: tt.title}
		if got := m.ShortTitle(); got != tt.want {
			t.Errorf("ShortTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestMovie_GenreSet(t *testing.T) {
	m := Movie{Genres: []string{"Comedy", "Drama", "", "  "}}
	set := m.GenreSet()
	if len(set) != 2 {
		t.Fatalf("expected 2 genres, got %d", len(set))
	}
	if _, ok := set["Comedy"]; !ok {
		t.Error("expected Comedy in set")
	}
	if _, ok := set["Drama"]; !ok {
		t.Error("expected Drama in set")
	}
}

func TestMovie_ImdbURL(t *testing.T) {
	m := Movie{ImdbID: "0114709"}
	want := "https://www.imdb.com/title/tt0114709/"
	if got := m.ImdbURL(); got != want {
		t.Errorf("ImdbURL() = %q, want %q", got, want)
	}

	empty := Movie{}
	if got := empty.ImdbURL(); got != "" {
		t.Errorf("ImdbURL() without link = %q, want empty", got)
	}
}

func TestRating_Valid(t *testing.T) {
	valid := Rating{Value: 4.5}
	if !valid.Valid() {
		t.Error("expected rating 4.5 to be valid")
	}

	invalid := Rating{Value: math.NaN()}
	if invalid.Valid() {
		t.Error("expected NaN rating to be invalid")
	}
}

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mind-Bending", "mind-bending"},
		{"  epic  ", "epic"},
		{"NOIR", "noir"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTag(tt.in); got != tt.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
