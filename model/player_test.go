package model

import "testing"

func TestPlayerDisplayName(t *testing.T) {
	tests := []struct {
		player   Player
		expected string
	}{
		{player: Player{ID: "1", FullName: "Justin Tucker"}, expected: "Justin Tucker"},
		{player: Player{ID: "2", FirstName: "Travis", LastName: "Kelce"}, expected: "Travis Kelce"},
		{player: Player{ID: "3", LastName: "Kelce"}, expected: "Kelce"},
		{player: Player{ID: "4"}, expected: "4"},
	}

	for _, tc := range tests {
		if got := tc.player.DisplayName(); got != tc.expected {
			t.Errorf("expected '%s', got '%s'", tc.expected, got)
		}
	}
}

func TestUserName(t *testing.T) {
	tests := []struct {
		user     User
		expected string
	}{
		{user: User{ID: "1", DisplayName: "mww", TeamName: "No-Bell Prizes"}, expected: "No-Bell Prizes"},
		{user: User{ID: "2", DisplayName: "gee17"}, expected: "gee17"},
		{user: User{ID: "3"}, expected: "3"},
	}

	for _, tc := range tests {
		if got := tc.user.Name(); got != tc.expected {
			t.Errorf("expected '%s', got '%s'", tc.expected, got)
		}
	}
}
