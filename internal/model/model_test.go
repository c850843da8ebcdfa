// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"testing"
	"time"
)

func TestEvent_IsUpcoming(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"future", time.Now().Add(48 * time.Hour), true},
		{"past", time.Now().Add(-48 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{Date: tt.date}
			if got := e.IsUpcoming(); got != tt.want {
				t.Errorf("IsUpcoming() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvent_GalleryImages(t *testing.T) {
	tests := []struct {
		name    string
		gallery string
		want    int
	}{
		{"empty string", "", 0},
		{"empty array", "[]", 0},
		{"malformed", "{not json", 0},
		{"two images", `[{"src":"/a.jpg","alt":"a"},{"src":"/b.jpg","alt":"b"}]`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{Gallery: tt.gallery}
			if got := e.GalleryImages(); len(got) != tt.want {
				t.Errorf("GalleryImages() returned %d images, want %d", len(got), tt.want)
			}
		})
	}
}

func TestEncodeGallery_RoundTrip(t *testing.T) {
	images := []GalleryImage{{Src: "/gallery/1.jpg", Alt: "Opening talk"}}
	e := Event{Gallery: EncodeGallery(images)}

	got := e.GalleryImages()
	if len(got) != 1 || got[0].Src != "/gallery/1.jpg" || got[0].Alt != "Opening talk" {
		t.Errorf("round trip = %+v, want %+v", got, images)
	}
}

func TestGroupTermsByCategory(t *testing.T) {
	terms := []GlossaryTerm{
		{Term: "Qubit", Category: "Basics"},
		{Term: "Superposition", Category: "Basics"},
		{Term: "Shor's algorithm", Category: "Algorithms"},
	}

	grouped := GroupTermsByCategory(terms)
	if len(grouped) != 2 {
		t.Fatalf("got %d categories, want 2", len(grouped))
	}
	if len(grouped["Basics"]) != 2 {
		t.Errorf("Basics has %d terms, want 2", len(grouped["Basics"]))
	}
	if grouped["Basics"][0].Term != "Qubit" {
		t.Errorf("order not preserved: first Basics term = %q", grouped["Basics"][0].Term)
	}
}

func TestUser_IsAdmin(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{"admin", true},
		{"editor", false},
		{"", false},
	}

	for _, tt := range tests {
		u := User{Role: tt.role}
		if got := u.IsAdmin(); got != tt.want {
			t.Errorf("IsAdmin() with role %q = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestMember_IsLeader(t *testing.T) {
	m := Member{Category: MemberCategoryLeader}
	if !m.IsLeader() {
		t.Error("IsLeader() = false for leader category")
	}
	m.Category = MemberCategoryBoard
	if m.IsLeader() {
		t.Error("IsLeader() = true for board category")
	}
}
