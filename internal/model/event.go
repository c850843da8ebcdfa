// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"time"
)

// GalleryImage is a single image in an event gallery.
type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Event represents a club event.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Location    string    `json:"location"`
	Gallery     string    `json:"-"` // JSON array of GalleryImage
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsUpcoming returns true if the event date is in the future.
func (e Event) IsUpcoming() bool {
	return e.Date.After(time.Now())
}

// GalleryImages parses the gallery JSON column.
// Returns an empty slice for an empty or malformed column.
func (e Event) GalleryImages() []GalleryImage {
	if e.Gallery == "" || e.Gallery == "[]" {
		return []GalleryImage{}
	}
	var images []GalleryImage
	if err := json.Unmarshal([]byte(e.Gallery), &images); err != nil {
		return []GalleryImage{}
	}
	return images
}

// EncodeGallery serializes gallery images for storage.
func EncodeGallery(images []GalleryImage) string {
	if len(images) == 0 {
		return "[]"
	}
	b, err := json.Marshal(images)
	if err != nil {
		return "[]"
	}
	return string(b)
}
