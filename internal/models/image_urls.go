package models

import (
	"encoding/json"
)

// SerializeImageURLs encodes a slice of image URLs to the JSON text form
// stored in Property.ImageUrls. A nil or empty slice encodes to "[]".
func SerializeImageURLs(urls []string) string {
	if len(urls) == 0 {
		return "[]"
	}
	data, err := json.Marshal(urls)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// ParseImageURLs decodes the stored JSON text form back to a slice.
// Absent or corrupt values decode to an empty slice, never nil.
func ParseImageURLs(stored string) []string {
	if stored == "" {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal([]byte(stored), &urls); err != nil {
		return []string{}
	}
	if urls == nil {
		return []string{}
	}
	return urls
}
