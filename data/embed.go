package data

import (
	_ "embed"
)

//go:embed seed/listings.json
var SeedListings []byte
