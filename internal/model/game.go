package model

import "time"

// Game is a catalog entry. Created/updated/deleted only by admins;
// reads are public.
type Game struct {
	ID          ID
	Title       string
	Platform    string
	Price       float64 // >= 0
	Description string
	Images      []string
	Category    string
	InStock     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GamePatch is a partial update to a Game. Nil fields are left untouched;
// set fields are applied one by one.
type GamePatch struct {
	Title       *string
	Platform    *string
	Price       *float64
	Description *string
	Images      *[]string
	Category    *string
	InStock     *bool
}

// IsZero reports whether the patch sets no fields
func (p GamePatch) IsZero() bool {
	return p.Title == nil && p.Platform == nil && p.Price == nil &&
		p.Description == nil && p.Images == nil && p.Category == nil && p.InStock == nil
}

// Apply merges the patch into a game, field by field
func (p GamePatch) Apply(g *Game) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Platform != nil {
		g.Platform = *p.Platform
	}
	if p.Price != nil {
		g.Price = *p.Price
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Images != nil {
		g.Images = *p.Images
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.InStock != nil {
		g.InStock = *p.InStock
	}
}
