package ports

import "context"

// Tile is one rendered map tile
type Tile struct {
	Data        []byte
	ContentType string
}

// TileSource fetches weather overlay tiles from the upstream tile server
type TileSource interface {
	FetchTile(ctx context.Context, layer string, z, x, y int) (*Tile, error)
}
