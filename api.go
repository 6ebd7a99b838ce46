package mandel

//go:generate irpc $GOFILE

// GridProvider hands out a fully computed grid.
// The grid server implements it, and remote clients reach it through the generated irpc client.
type GridProvider interface {
	GetGrid() (*Grid, error)
}
