package uitest

// Standard terminal sizes for testing.
const (
	CompactWidth  = 80
	CompactHeight = 24

	StandardWidth  = 120
	StandardHeight = 40
)

// Size represents terminal dimensions.
type Size struct {
	Width  int
	Height int
}

var (
	Compact  = Size{CompactWidth, CompactHeight}
	Standard = Size{StandardWidth, StandardHeight}
)
