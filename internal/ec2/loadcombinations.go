package ec2

// LoadCombination represents a strength design load combination
type LoadCombination struct {
	ID          string
	Description string
	Dead        float64 // G - permanent action factor
	Live        float64 // Q - variable action factor
}

// ULS is the fundamental combination 6.10 used for member sizing
var ULS = LoadCombination{
	ID:          "6.10",
	Description: "1.35G + 1.5Q",
	Dead:        GammaDL,
	Live:        GammaLL,
}

// Combination builds the fundamental combination for a set of materials.
func (m Materials) Combination() LoadCombination {
	m = m.WithDefaults()
	return LoadCombination{
		ID:          ULS.ID,
		Description: ULS.Description,
		Dead:        m.GammaDL,
		Live:        m.GammaLL,
	}
}

// Factored returns the factored area load (kN/m²) for unfactored dead and live loads.
func (lc LoadCombination) Factored(dead, live float64) float64 {
	return lc.Dead*dead + lc.Live*live
}
