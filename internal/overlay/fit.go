package overlay

// widthTolerance allows the rendered text to exceed the original footprint by
// 5% before shrinking, absorbing font metric drift between engines.
const widthTolerance = 1.05

// FitFontSize shrinks a font size so the measured text width fits the
// original footprint. The measure callback must report the rendered width of
// the text at a given font size. The shrink is a single linear step, not an
// iterative search: width scales near-linearly with font size for a fixed
// string. There is no lower bound on the result.
func FitFontSize(measure func(size float64) float64, maxWidth, baseSize float64) float64 {
	current := measure(baseSize)
	allowed := maxWidth * widthTolerance
	if current > allowed {
		return baseSize * (allowed / current)
	}
	return baseSize
}
