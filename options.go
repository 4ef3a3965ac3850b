package morph

import "fmt"

// RectFillOption configures FillHolesToBoundingRect.
//
// Example:
//
//	// Fill holes up to a quarter of the component's area, and fill the
//	// whole box when the result would cover 90% of it.
//	d, err := morph.FillHolesToBoundingRect(src,
//	    morph.WithMaxHoleFraction(0.25),
//	    morph.WithMinFgFraction(0.9))
type RectFillOption func(*rectFillOptions)

// rectFillOptions holds the thresholds of FillHolesToBoundingRect.
type rectFillOptions struct {
	minSize         int
	maxHoleFraction float64
	minFgFraction   float64
}

// defaultRectFillOptions returns the default thresholds.
func defaultRectFillOptions() rectFillOptions {
	return rectFillOptions{
		minSize:         1,
		maxHoleFraction: 0.5,
		minFgFraction:   0.8,
	}
}

// WithMinSize sets the smallest number of hole pixels worth filling when
// only the holes of a component are filled. The default is 1.
func WithMinSize(n int) RectFillOption {
	return func(o *rectFillOptions) {
		o.minSize = n
	}
}

// WithMaxHoleFraction sets the largest ratio of hole area to foreground
// area for which a component's holes are filled. The default is 0.5.
func WithMaxHoleFraction(f float64) RectFillOption {
	return func(o *rectFillOptions) {
		o.maxHoleFraction = f
	}
}

// WithMinFgFraction sets the smallest ratio of foreground area (holes
// included when they qualify) to bounding box area for which the whole
// box is filled. The default is 0.8.
func WithMinFgFraction(f float64) RectFillOption {
	return func(o *rectFillOptions) {
		o.minFgFraction = f
	}
}

func (o rectFillOptions) validate() error {
	switch {
	case o.minSize < 0:
		return fmt.Errorf("%w: min size %d", ErrInvalidOption, o.minSize)
	case o.maxHoleFraction < 0:
		return fmt.Errorf("%w: max hole fraction %g", ErrInvalidOption, o.maxHoleFraction)
	case o.minFgFraction < 0:
		return fmt.Errorf("%w: min foreground fraction %g", ErrInvalidOption, o.minFgFraction)
	}
	return nil
}
