package meme

// Option configures a Compositor or Session during creation.
//
// Example:
//
//	// Default style, Go Regular font
//	c, err := meme.NewCompositor(base)
//
//	// Custom font with shaped measurement
//	f, _ := meme.LoadFont("Arial.ttf")
//	m, _ := meme.NewShapingMeasurer(f.Data())
//	c, err := meme.NewCompositor(base, meme.WithFont(f), meme.WithMeasurer(m))
type Option func(*options)

// options holds optional configuration for Compositor creation.
type options struct {
	font     *Font
	style    Style
	anchors  Anchors
	measurer Measurer
}

// defaultOptions returns the default compositor options.
func defaultOptions() options {
	return options{
		font:     nil, // DefaultFont is loaded lazily when nil
		style:    DefaultStyle(),
		anchors:  DefaultAnchors(),
		measurer: FaceMeasurer{},
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.font == nil {
		o.font = DefaultFont()
	}
	if o.measurer == nil {
		o.measurer = FaceMeasurer{}
	}
	return o
}

// WithFont sets the label font family.
func WithFont(f *Font) Option {
	return func(o *options) {
		o.font = f
	}
}

// WithStyle replaces the drawing constants.
//
// Example:
//
//	st := meme.DefaultStyle()
//	st.StrokeBackground = false
//	c, err := meme.NewCompositor(base, meme.WithStyle(st))
func WithStyle(st Style) Option {
	return func(o *options) {
		o.style = st
	}
}

// WithAnchors replaces the label positions.
func WithAnchors(a Anchors) Option {
	return func(o *options) {
		o.anchors = a
	}
}

// WithMeasurer sets how label text width is measured.
// The default is FaceMeasurer.
func WithMeasurer(m Measurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}
