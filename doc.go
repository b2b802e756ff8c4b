// Package vtcore is the core of a terminal emulator for a 320x320
// SPI-connected handheld panel: a byte-fed VT/ANSI parser driving a
// fixed-size grid of styled cells, a bounded scrollback, and an
// incremental renderer that repaints only dirty rows into a
// DisplayAdapter.
//
// Hardware bring-up (SPI/GPIO, panel init), the keyboard layer, and the
// shell are outside this package's scope; it consumes a DisplayAdapter
// and is driven by whatever feeds it bytes.
//
// # Quick start
//
//	m := vtcore.New(vtcore.WithSize(40, 40))
//	m.Print("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//
//	adapter := vtcore.NewImageAdapter(vtcore.PanelWidth, vtcore.PanelHeight, nil)
//	painter := vtcore.NewPainter(m, adapter, 0)
//	go painter.Run(ctx)
//
// # Architecture
//
//   - [Parser]: byte-in/callback-out VT grammar state machine
//   - [Model]: owns the [Grid], [Scrollback], and cursor; implements [Callbacks]
//   - [Renderer]: paints dirty rows from a [Model] into a [DisplayAdapter]
//   - [Painter]: a periodic task tying a Model and a DisplayAdapter together
//
// All access to a Model is serialized by a single mutex: one or more
// producer goroutines call FeedBytes/Print/Clear/etc., and exactly one
// Painter goroutine calls Renderer.Paint against it.
package vtcore
