// Package sink provides display surfaces for rendered trees.
//
// # Overview
//
// A "sink" accepts one complete block of rendered text and replaces its
// prior visible content with it. Sinks never receive partial output: the
// caller renders first, then displays, so each display call is atomic
// and last-writer-wins.
//
// This package provides:
//
//   - [Writer]: plain text to any io.Writer
//   - [HTMLPage]: a self-contained static HTML page built from an
//     embedded template, with the tree in an accessible <pre> region
//   - [JSON]: a JSON document carrying the rows and the parameters
//     needed to reproduce the render
//
// The sink handle is optional. [Display] treats a nil sink as an
// explicit no-op rather than an error, so hosts without a display
// surface can still drive the renderer:
//
//	text, err := tree.Render(10)
//	if err != nil {
//	    return err
//	}
//	return sink.Display(s, text) // nil s: no-op
//
// # Adding new surfaces
//
// To add a new surface, implement the single-method [Sink] interface.
// The existing sinks are the examples: writer.go for raw pass-through,
// html.go for template-wrapped output, json.go for data export.
package sink
