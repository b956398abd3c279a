// Package pkg provides the core libraries for Tannenbaum tree rendering.
//
// # Overview
//
// Tannenbaum renders symmetric ASCII-art Christmas trees. The pkg
// directory is organized into five areas:
//
//  1. [tree] - The renderer: height in, rows of text out
//  2. [tree/styles] - Display styling for terminal output
//  3. [tree/sink] - Display surfaces (writer, HTML page, JSON export)
//  4. [config] - Host-level defaults from a TOML config file
//  5. [errors] / [observability] / [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Height (argument, flag, or config)
//	         ↓
//	    [tree] package (compute rows, join to one text block)
//	         ↓
//	    [tree/styles] package (decorate rows for terminal display)
//	         ↓
//	    [tree/sink] package (write text, HTML page, or JSON)
//
// The renderer is a pure function; sinks own the single side effect of
// writing the result to a display surface.
//
// # Quick Start
//
//	text, err := tree.Render(10)
//	if err != nil {
//	    return err
//	}
//	err = sink.Display(sink.NewWriter(os.Stdout), text)
package pkg
