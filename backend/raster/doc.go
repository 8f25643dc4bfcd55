// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster is the pixel surface backend.
//
// Paths are rasterised with github.com/gogpu/gg: each stroke, fill or
// text call is drawn on its own layer and composited source-over onto the
// canvas, preceded by its Gaussian shadow when a shadow is active. Text is
// drawn as stroked glyph outlines of the Go Regular font, condensed
// horizontally to the requested maximum width.
//
// Encode returns a PNG data URL ("data:image/png;base64,...").
//
// Importing the package registers the backend as "raster":
//
//	import _ "github.com/gogpu/picasso/backend/raster"
package raster
