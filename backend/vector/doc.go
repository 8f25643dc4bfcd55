// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vector provides the "svg" surface backend.
//
// Every drawing call becomes SVG markup written with
// github.com/ajstarks/svgo: paths in user space, radial gradients with
// gradientUnits="userSpaceOnUse", Gaussian blur filters for shadows and
// <text> elements that carry textLength when the word is wider than its
// maximum width. Encode closes the document and returns its bytes.
//
// Importing the package registers the backend:
//
//	import _ "github.com/gogpu/picasso/backend/vector"
//
//	r := render.New(render.WithBackend(vector.Name))
package vector
