// Package filter implements the canvas shadow: the alpha of a drawn shape,
// blurred with a separable Gaussian and tinted with the shadow color.
package filter
