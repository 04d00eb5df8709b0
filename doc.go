// Package blackbg turns logos drawn on a solid black background into images
// with a transparent background.
//
// Pixels darker than a black threshold become fully transparent. Slightly
// brighter pixels, typically the anti-aliased rim around the artwork, receive
// an alpha ramp proportional to their brightness. Everything else keeps its
// original alpha. The package works entirely in memory; file helpers are thin
// wrappers around the in-memory functions.
package blackbg
