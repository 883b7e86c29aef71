// Package stream places streamlines through a sampled 2D vector field.
//
// The domain is covered by a coarse occupancy mask of 30·density cells
// per axis. Seeds are taken from the mask boundary spiralling inward, and
// each seed is integrated backward and forward along the normalized field
// until it leaves the grid, runs into a cell already claimed by another
// line, hits a non-finite or zero field, or exceeds the maximum length.
// Lines shorter than the minimum length are dropped and release their
// cells.
//
// Arc length is measured in axes units, where the full grid spans 1 along
// each axis, so lengths do not depend on the data range.
package stream
