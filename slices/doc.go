// Package slices implements multi-sequence and ordering operations: swap,
// shuffle, selection sort by key, zip, flatten, intersection and
// difference.
//
// Only Swap, SortBy and SortByProperty modify the slice they are given;
// every other operation returns a new slice.
package slices
