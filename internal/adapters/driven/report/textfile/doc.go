// Package textfile writes analysis reports as flat text files.
//
// Two files are produced in the output directory: a frequency report with one
// block per book, and the upper-triangle similarity matrix with one
// tab-separated row per book. Scores and frequencies use four decimals.
package textfile
