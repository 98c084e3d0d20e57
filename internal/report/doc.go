// Package report renders benchmark runs and demo transcripts as aligned
// console tables.
package report
