// Package generator writes files of random records for exercising the sorter.
//
// Every line is "<number>. <word>" with the number in [1, 1000000) and the word
// drawn from an embedded list of English words. Lines are written in batches of
// FlushBytes until the file reaches the requested size; the last line may push
// it slightly past that size. A non-zero Seed makes the output reproducible.
package generator
