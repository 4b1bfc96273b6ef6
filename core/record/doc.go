// Package record defines the sortable unit of the file sorter.
//
// A Record is a pair of a 32-bit number and a free-form text, stored one per line
// in the canonical form "{number}. {text}".
//
// # Ordering
//
// Records are ordered by Text (byte-wise, not locale aware) and then by Number
// ascending. Compare is the single comparator used by every sort and merge step,
// so shard sorting and the k-way merge always agree on what "sorted" means.
//
// # Sentinels
//
// Min and Max return bound values that compare strictly below and above every
// real record. They are used to initialise comparisons and must never be written
// to a file.
//
// # Usage
//
//	r, err := record.Parse("42. apple")
//	if errors.Is(err, record.ErrFormat) {
//	    // malformed line
//	}
//	fmt.Println(r.String()) // "42. apple"
package record
