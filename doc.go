// Package statewords finds English words hidden in the two-letter postal
// codes of the United States and in walks across the state border map.
//
// What it answers
//
//	• Which words split into valid state codes?          ("mama" = MA·MA)
//	• Which of those step only between bordering states? ("manh" = MA→NH)
//	• Which words are anagrams of a k-step border walk?
//	• Which words are anagrams of a closed tour of k bordering states?
//
// Everything is organized under small subpackages:
//
//	core/     state-code validation and the immutable adjacency Graph
//	vocab/    the filtered word list, indexed by length
//	classify/ code-concatenation and neighbor-walk predicates
//	walk/     bounded walk and cycle enumeration, tour canonicalization
//	anagram/  letter-multiset join between words and walks or tours
//	loader/   CSV adjacency and word-list sources (embedded, file, URL)
//	report/   text, JSON and YAML rendering of the results
//	config/   YAML + environment configuration with validation
//	cmd/      the statewords command line
//
// Quick ASCII example:
//
//	    ME───NH───VT
//	          │  ╱
//	          MA
//
//	"menh", "nhvt" and "vtma" are neighbor walks; "nhvtma" closes back to
//	NH, so its tour is canonicalized as "manhvt".
//
//	go install github.com/katalvlaran/statewords/cmd/statewords@latest
package statewords
