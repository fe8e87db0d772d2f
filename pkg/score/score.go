// Package score ranks candidate plaintexts by English likeness using
// unigram letter frequencies. The absolute values carry no meaning; only
// the ordering does.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package score

import "fmt"

// englishFrequencies holds the fraction of English text made up by each
// letter, plus the space character.
var englishFrequencies = map[byte]float64{
	'A': .08167, 'B': .01492, 'C': .02202, 'D': .04253, 'E': .12702,
	'F': .02228, 'G': .02015, 'H': .06094, 'I': .06996, 'J': .00153,
	'K': .01292, 'L': .04025, 'M': .02406, 'N': .06749, 'O': .07507,
	'P': .01929, 'Q': .00095, 'R': .05987, 'S': .06327, 'T': .09356,
	'U': .02758, 'V': .00978, 'W': .02560, 'X': .00150, 'Y': .01994,
	'Z': .00077, ' ': .13000,
}

// Text sums the frequency weight of every character in the text. Higher is
// more English-like. A character outside A-Z and space is an error: the
// machine only ever produces uppercase letters, so anything else indicates
// an upstream bug.
func Text(text string) (float64, error) {
	total := 0.0
	for i := 0; i < len(text); i++ {
		w, ok := englishFrequencies[text[i]]
		if !ok {
			return 0, fmt.Errorf("unexpected character %q in text to score", text[i])
		}
		total += w
	}
	return total, nil
}
