package game

// Score compares guess against secret and returns the number of exact
// matches (pos) and colour-only matches (col).
//
// Pass 1:
//   - Every index where guess and secret agree (Black excluded) is an exact
//     match; both slots are consumed.
//
// Pass 2:
//   - Each unconsumed, non-Black guess symbol consumes the first unconsumed
//     equal secret slot, scanning left to right.
//
// Repeated colours in either code are therefore counted at most once per
// matching slot, and pos+col never exceeds CodeLen.
func Score(secret, guess Code) (pos, col int) {
	var usedS, usedG [CodeLen]bool

	for i := 0; i < CodeLen; i++ {
		if guess[i] != Black && guess[i] == secret[i] {
			usedS[i], usedG[i] = true, true
			pos++
		}
	}

	for i := 0; i < CodeLen; i++ {
		if usedG[i] || guess[i] == Black {
			continue
		}
		for j := 0; j < CodeLen; j++ {
			if usedS[j] {
				continue
			}
			if guess[i] == secret[j] {
				usedS[j] = true
				col++
				break
			}
		}
	}
	return pos, col
}
