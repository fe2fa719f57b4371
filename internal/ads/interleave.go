// Package ads decides where advertising slots land inside an assembled
// feed page. Targeting and rendering belong to the external ad server;
// this package only computes positions.
package ads

// Positions returns the zero-based indices of feed items after which an
// ad placeholder should render: every item whose 1-based position is an
// exact multiple of frequency.
//
// A frequency below 1 disables interleaving entirely, so a misconfigured
// zero never causes a division error.
func Positions(itemCount, frequency int) []int {
	if frequency < 1 || itemCount <= 0 {
		return nil
	}
	var positions []int
	for k := 0; k < itemCount; k++ {
		if (k+1)%frequency == 0 {
			positions = append(positions, k)
		}
	}
	return positions
}
