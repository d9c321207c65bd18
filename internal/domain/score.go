package domain

// Named scoring brackets for five or more han. Values are the non-dealer and
// dealer point totals; fu is irrelevant at these sizes.
var scoreBrackets = []struct {
	minHan    int
	nonDealer int
	dealer    int
}{
	{13, 32000, 48000}, // yakuman
	{11, 24000, 36000}, // sanbaiman
	{8, 16000, 24000},  // baiman
	{6, 12000, 18000},  // haneman
	{5, 8000, 12000},   // mangan
}

// TotalPoints converts fu and han into the point total for the win. Below
// five han the total is fu * 4 * 2^(han+2); the dealer/non-dealer payout
// split is the caller's concern. Zero han yields zero, which callers must
// treat as a hard rejection rather than a real score.
func TotalPoints(fu, han int, isDealer bool) int {
	for _, b := range scoreBrackets {
		if han >= b.minHan {
			if isDealer {
				return b.dealer
			}
			return b.nonDealer
		}
	}
	if han == 0 {
		return 0
	}
	return fu * 4 * (1 << (han + 2))
}
