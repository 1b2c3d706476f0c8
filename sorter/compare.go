package sorter

func lowerByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// compareDefault orders strings byte-wise with ASCII case folding.
//
// A mismatch whose bytes fold to the same letter is a pure case
// difference; the first one seen records a tie-break preferring the
// lowercase form. The tie-break applies only when no folded difference
// exists anywhere in the strings — a later literal difference always
// wins. A string orders before any string it is a prefix of.
func compareDefault(s1, s2 string) int {
	tie := 0
	n := min(len(s1), len(s2))
	for i := 0; i < n; i++ {
		c1, c2 := s1[i], s2[i]
		if c1 == c2 {
			continue
		}
		l1, l2 := lowerByte(c1), lowerByte(c2)
		if l1 != l2 {
			return int(l1) - int(l2)
		}
		if tie == 0 {
			tie = int(c2) - int(c1) // lowercase sorts first
		}
	}
	switch {
	case len(s1) > len(s2):
		return 1
	case len(s1) < len(s2):
		return -1
	}
	return tie
}

// compareNatural is compareDefault with runs of digits compared as
// unbounded unsigned integers.
//
// Leading zeros are stripped for the magnitude comparison: a shorter
// stripped run is the smaller number, equal-length runs compare digit
// by digit. When the numbers are equal but the literal runs differ in
// length, the run with more leading zeros orders first. Equal runs do
// not disturb the case tie-break.
func compareNatural(s1, s2 string) int {
	tie := 0
	i, j := 0, 0
	for i < len(s1) && j < len(s2) {
		c1, c2 := s1[i], s2[j]
		switch {
		case isDigit(c1) && isDigit(c2):
			// Advance i and j to the last digit of each run.
			z1, z2 := i, j
			for i+1 < len(s1) && isDigit(s1[i+1]) {
				i++
			}
			for j+1 < len(s2) && isDigit(s2[j+1]) {
				j++
			}

			// Strip leading zeros for the magnitude comparison.
			p1, p2 := z1, z2
			for p1 < i && s1[p1] == '0' {
				p1++
			}
			for p2 < j && s2[p2] == '0' {
				p2++
			}

			if d := (i - p1) - (j - p2); d != 0 {
				return d
			}
			for ; p1 <= i; p1, p2 = p1+1, p2+1 {
				if s1[p1] != s2[p2] {
					return int(s1[p1]) - int(s2[p2])
				}
			}

			// Equal numbers: more leading zeros goes first.
			if d := (j - z2) - (i - z1); d != 0 {
				return d
			}
		case c1 != c2:
			l1, l2 := lowerByte(c1), lowerByte(c2)
			if l1 != l2 {
				return int(l1) - int(l2)
			}
			if tie == 0 {
				tie = int(c2) - int(c1) // lowercase sorts first
			}
		}
		i++
		j++
	}
	switch {
	case i < len(s1):
		return 1
	case j < len(s2):
		return -1
	}
	return tie
}
