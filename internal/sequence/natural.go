package sequence

// Less orders filenames the way a human reads them: runs of digits compare
// by numeric value, letters compare case-insensitively, everything else
// byte by byte. Ties (leading zeros, letter case) fall through to a byte
// comparison so the order stays total and deterministic.
func Less(a, b string) bool {
	if c := naturalCompare(a, b); c != 0 {
		return c < 0
	}
	return a < b
}

func naturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			ia, jb := i, j
			for ia < len(a) && isDigit(a[ia]) {
				ia++
			}
			for jb < len(b) && isDigit(b[jb]) {
				jb++
			}
			na := trimLeadingZeros(a[i:ia])
			nb := trimLeadingZeros(b[j:jb])
			// A longer digit string is a larger number.
			if len(na) != len(nb) {
				return len(na) - len(nb)
			}
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
			i, j = ia, jb
			continue
		}
		if ca, cb := foldByte(a[i]), foldByte(b[j]); ca != cb {
			return int(ca) - int(cb)
		}
		i++
		j++
	}
	return (len(a) - i) - (len(b) - j)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func trimLeadingZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}
